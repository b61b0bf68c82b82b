package shapes

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseRectangle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want Rectangle
	}{
		{"full record", "4,5,Rectangle3", NewRectangle(4, 5, "Rectangle3")},
		{"length only", "4", NewRectangle(4, 0, "")},
		{"no name", "4,5", NewRectangle(4, 5, "")},
		{"empty name", "4,5,", NewRectangle(4, 5, "")},
		{"extra fields ignored", "1,2,box,unused", NewRectangle(1, 2, "box")},
		{"negative", "-1.5,2", NewRectangle(-1.5, 2, "")},
		{"name keeps spaces", "1,1, spaced ", NewRectangle(1, 1, " spaced ")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRectangle(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRectangle_InvalidNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		field string
		value string
	}{
		{"abc,5,x", "length", "abc"},
		{"4,five", "width", "five"},
		{"4, 5", "width", " 5"},
		{"", "length", ""},
		{"4,,x", "width", ""},
		{"0x1p2", "length", "0x1p2"},
		{"0x1.8p1,1,x", "length", "0x1.8p1"},
		{"4,-0X2p0", "width", "-0X2p0"},
		{"1_000", "length", "1_000"},
		{"4,2_5", "width", "2_5"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			_, err := ParseRectangle(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidNumber)
			assert.ErrorIs(t, err, strconv.ErrSyntax)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, KindRectangle, pe.Kind)
			assert.Equal(t, tt.field, pe.Field)
			assert.Equal(t, tt.value, pe.Value)
		})
	}
}

func TestParseCircle(t *testing.T) {
	t.Parallel()
	c, err := ParseCircle("5")
	require.NoError(t, err)
	assert.Equal(t, float32(5), c.Radius())
	assert.InDelta(t, 31.42, c.Perimeter(), 1e-4)

	c, err = ParseCircle("2.5,ignored")
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), c.Radius())

	_, err = ParseCircle("r=5")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParseTriangle(t *testing.T) {
	t.Parallel()

	tri, err := ParseTriangle("3.0,4.5,4.5")
	require.NoError(t, err)
	assert.Equal(t, NewTriangle(3, 4.5, 4.5), tri)
	assert.Equal(t, float32(12), tri.Perimeter())

	tri, err = ParseTriangle("3")
	require.NoError(t, err)
	assert.Equal(t, NewTriangle(3, 0, 0), tri)
	assert.True(t, math.IsNaN(float64(tri.Area())))

	_, err = ParseTriangle("3,4,x")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "side_c", pe.Field)
	assert.Equal(t, KindTriangle, pe.Kind)
}

func TestParse_OutOfRangeAccepted(t *testing.T) {
	t.Parallel()
	r, err := ParseRectangle("1e40,1e-50")
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(r.Length()), 1))
	assert.Equal(t, float32(0), r.Width())
}

func TestParse_Dispatch(t *testing.T) {
	t.Parallel()

	s, err := Parse(KindCircle, "5")
	require.NoError(t, err)
	assert.Equal(t, NewCircle(5), s)

	s, err = Parse(KindRectangle, "4,5,Rectangle3")
	require.NoError(t, err)
	assert.Equal(t, NewRectangle(4, 5, "Rectangle3"), s)

	_, err = Parse(Kind(42), "1")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	var r Rectangle
	require.NoError(t, r.UnmarshalText([]byte("4,5,Rectangle3")))
	assert.Equal(t, NewRectangle(4, 5, "Rectangle3"), r)

	var c Circle
	require.NoError(t, c.UnmarshalText([]byte("7")))
	assert.Equal(t, NewCircle(7), c)

	var tri Triangle
	require.NoError(t, tri.UnmarshalText([]byte("5,12,13")))
	assert.Equal(t, NewTriangle(5, 12, 13), tri)

	before := NewCircle(1)
	err := before.UnmarshalText([]byte("nope"))
	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.Equal(t, NewCircle(1), before, "failed unmarshal must not modify the receiver")
}

func TestString_Records(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "4,5,Rectangle3", NewRectangle(4, 5, "Rectangle3").String())
	assert.Equal(t, "2.5", NewCircle(2.5).String())
	assert.Equal(t, "3,4.5,4.5", NewTriangle(3, 4.5, 4.5).String())
}

func TestString_RoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		l := rapid.Float32().Draw(rt, "length")
		w := rapid.Float32().Draw(rt, "width")
		name := rapid.StringMatching(`[A-Za-z0-9 _-]{0,12}`).Draw(rt, "name")
		r := NewRectangle(l, w, name)

		got, err := ParseRectangle(r.String())
		if err != nil {
			rt.Fatalf("parse %q: %v", r.String(), err)
		}
		if got.String() != r.String() {
			rt.Fatalf("round trip %q -> %q", r.String(), got.String())
		}
	})
}
