package runtime

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/risor-io/risor/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/shapes"
)

func eval(t *testing.T, rt *Runtime, src string) object.Object {
	t.Helper()
	result, err := rt.Eval(context.Background(), src, nil)
	require.NoError(t, err)
	return result
}

func floatResult(t *testing.T, obj object.Object) float64 {
	t.Helper()
	f, ok := obj.(*object.Float)
	require.True(t, ok, "expected float, got %s", obj.Type())
	return f.Value()
}

func stringResult(t *testing.T, obj object.Object) string {
	t.Helper()
	s, ok := obj.(*object.String)
	require.True(t, ok, "expected string, got %s", obj.Type())
	return s.Value()
}

// --- constructors ---

func TestRect_Area(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	got := eval(t, rt, `area(rect(4, 5, "door"))`)
	assert.Equal(t, 20.0, floatResult(t, got))
}

func TestRect_MapFields(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	src := `
r := rect(2, 3)
assert(r["kind"] == "rectangle", 'bad kind')
assert(r["metric"] == "area", 'bad metric')
r["record"]
`
	assert.Equal(t, "2,3,", stringResult(t, eval(t, rt, src)))
}

func TestCircle_Perimeter(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	got := eval(t, rt, `perimeter(circle(5))`)
	assert.Equal(t, float64(shapes.NewCircle(5).Perimeter()), floatResult(t, got))
}

func TestTriangle_AcceptsFloats(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	got := eval(t, rt, `perimeter(triangle(3.0, 4.5, 4.5))`)
	assert.Equal(t, 12.0, floatResult(t, got))
}

func TestConstructor_ArgumentErrors(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()

	for _, src := range []string{
		`circle()`,
		`circle("5")`,
		`triangle(1, 2)`,
		`rect(1)`,
		`rect(1, 2, 3)`,
	} {
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			_, err := rt.Eval(context.Background(), src, nil)
			assert.Error(t, err)
		})
	}
}

// --- parse ---

func TestParse_Record(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	src := `
r := parse("rect", "4,5,Rectangle3")
assert(r["kind"] == "rectangle")
area(r)
`
	assert.Equal(t, 20.0, floatResult(t, eval(t, rt, src)))
}

func TestParse_InvalidNumber(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	_, err := rt.Eval(context.Background(), `parse("circle", "abc")`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestParse_UnknownKind(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	_, err := rt.Eval(context.Background(), `parse("hexagon", "1")`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

// --- compare / equal ---

func TestCompare(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()

	tests := []struct {
		src  string
		want string
	}{
		{`compare(rect(2, 3), rect(1, 6))`, "equal"},
		{`compare(rect(2, 3), rect(1, 6), "perimeter")`, "less"},
		{`compare(circle(7), parse("circle", "5"))`, "greater"},
		{`compare(triangle(1, 1, 10), triangle(3, 4, 5), "area")`, "unordered"},
		{`compare(triangle(1, 1, 10), triangle(3, 4, 5))`, "equal"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, stringResult(t, eval(t, rt, tt.src)))
		})
	}
}

func TestCompare_DifferentKinds(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	_, err := rt.Eval(context.Background(), `compare(rect(1, 1), circle(1))`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot compare rectangle with circle")
}

func TestEqual(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()

	got, ok := eval(t, rt, `equal(rect(2, 3, "A"), rect(1, 6, "B"))`).(*object.Bool)
	require.True(t, ok)
	assert.True(t, got.Value())

	got, ok = eval(t, rt, `equal(rect(2, 3, "A"), rect(2, 4, "A"))`).(*object.Bool)
	require.True(t, ok)
	assert.False(t, got.Value())
}

func TestMetric(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	assert.Equal(t, "perimeter", stringResult(t, eval(t, rt, `metric(triangle(3, 4, 5))`)))
	assert.Equal(t, "area", stringResult(t, eval(t, rt, `metric(rect(1, 1))`)))
}

func TestMeasure_RejectsNonShape(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	_, err := rt.Eval(context.Background(), `area(42)`, nil)
	assert.Error(t, err)
	_, err = rt.Eval(context.Background(), `area({"kind": "circle"})`, nil)
	assert.Error(t, err)
}

// --- Go-side conversions ---

func TestObjectToShape_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []shapes.Shape{
		shapes.NewRectangle(4, 5, "Rectangle3"),
		shapes.NewCircle(2.5),
		shapes.NewTriangle(3, 4.5, 4.5),
		shapes.NewRectangle(1, 2, "a,b"),
		shapes.NewRectangle(0.1, 1e-7, ""),
	} {
		got, err := ObjectToShape(ShapeToObject(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestRect_NameWithCommaSurvivesScript(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	src := `
r := rect(1, 2, "a,b")
assert(r["name"] == "a,b", 'bad name')
assert(r["record"] == "1,2,a,b", 'bad record')
r
`
	got, err := ObjectToShape(eval(t, rt, src))
	require.NoError(t, err)
	assert.Equal(t, shapes.NewRectangle(1, 2, "a,b"), got)
}

func TestShapeToObject_Keys(t *testing.T) {
	t.Parallel()
	m := ShapeToObject(shapes.NewTriangle(3, 4, 5))
	assert.Equal(t, []string{"area", "kind", "metric", "perimeter", "record", "side_a", "side_b", "side_c"}, m.SortedKeys())

	m = ShapeToObject(shapes.NewRectangle(4, 5, "door"))
	assert.Equal(t, []string{"area", "kind", "length", "metric", "name", "perimeter", "record", "width"}, m.SortedKeys())
}

func TestObjectToShape_RecordOnly(t *testing.T) {
	t.Parallel()
	got, err := ObjectToShape(object.NewMap(map[string]object.Object{
		"kind":   object.NewString("rect"),
		"record": object.NewString("4,5,Rectangle3"),
	}))
	require.NoError(t, err)
	assert.Equal(t, shapes.NewRectangle(4, 5, "Rectangle3"), got)
}

func TestObjectToShape_InvalidMaps(t *testing.T) {
	t.Parallel()
	for name, m := range map[string]map[string]object.Object{
		"no kind":           {"record": object.NewString("5")},
		"no dims or record": {"kind": object.NewString("circle")},
		"partial dims": {
			"kind":   object.NewString("triangle"),
			"side_a": object.NewFloat(3),
			"record": object.NewString("3,4,5"),
		},
		"non-numeric dim": {"kind": object.NewString("circle"), "radius": object.NewString("5")},
		"non-string name": {
			"kind":   object.NewString("rectangle"),
			"length": object.NewInt(1),
			"width":  object.NewInt(2),
			"name":   object.NewInt(3),
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ObjectToShape(object.NewMap(m))
			assert.Error(t, err)
		})
	}
}

func TestCompareShapes(t *testing.T) {
	t.Parallel()

	o, err := CompareShapes(shapes.NewCircle(1), shapes.NewCircle(2), 0)
	require.NoError(t, err)
	assert.Equal(t, shapes.OrderLess, o)

	o, err = CompareShapes(shapes.NewRectangle(2, 3, ""), shapes.NewRectangle(1, 6, ""), shapes.MetricPerimeter)
	require.NoError(t, err)
	assert.Equal(t, shapes.OrderLess, o)

	_, err = CompareShapes(shapes.NewRectangle(1, 1, ""), shapes.NewTriangle(1, 1, 1), 0)
	assert.Error(t, err)
}

// --- globals, logging, imports ---

func TestExtraGlobals(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	result, err := rt.Eval(context.Background(), `area(circle(r))`, map[string]any{
		"r": object.NewInt(1),
	})
	require.NoError(t, err)
	assert.InDelta(t, 3.142, floatResult(t, result), 1e-6)
}

func TestLog_ForwardsToSlog(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	rt := NewRuntime(WithLogger(logger))

	_, err := rt.Eval(context.Background(), `log.Warn("careful")`, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "msg=careful")
	assert.Contains(t, buf.String(), "source=script")
}

func TestImport_FromFS(t *testing.T) {
	t.Parallel()
	mapFS := fstest.MapFS{
		"geometry.risor": &fstest.MapFile{Data: []byte(`
func square(side) {
	return rect(side, side, "square")
}
`)},
	}
	rt := NewRuntime(WithRuntimeFS(mapFS))

	src := `
import geometry
area(geometry.square(3))
`
	assert.Equal(t, 9.0, floatResult(t, eval(t, rt, src)))
}

func TestNewRuntime_Defaults(t *testing.T) {
	t.Parallel()
	rt := NewRuntime()
	require.NotNil(t, rt.logger)
	assert.Nil(t, rt.fsys)
	assert.Nil(t, rt.buildImporter(nil))
}
