package shapes

import (
	"errors"
	"strconv"
	"strings"
)

// Text records are positional and comma separated. Fields are not trimmed,
// fields past the last expected one are ignored, and an absent field takes
// its zero value. A field that is present but empty is not a number.

// ParseRectangle parses a "length,width,name" record.
func ParseRectangle(text string) (Rectangle, error) {
	fields := strings.Split(text, ",")
	length, err := numberField(fields, 0, KindRectangle, "length")
	if err != nil {
		return Rectangle{}, err
	}
	width, err := numberField(fields, 1, KindRectangle, "width")
	if err != nil {
		return Rectangle{}, err
	}
	var name string
	if len(fields) > 2 {
		name = fields[2]
	}
	return NewRectangle(length, width, name), nil
}

// ParseCircle parses a "radius" record.
func ParseCircle(text string) (Circle, error) {
	fields := strings.Split(text, ",")
	radius, err := numberField(fields, 0, KindCircle, "radius")
	if err != nil {
		return Circle{}, err
	}
	return NewCircle(radius), nil
}

// ParseTriangle parses a "side_a,side_b,side_c" record. Missing sides are
// zero, which yields a degenerate triangle rather than an error.
func ParseTriangle(text string) (Triangle, error) {
	fields := strings.Split(text, ",")
	var sides [3]float32
	for i, field := range []string{"side_a", "side_b", "side_c"} {
		v, err := numberField(fields, i, KindTriangle, field)
		if err != nil {
			return Triangle{}, err
		}
		sides[i] = v
	}
	return NewTriangle(sides[0], sides[1], sides[2]), nil
}

// Parse parses a text record for the given kind.
func Parse(kind Kind, text string) (Shape, error) {
	switch kind {
	case KindRectangle:
		return ParseRectangle(text)
	case KindCircle:
		return ParseCircle(text)
	case KindTriangle:
		return ParseTriangle(text)
	}
	return nil, &UnsupportedError{Kind: kind, Op: "parse"}
}

func (r *Rectangle) UnmarshalText(text []byte) error {
	v, err := ParseRectangle(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (c *Circle) UnmarshalText(text []byte) error {
	v, err := ParseCircle(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (t *Triangle) UnmarshalText(text []byte) error {
	v, err := ParseTriangle(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func numberField(fields []string, i int, kind Kind, name string) (float32, error) {
	if i >= len(fields) {
		return 0, nil
	}
	if goOnlyLiteral(fields[i]) {
		return 0, &ParseError{Kind: kind, Field: name, Value: fields[i], Err: &strconv.NumError{
			Func: "ParseFloat",
			Num:  fields[i],
			Err:  strconv.ErrSyntax,
		}}
	}
	v, err := strconv.ParseFloat(fields[i], 32)
	// Out-of-range literals saturate to ±Inf or 0 and are kept.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Kind: kind, Field: name, Value: fields[i], Err: err}
	}
	return float32(v), nil
}

// goOnlyLiteral reports whether s uses Go literal syntax that ParseFloat
// accepts but a plain decimal record does not: digit separators and
// hexadecimal mantissas.
func goOnlyLiteral(s string) bool {
	if strings.Contains(s, "_") {
		return true
	}
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func joinRecord(fields ...string) string {
	return strings.Join(fields, ",")
}
