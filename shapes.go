package shapes

import (
	"fmt"
	"math"
	"strings"
)

// Pi is the approximation of π used by every circle formula. Results are
// expected to match 3.142 exactly, not math.Pi.
const Pi float32 = 3.142

// Kind identifies a shape variant.
type Kind int

const (
	KindRectangle Kind = iota + 1
	KindCircle
	KindTriangle
)

var kindNames = map[Kind]string{
	KindRectangle: "rectangle",
	KindCircle:    "circle",
	KindTriangle:  "triangle",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every known variant in declaration order.
func Kinds() []Kind {
	return []Kind{KindRectangle, KindCircle, KindTriangle}
}

// ParseKind resolves a kind name. Names are case-insensitive; "rect" and
// "tri" are accepted as short forms.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "rectangle", "rect":
		return KindRectangle, nil
	case "circle":
		return KindCircle, nil
	case "triangle", "tri":
		return KindTriangle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Metric is the measurement a comparison is based on.
type Metric int

const (
	MetricArea Metric = iota + 1
	MetricPerimeter
)

func (m Metric) String() string {
	switch m {
	case MetricArea:
		return "area"
	case MetricPerimeter:
		return "perimeter"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric resolves "area" or "perimeter".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(s) {
	case "area":
		return MetricArea, nil
	case "perimeter":
		return MetricPerimeter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// Shape is the capability set shared by Rectangle, Circle and Triangle.
// The interface is sealed; only this package's variants implement it.
type Shape interface {
	Kind() Kind
	Area() float32
	Perimeter() float32

	// Metric reports the measurement the variant's Equal and Compare use.
	// Rectangles compare by area; circles and triangles by perimeter.
	Metric() Metric

	// String returns the text record for the shape.
	String() string

	isShape()
}

// Measure returns the value of metric m for s. A nil shape measures NaN.
func Measure(s Shape, m Metric) float32 {
	if s == nil {
		return float32(math.NaN())
	}
	if m == MetricPerimeter {
		return s.Perimeter()
	}
	return s.Area()
}

// Variant is the type set of concrete shapes. Generic helpers constrained by
// Variant require both operands to share one concrete type.
type Variant interface {
	Rectangle | Circle | Triangle
	Shape
}

var (
	_ Shape = Rectangle{}
	_ Shape = Circle{}
	_ Shape = Triangle{}
)
