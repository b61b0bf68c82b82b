package shapes

import "math"

// Triangle is described by its three side lengths. The triangle inequality
// is not checked: an impossible triple has a NaN area.
type Triangle struct {
	sideA float32
	sideB float32
	sideC float32
}

func NewTriangle(a, b, c float32) Triangle {
	return Triangle{sideA: a, sideB: b, sideC: c}
}

func (Triangle) isShape() {}

func (Triangle) Kind() Kind { return KindTriangle }

// Metric is MetricPerimeter.
func (Triangle) Metric() Metric { return MetricPerimeter }

// Sides returns the side lengths in construction order.
func (t Triangle) Sides() (a, b, c float32) {
	return t.sideA, t.sideB, t.sideC
}

func (t Triangle) Perimeter() float32 {
	return t.sideA + t.sideB + t.sideC
}

// Area uses Heron's formula.
func (t Triangle) Area() float32 {
	s := t.Perimeter() / 2
	p := s * (s - t.sideA) * (s - t.sideB) * (s - t.sideC)
	return float32(math.Sqrt(float64(p)))
}

// Equal reports whether t and other have exactly the same perimeter.
func (t Triangle) Equal(other Triangle) bool {
	return t.Perimeter() == other.Perimeter()
}

// Compare orders t and other by perimeter.
func (t Triangle) Compare(other Triangle) Ordering {
	return compareFloat(t.Perimeter(), other.Perimeter())
}

func (t Triangle) String() string {
	return joinRecord(formatFloat(t.sideA), formatFloat(t.sideB), formatFloat(t.sideC))
}
