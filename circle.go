package shapes

// Circle is a circle of a given radius. Circles are immutable.
type Circle struct {
	radius float32
}

func NewCircle(radius float32) Circle {
	return Circle{radius: radius}
}

func (Circle) isShape() {}

func (Circle) Kind() Kind { return KindCircle }

// Metric is MetricPerimeter.
func (Circle) Metric() Metric { return MetricPerimeter }

func (c Circle) Radius() float32 { return c.radius }

func (c Circle) Area() float32 {
	return Pi * c.radius * c.radius
}

func (c Circle) Perimeter() float32 {
	return 2 * Pi * c.radius
}

// Equal reports whether c and other have exactly the same perimeter.
func (c Circle) Equal(other Circle) bool {
	return c.Perimeter() == other.Perimeter()
}

// Compare orders c and other by perimeter.
func (c Circle) Compare(other Circle) Ordering {
	return compareFloat(c.Perimeter(), other.Perimeter())
}

func (c Circle) String() string {
	return formatFloat(c.radius)
}
