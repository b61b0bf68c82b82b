package shapes

// Rectangle is a length by width rectangle with a display name. The name is
// never used in comparisons. Negative dimensions are accepted.
type Rectangle struct {
	length float32
	width  float32
	name   string
}

// NewRectangle returns a rectangle with the given dimensions and name.
func NewRectangle(length, width float32, name string) Rectangle {
	return Rectangle{length: length, width: width, name: name}
}

// DefaultRectangle returns the unit rectangle named "default_name".
func DefaultRectangle() Rectangle {
	return Rectangle{length: 1, width: 1, name: "default_name"}
}

func (Rectangle) isShape() {}

func (Rectangle) Kind() Kind { return KindRectangle }

// Metric is MetricArea.
func (Rectangle) Metric() Metric { return MetricArea }

func (r Rectangle) Area() float32 {
	return r.length * r.width
}

func (r Rectangle) Perimeter() float32 {
	return 2 * (r.length + r.width)
}

func (r Rectangle) Length() float32 { return r.length }
func (r Rectangle) Width() float32  { return r.width }
func (r Rectangle) Name() string    { return r.name }

func (r *Rectangle) SetLength(length float32) { r.length = length }
func (r *Rectangle) SetWidth(width float32)   { r.width = width }
func (r *Rectangle) SetName(name string)      { r.name = name }

// Equal reports whether r and other have exactly the same area.
func (r Rectangle) Equal(other Rectangle) bool {
	return r.Area() == other.Area()
}

// Compare orders r and other by area.
func (r Rectangle) Compare(other Rectangle) Ordering {
	return compareFloat(r.Area(), other.Area())
}

// String returns the "length,width,name" record.
func (r Rectangle) String() string {
	return joinRecord(formatFloat(r.length), formatFloat(r.width), r.name)
}
