// Package shapes provides rectangles, circles and triangles behind a common
// Shape capability set, with area and perimeter calculations, metric-based
// comparison and parsing from comma-separated text records.
//
// # Variants
//
// Each variant has its own constructor taking exactly the values it needs:
//
//	r := shapes.NewRectangle(4, 5, "door")
//	c := shapes.NewCircle(7)
//	t := shapes.NewTriangle(3, 4, 5)
//
// Circle formulas use the constant [Pi] (3.142), not math.Pi. Triangle area
// uses Heron's formula and is NaN for side lengths that cannot form a
// triangle; no validation is performed.
//
// # Comparison
//
// Equality and ordering compare a single metric, never fields. Each variant
// documents its metric through [Shape.Metric]:
//
//   - [Rectangle] compares by area.
//   - [Circle] and [Triangle] compare by perimeter.
//
// Equal and Compare accept only the receiver's own type, so a rectangle can
// never be compared with a circle. [CompareBy] and [EqualBy] take the metric
// explicitly. Comparisons involving NaN return [Unordered].
//
// # Text records
//
// [ParseRectangle], [ParseCircle] and [ParseTriangle] read positional
// records:
//
//	"4,5,Rectangle3"  rectangle: length, width, name
//	"5"               circle: radius
//	"3.0,4.5,4.5"     triangle: side_a, side_b, side_c
//
// Missing fields default to zero (or the empty name). A present field that is
// not a number yields a [*ParseError].
//
// # Unsupported operations
//
// [New], [Dimension], [WithDimension], [NameOf] and [WithName] operate on any
// [Shape]. Asking a variant for something it does not have, such as the width
// of a circle, returns an [*UnsupportedError] matching [ErrUnsupported].
package shapes
