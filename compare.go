package shapes

import (
	"math"
	"slices"
)

// Ordering is the outcome of comparing two shapes by a metric. Unordered is
// returned when either metric is NaN.
type Ordering int

const (
	OrderLess    Ordering = -1
	OrderEqual   Ordering = 0
	OrderGreater Ordering = 1
	Unordered    Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case OrderLess:
		return "less"
	case OrderEqual:
		return "equal"
	case OrderGreater:
		return "greater"
	}
	return "unordered"
}

func (o Ordering) Lt() bool { return o == OrderLess }
func (o Ordering) Le() bool { return o == OrderLess || o == OrderEqual }
func (o Ordering) Gt() bool { return o == OrderGreater }
func (o Ordering) Ge() bool { return o == OrderGreater || o == OrderEqual }

// compareFloat orders two metrics. No epsilon is applied.
func compareFloat(a, b float32) Ordering {
	switch {
	case isNaN(a) || isNaN(b):
		return Unordered
	case a < b:
		return OrderLess
	case a > b:
		return OrderGreater
	}
	return OrderEqual
}

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}

// CompareBy orders a and b by metric m instead of the variant's own metric.
// Both operands must be the same concrete shape type.
func CompareBy[V Variant](a, b V, m Metric) Ordering {
	return compareFloat(Measure(a, m), Measure(b, m))
}

// EqualBy reports whether a and b have exactly the same value of metric m.
func EqualBy[V Variant](a, b V, m Metric) bool {
	return Measure(a, m) == Measure(b, m)
}

// Sort orders shapes ascending by their own metric. The sort is stable and
// shapes whose metric is NaN are placed last.
func Sort[V Variant](s []V) {
	slices.SortStableFunc(s, func(a, b V) int {
		ma, mb := Measure(a, a.Metric()), Measure(b, b.Metric())
		switch {
		case isNaN(ma) && isNaN(mb):
			return 0
		case isNaN(ma):
			return 1
		case isNaN(mb):
			return -1
		}
		return int(compareFloat(ma, mb))
	})
}
