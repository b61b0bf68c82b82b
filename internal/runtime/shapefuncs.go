package runtime

import (
	"context"
	"fmt"

	"github.com/risor-io/risor/object"

	"github.com/jward/shapes"
)

// Shapes cross into scripts as maps:
//
//	{kind, record, area, perimeter, metric, <dimensions>, name?}
//
// Each dimension is its own key ("length", "radius", "side_a", ...) and
// rectangles also carry "name". Builtins rebuild a shape from kind plus those
// keys, so a value survives the trip through a script unchanged even when
// its name contains a comma. Maps holding only kind and record are parsed
// from the record.

// ShapeToObject converts a shape into its script representation.
func ShapeToObject(s shapes.Shape) *object.Map {
	m := map[string]object.Object{
		"kind":      object.NewString(s.Kind().String()),
		"record":    object.NewString(s.String()),
		"area":      object.NewFloat(float64(s.Area())),
		"perimeter": object.NewFloat(float64(s.Perimeter())),
		"metric":    object.NewString(s.Metric().String()),
	}
	for _, d := range shapes.Dims(s.Kind()) {
		if v, err := shapes.Dimension(s, d); err == nil {
			m[d.String()] = object.NewFloat(float64(v))
		}
	}
	if name, err := shapes.NameOf(s); err == nil {
		m["name"] = object.NewString(name)
	}
	return object.NewMap(m)
}

// ObjectToShape converts a script shape map back into a shape.
func ObjectToShape(obj object.Object) (shapes.Shape, error) {
	m, ok := obj.(*object.Map)
	if !ok {
		return nil, fmt.Errorf("expected a shape, got %s", obj.Type())
	}
	kindStr, ok := m.Get("kind").(*object.String)
	if !ok {
		return nil, fmt.Errorf("shape map has no kind")
	}
	kind, err := shapes.ParseKind(kindStr.Value())
	if err != nil {
		return nil, err
	}

	dims, found, err := mapDims(m, kind)
	if err != nil {
		return nil, err
	}
	if !found {
		record, ok := m.Get("record").(*object.String)
		if !ok {
			return nil, fmt.Errorf("shape map has no dimensions or record")
		}
		return shapes.Parse(kind, record.Value())
	}

	switch kind {
	case shapes.KindRectangle:
		var name string
		if v := m.Get("name"); v != object.Nil {
			nameStr, ok := v.(*object.String)
			if !ok {
				return nil, fmt.Errorf("shape name must be a string, got %s", v.Type())
			}
			name = nameStr.Value()
		}
		return shapes.NewRectangle(dims[0], dims[1], name), nil
	case shapes.KindCircle:
		return shapes.NewCircle(dims[0]), nil
	case shapes.KindTriangle:
		return shapes.NewTriangle(dims[0], dims[1], dims[2]), nil
	}
	return nil, fmt.Errorf("unsupported shape kind %s", kind)
}

// mapDims reads the dimension keys of kind from m. found is false when m
// carries none of them; a map carrying only some of them is an error.
func mapDims(m *object.Map, kind shapes.Kind) ([]float32, bool, error) {
	names := shapes.Dims(kind)
	out := make([]float32, 0, len(names))
	for _, d := range names {
		v := m.Get(d.String())
		if v == object.Nil {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			return nil, false, fmt.Errorf("shape %s must be a number, got %s", d, v.Type())
		}
		out = append(out, f)
	}
	switch len(out) {
	case 0:
		return nil, false, nil
	case len(names):
		return out, true, nil
	}
	return nil, false, fmt.Errorf("shape map has %d of %d %s dimensions", len(out), len(names), kind)
}

// CompareShapes orders two shapes of the same kind. A zero metric selects
// the kind's own metric. Shapes of different kinds return an error.
func CompareShapes(a, b shapes.Shape, by shapes.Metric) (shapes.Ordering, error) {
	if a.Kind() != b.Kind() {
		return shapes.Unordered, fmt.Errorf("cannot compare %s with %s", a.Kind(), b.Kind())
	}
	if by == 0 {
		by = a.Metric()
	}
	switch x := a.(type) {
	case shapes.Rectangle:
		return shapes.CompareBy(x, b.(shapes.Rectangle), by), nil
	case shapes.Circle:
		return shapes.CompareBy(x, b.(shapes.Circle), by), nil
	case shapes.Triangle:
		return shapes.CompareBy(x, b.(shapes.Triangle), by), nil
	}
	return shapes.Unordered, fmt.Errorf("cannot compare %s", a.Kind())
}

// toFloat accepts Risor ints and floats.
func toFloat(obj object.Object) (float32, bool) {
	switch v := obj.(type) {
	case *object.Int:
		return float32(v.Value()), true
	case *object.Float:
		return float32(v.Value()), true
	}
	return 0, false
}

// floatArgs converts every argument to float32, naming the builtin in errors.
func floatArgs(name string, args []object.Object) ([]float32, *object.Error) {
	out := make([]float32, len(args))
	for i, arg := range args {
		f, ok := toFloat(arg)
		if !ok {
			return nil, object.Errorf("%s: argument %d must be a number, got %s", name, i+1, arg.Type())
		}
		out[i] = f
	}
	return out, nil
}

// makeRectFn creates "rect".
//
// rect(length, width, name?) → shape
func makeRectFn() *object.Builtin {
	return object.NewBuiltin("rect", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 && len(args) != 3 {
			return object.Errorf("rect: takes 2 or 3 arguments (%d given)", len(args))
		}
		dims, errObj := floatArgs("rect", args[:2])
		if errObj != nil {
			return errObj
		}
		var name string
		if len(args) == 3 {
			nameStr, ok := args[2].(*object.String)
			if !ok {
				return object.Errorf("rect: name must be a string, got %s", args[2].Type())
			}
			name = nameStr.Value()
		}
		return ShapeToObject(shapes.NewRectangle(dims[0], dims[1], name))
	})
}

// makeCircleFn creates "circle".
//
// circle(radius) → shape
func makeCircleFn() *object.Builtin {
	return object.NewBuiltin("circle", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("circle", 1, len(args))
		}
		dims, errObj := floatArgs("circle", args)
		if errObj != nil {
			return errObj
		}
		return ShapeToObject(shapes.NewCircle(dims[0]))
	})
}

// makeTriangleFn creates "triangle".
//
// triangle(a, b, c) → shape
func makeTriangleFn() *object.Builtin {
	return object.NewBuiltin("triangle", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 3 {
			return object.NewArgsError("triangle", 3, len(args))
		}
		dims, errObj := floatArgs("triangle", args)
		if errObj != nil {
			return errObj
		}
		return ShapeToObject(shapes.NewTriangle(dims[0], dims[1], dims[2]))
	})
}

// makeParseFn creates "parse".
//
// parse(kind, record) → shape
func makeParseFn() *object.Builtin {
	return object.NewBuiltin("parse", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("parse", 2, len(args))
		}
		kindStr, ok := args[0].(*object.String)
		if !ok {
			return object.Errorf("parse: kind must be a string, got %s", args[0].Type())
		}
		record, ok := args[1].(*object.String)
		if !ok {
			return object.Errorf("parse: record must be a string, got %s", args[1].Type())
		}
		kind, err := shapes.ParseKind(kindStr.Value())
		if err != nil {
			return object.Errorf("parse: %v", err)
		}
		s, err := shapes.Parse(kind, record.Value())
		if err != nil {
			return object.Errorf("parse: %v", err)
		}
		return ShapeToObject(s)
	})
}

// makeMeasureFn creates "area" and "perimeter".
//
// area(shape) → float
func makeMeasureFn(name string) *object.Builtin {
	return object.NewBuiltin(name, func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError(name, 1, len(args))
		}
		s, err := ObjectToShape(args[0])
		if err != nil {
			return object.Errorf("%s: %v", name, err)
		}
		m, err := shapes.ParseMetric(name)
		if err != nil {
			return object.Errorf("%s: %v", name, err)
		}
		return object.NewFloat(float64(shapes.Measure(s, m)))
	})
}

// makeMetricFn creates "metric".
//
// metric(shape) → "area" | "perimeter"
func makeMetricFn() *object.Builtin {
	return object.NewBuiltin("metric", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("metric", 1, len(args))
		}
		s, err := ObjectToShape(args[0])
		if err != nil {
			return object.Errorf("metric: %v", err)
		}
		return object.NewString(s.Metric().String())
	})
}

// makeCompareFn creates "compare".
//
// compare(a, b, by?) → "less" | "equal" | "greater" | "unordered"
func makeCompareFn() *object.Builtin {
	return object.NewBuiltin("compare", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 && len(args) != 3 {
			return object.Errorf("compare: takes 2 or 3 arguments (%d given)", len(args))
		}
		a, b, errObj := shapePair("compare", args)
		if errObj != nil {
			return errObj
		}
		var by shapes.Metric
		if len(args) == 3 {
			byStr, ok := args[2].(*object.String)
			if !ok {
				return object.Errorf("compare: metric must be a string, got %s", args[2].Type())
			}
			m, err := shapes.ParseMetric(byStr.Value())
			if err != nil {
				return object.Errorf("compare: %v", err)
			}
			by = m
		}
		o, err := CompareShapes(a, b, by)
		if err != nil {
			return object.Errorf("compare: %v", err)
		}
		return object.NewString(o.String())
	})
}

// makeEqualFn creates "equal".
//
// equal(a, b) → bool
func makeEqualFn() *object.Builtin {
	return object.NewBuiltin("equal", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("equal", 2, len(args))
		}
		a, b, errObj := shapePair("equal", args)
		if errObj != nil {
			return errObj
		}
		o, err := CompareShapes(a, b, 0)
		if err != nil {
			return object.Errorf("equal: %v", err)
		}
		return object.NewBool(o == shapes.OrderEqual)
	})
}

func shapePair(name string, args []object.Object) (shapes.Shape, shapes.Shape, *object.Error) {
	a, err := ObjectToShape(args[0])
	if err != nil {
		return nil, nil, object.Errorf("%s: first argument: %v", name, err)
	}
	b, err := ObjectToShape(args[1])
	if err != nil {
		return nil, nil, object.Errorf("%s: second argument: %v", name, err)
	}
	return a, b, nil
}
