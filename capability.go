package shapes

import (
	"fmt"
	"strings"
)

// Dim names a single dimension of a shape.
type Dim int

const (
	DimLength Dim = iota + 1
	DimWidth
	DimRadius
	DimSideA
	DimSideB
	DimSideC
)

var dimNames = map[Dim]string{
	DimLength: "length",
	DimWidth:  "width",
	DimRadius: "radius",
	DimSideA:  "side_a",
	DimSideB:  "side_b",
	DimSideC:  "side_c",
}

func (d Dim) String() string {
	if name, ok := dimNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dim(%d)", int(d))
}

// ParseDim resolves a dimension name such as "width" or "side_b".
func ParseDim(s string) (Dim, error) {
	lower := strings.ToLower(s)
	for d, name := range dimNames {
		if name == lower {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDim, s)
}

// Dims returns the dimensions a kind defines, in record order.
func Dims(kind Kind) []Dim {
	switch kind {
	case KindRectangle:
		return []Dim{DimLength, DimWidth}
	case KindCircle:
		return []Dim{DimRadius}
	case KindTriangle:
		return []Dim{DimSideA, DimSideB, DimSideC}
	}
	return nil
}

// New builds a shape from a length, width and name. Only rectangles can be
// described that way; other kinds return an *UnsupportedError. Use the
// per-variant constructors for circles and triangles.
func New(kind Kind, length, width float32, name string) (Shape, error) {
	if kind != KindRectangle {
		return nil, &UnsupportedError{Kind: kind, Op: "construction from length and width"}
	}
	return NewRectangle(length, width, name), nil
}

// Dimension reads dimension d of s.
func Dimension(s Shape, d Dim) (float32, error) {
	if s == nil {
		return 0, ErrNilShape
	}
	switch v := s.(type) {
	case Rectangle:
		switch d {
		case DimLength:
			return v.length, nil
		case DimWidth:
			return v.width, nil
		}
	case Circle:
		if d == DimRadius {
			return v.radius, nil
		}
	case Triangle:
		switch d {
		case DimSideA:
			return v.sideA, nil
		case DimSideB:
			return v.sideB, nil
		case DimSideC:
			return v.sideC, nil
		}
	}
	return 0, &UnsupportedError{Kind: s.Kind(), Op: "get " + d.String()}
}

// WithDimension returns a copy of s with dimension d set to value. Circles and
// triangles are immutable, so only rectangle dimensions can be set.
func WithDimension(s Shape, d Dim, value float32) (Shape, error) {
	if s == nil {
		return nil, ErrNilShape
	}
	if r, ok := s.(Rectangle); ok {
		switch d {
		case DimLength:
			r.SetLength(value)
			return r, nil
		case DimWidth:
			r.SetWidth(value)
			return r, nil
		}
	}
	return nil, &UnsupportedError{Kind: s.Kind(), Op: "set " + d.String()}
}

// NameOf returns the display name of s. Only rectangles carry a name.
func NameOf(s Shape) (string, error) {
	if s == nil {
		return "", ErrNilShape
	}
	if r, ok := s.(Rectangle); ok {
		return r.name, nil
	}
	return "", &UnsupportedError{Kind: s.Kind(), Op: "get name"}
}

// WithName returns a copy of s renamed to name.
func WithName(s Shape, name string) (Shape, error) {
	if s == nil {
		return nil, ErrNilShape
	}
	if r, ok := s.(Rectangle); ok {
		r.SetName(name)
		return r, nil
	}
	return nil, &UnsupportedError{Kind: s.Kind(), Op: "set name"}
}
