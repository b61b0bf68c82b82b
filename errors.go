package shapes

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber is matched by every *ParseError.
	ErrInvalidNumber = errors.New("shapes: invalid number")
	// ErrUnsupported is matched by every *UnsupportedError.
	ErrUnsupported = errors.New("shapes: unsupported operation")

	ErrUnknownKind   = errors.New("shapes: unknown kind")
	ErrUnknownMetric = errors.New("shapes: unknown metric")
	ErrUnknownDim    = errors.New("shapes: unknown dimension")

	// ErrNilShape is returned by the generic accessors when given a nil Shape.
	ErrNilShape = errors.New("shapes: nil shape")
)

// ParseError reports a text-record field that is present but is not a
// floating-point literal.
type ParseError struct {
	Kind  Kind
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("shapes: parse %s field %s %q: %v", e.Kind, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidNumber, e.Err}
}

// UnsupportedError reports an operation that a variant does not define, such
// as building a circle from a length and width or renaming a triangle.
type UnsupportedError struct {
	Kind Kind
	Op   string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("shapes: %s does not support %s", e.Kind, e.Op)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
