package gdmath

import (
	"errors"

	"github.com/gogpu/gdmath/internal/codec"
	"github.com/gogpu/gdmath/internal/lanes"
)

// Sentinel errors for gdmath.
var (
	// ErrDivisionByZero is returned when an integer divisor component is zero.
	ErrDivisionByZero = errors.New("gdmath: integer division by zero")

	// ErrDivisionOverflow is returned when a quotient component is not
	// representable, which only happens for math.MinInt32 / -1.
	ErrDivisionOverflow = errors.New("gdmath: integer division overflow")

	// ErrInvalidAxis is returned when an axis value is not a declared variant.
	ErrInvalidAxis = errors.New("gdmath: invalid axis")

	// ErrLayoutSize is returned when a binary buffer does not match the
	// native layout size of the target type.
	ErrLayoutSize = errors.New("gdmath: buffer size does not match native layout")

	// ErrLengthMismatch is returned by slice helpers given operands of
	// different lengths.
	ErrLengthMismatch = errors.New("gdmath: slice length mismatch")

	// ErrSchemaMismatch is returned when a JSON Schema differs from the one
	// a vector type produces.
	ErrSchemaMismatch = errors.New("gdmath: JSON schema mismatch")

	// ErrNonFinite is returned when a NaN or infinite component would have
	// to be written as JSON, which has no literal for them.
	ErrNonFinite = errors.New("gdmath: non-finite component")

	// ErrDecode is wrapped by every text and JSON decoding failure.
	ErrDecode = codec.ErrDecode
)

// DecodeError describes malformed text or JSON input. It unwraps to ErrDecode.
type DecodeError = codec.Error

// ArithmeticError is returned by integer division and remainder when a
// component cannot be computed. It unwraps to ErrDivisionByZero or
// ErrDivisionOverflow. The operands are never modified.
type ArithmeticError struct {
	// Op is the failing operation, such as "Vector4i.Div".
	Op string

	// Component is the first offending component ("x", "y", "z" or "w").
	// It is empty when a scalar divisor is zero.
	Component string

	// Err is ErrDivisionByZero or ErrDivisionOverflow.
	Err error
}

func (e *ArithmeticError) Error() string {
	msg := e.Err.Error() + " in " + e.Op
	if e.Component != "" {
		msg += " (component " + e.Component + ")"
	}
	return msg
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// componentNames are the lowercase component names in lane order.
var componentNames = [...]string{"x", "y", "z", "w"}

// faultError converts a checked kernel fault into an *ArithmeticError.
func faultError(op string, lane int, f lanes.Fault) error {
	err := &ArithmeticError{Op: op, Err: ErrDivisionByZero}
	if f == lanes.FaultOverflow {
		err.Err = ErrDivisionOverflow
	}
	if lane >= 0 && lane < len(componentNames) {
		err.Component = componentNames[lane]
	}
	return err
}

// scalarZeroError is returned by the scalar division helpers.
func scalarZeroError(op string) error {
	return &ArithmeticError{Op: op, Err: ErrDivisionByZero}
}
