package produce

import (
	"errors"
	"fmt"
)

// Sentinel errors for outcomes that are expected in interactive use. They
// are reported, not thrown: callers match them with errors.Is and render a
// message instead of aborting.
var (
	// ErrNotFound reports an operation that references an unknown item name.
	ErrNotFound = errors.New("item not found in inventory")
	// ErrInsufficientStock reports a sale that exceeds the current quantity.
	ErrInsufficientStock = errors.New("not enough stock available")
)

// ValidationError rejects a call whose inputs violate a domain invariant
// (negative quantity or price, empty name, invalid transaction type, zero
// adjustment). The call makes no mutation.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Invalidf builds a ValidationError with a formatted message.
func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
