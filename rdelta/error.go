package rdelta

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument          = errors.New("illegal argument")
	ErrOverflow                 = errors.New("field overflow")
	ErrInvalidWeekdayOccurrence = errors.New("invalid weekday occurrence")
	ErrDateOutOfRange           = errors.New("date out of range")
	ErrConversion               = errors.New("conversion error")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// overflowError returns a field overflow error with a custom error message,
// which unwraps to ErrOverflow.
func overflowError(message string) error {
	return fmt.Errorf("%w: %s", ErrOverflow, message)
}

// conversionError returns a conversion error with a custom error message,
// which unwraps to ErrConversion.
func conversionError(message string) error {
	return fmt.Errorf("%w: %s", ErrConversion, message)
}

// invalidWeekdayOccurrenceError returns an invalid weekday occurrence error
// with a custom error message, which unwraps to ErrInvalidWeekdayOccurrence.
func invalidWeekdayOccurrenceError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidWeekdayOccurrence, message)
}
