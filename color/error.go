package color

import "fmt"

// ConversionError reports an input that cannot be decoded into byte values.
type ConversionError struct {
	Input  string
	Reason string
}

func newConversionError(input, format string, args ...any) *ConversionError {
	return &ConversionError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to byte value: %s", e.Input, e.Reason)
}
