package encoder

import "github.com/pkg/errors"

// InternalError is the panic payload for every encoder failure. All of
// them are programmer errors per the encoder's failure semantics: an
// unmapped variable reached during encoding, a log encoding requested for
// a Binary-represented variable, a negative domain floor under log
// encoding, or suggestEncoder finding no applicable rule. None are meant to
// be recovered from by a caller; they exist so a panic carries a useful
// stack trace and message instead of an opaque runtime fault. Checked-integer
// overflow is not wrapped here: it panics with arith's own *OverflowError.
type InternalError struct {
	cause error
}

func (e *InternalError) Error() string { return e.cause.Error() }

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *InternalError) Unwrap() error { return e.cause }

// fail panics with an InternalError built from a pkg/errors-formatted
// message, so the resulting panic value carries a stack trace.
func fail(format string, args ...interface{}) {
	panic(&InternalError{cause: errors.Errorf(format, args...)})
}

// failWrap panics with an InternalError wrapping an existing error.
func failWrap(err error, msg string) {
	panic(&InternalError{cause: errors.Wrap(err, msg)})
}
