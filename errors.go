package fingerprint

import (
	"errors"
	"fmt"
)

// ErrNotSequence indicates that [HashList] was given something other than a
// slice or an array.
var ErrNotSequence = errors.New("not a sequence")

// ErrUnhashable indicates that an element or key could not be hashed by the
// active strategy.
//
// It can be wrapped together with the strategy's own error.
var ErrUnhashable = errors.New("unhashable element")

// ErrNotString indicates that [HashString] was given something other than a
// string or a byte slice.
var ErrNotString = errors.New("not a string")

// ErrNotMapping indicates that [HashCounter] was given something other than a
// map.
var ErrNotMapping = errors.New("not a counter/mapping")

// ErrIncomparable indicates that the keys of a counter have no common order.
var ErrIncomparable = errors.New("keys not comparable")

// ErrMalformed indicates that a counter key or count could not be retrieved,
// typically because a count is not an integer or does not fit in 64 bits.
var ErrMalformed = errors.New("malformed mapping")

// TypeError is returned by every fold on the first invalid input. Func names
// the failing entry point (e.g. "hash_list"), Type is the Go type of the
// offending value, Kind is one of the sentinel errors above and Cause, when
// set, is the underlying failure.
type TypeError struct {
	Func  string
	Type  string
	Kind  error
	Cause error
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("fingerprint: %s: %v", e.Func, e.Kind)
	if e.Type != "" {
		msg += " (" + e.Type + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap exposes both Kind and Cause to [errors.Is] and [errors.As].
func (e *TypeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}

func typeError(fn string, kind error, v any, cause error) *TypeError {
	err := &TypeError{Func: fn, Kind: kind, Cause: cause}
	if v != nil {
		err.Type = fmt.Sprintf("%T", v)
	}

	return err
}
