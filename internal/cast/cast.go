package cast

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// ErrNotInteger indicates that a count is not an integer value.
var ErrNotInteger = errors.New("count is not an integer")

// ToCount converts v to an int64 count.
func ToCount(v any) (int64, error) {
	switch v.(type) {
	case bool, json.Number:
		return toBase(v)
	}

	if isIntVal(v) {
		return safemath.ConvertAny[int64](v)
	}

	// Named integer types such as `type Count uint32`.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return safemath.ConvertAny[int64](rv.Uint())
	}

	return 0, fmt.Errorf("%w: %T", ErrNotInteger, v)
}

// toBase converts a non-integer Go value holding an integer, such as a bool or
// a json.Number, using spf13/cast.
func toBase(v any) (int64, error) {
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotInteger, err)
	}

	return n, nil
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
