package fingerprint

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
)

var defaultValue = valueHasher{text: Text}

// Value is the default dynamic strategy. It hashes
//
//   - types implementing [Hasher] with their Hash method, or Fingerprint
//     when they implement [Fingerprinter],
//   - nil as 0,
//   - booleans, integers, floats, *big.Int and json.Number like CPython,
//   - strings with [String] and byte slices with [Bytes],
//   - arrays as a [Tuple] of their element hashes.
//
// Named types are hashed by their underlying kind. Slices, maps, structs,
// pointers, channels and funcs are unhashable, as is a nil pointer whose type
// implements [Hasher].
func Value(v any) (int64, error) { return defaultValue.hash(v) }

// ValueWith returns a dynamic strategy like [Value] that hashes strings with
// text instead of [String].
func ValueWith(text Func[string]) Func[any] {
	if text == nil {
		return Value
	}

	return valueHasher{text: text}.hash
}

type valueHasher struct {
	text Func[string]
}

func (h valueHasher) hash(v any) (int64, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case Hasher:
		return hashHasher(v)
	case bool:
		return Bool(v)
	case int:
		return Int(v)
	case int64:
		return Int(v)
	case int32:
		return Int(v)
	case uint64:
		return Uint(v)
	case float64:
		return Float(v)
	case *big.Int:
		return BigInt(v)
	case json.Number:
		return hashNumber(v)
	case string:
		return h.text(v)
	case []byte:
		return Bytes(v), nil
	}

	return h.byKind(reflect.ValueOf(v))
}

func (h valueHasher) byKind(rv reflect.Value) (int64, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return h.text(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Bytes()), nil
		}
	case reflect.Array:
		hashes := make([]int64, rv.Len())
		for i := range hashes {
			v, err := h.hash(rv.Index(i).Interface())
			if err != nil {
				return 0, err
			}
			hashes[i] = v
		}

		return Tuple(hashes...), nil
	}

	return 0, fmt.Errorf("unhashable type %s", rv.Type())
}

// hashNumber hashes integer literals exactly and everything else as float64.
func hashNumber(n json.Number) (int64, error) {
	if z, ok := new(big.Int).SetString(string(n), 10); ok {
		return BigInt(z)
	}

	f, err := n.Float64()
	if err != nil {
		return 0, err
	}

	return Float(f)
}
