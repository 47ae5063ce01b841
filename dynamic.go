package fingerprint

import (
	"cmp"
	"reflect"
	"slices"

	"go.dw1.io/x/fingerprint/internal/cast"
)

// HashList returns the [List] fingerprint of v, which must be a slice or an
// array. Elements are hashed with [Value].
func HashList(v any) (int64, error) { return HashListFunc(v, Value) }

// HashListFunc is like [HashList] but hashes elements with hash.
func HashListFunc(v any, hash Func[any]) (int64, error) {
	if elems, ok := v.([]any); ok {
		return List(elems, hash)
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return 0, typeError(funcList, ErrNotSequence, v, nil)
	}

	n := rv.Len()
	fp := foldSeed - int64(n)*foldStride
	for i := 0; i < n; i++ {
		e := rv.Index(i).Interface()
		h, err := hash(e)
		if err != nil {
			return 0, typeError(funcList, ErrUnhashable, e, err)
		}

		fp = fold(fp, int64(i), h)
	}

	return fp, nil
}

// HashString returns the [String] fingerprint of v, which must be a string,
// a named string type or a byte slice.
func HashString(v any) (int64, error) {
	switch v := v.(type) {
	case string:
		return String(v), nil
	case []byte:
		return Bytes(v), nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return String(rv.String()), nil
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return Bytes(rv.Bytes()), nil
	}

	return 0, typeError(funcString, ErrNotString, v, nil)
}

// HashCounter returns the [Counter] fingerprint of v, which must be a map
// from mutually comparable keys to integer counts. Keys are hashed with
// [Value].
//
// Keys compare when they are all numbers (booleans, integers and floats,
// compared by value), all strings, all byte arrays or all [Hasher]s, which
// are ordered by their hash.
func HashCounter(v any) (int64, error) { return HashCounterFunc(v, Value) }

// HashCounterFunc is like [HashCounter] but hashes keys with hash.
func HashCounterFunc(v any, hash Func[any]) (int64, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return 0, typeError(funcCounter, ErrNotMapping, v, nil)
	}
	if rv.Len() == 0 {
		return foldSeed, nil
	}

	entries := mapEntries(rv)
	class, err := classOf(entries)
	if err != nil {
		return 0, typeError(funcCounter, ErrIncomparable, v, err)
	}
	slices.SortFunc(entries, func(a, b mapEntry) int {
		return compareKeys(class, a.key, b.key)
	})

	fp := foldSeed - int64(len(entries))*foldStride
	for _, e := range entries {
		count := e.count.Interface()
		n, err := cast.ToCount(count)
		if err != nil {
			return 0, typeError(funcCounter, ErrMalformed, count, err)
		}

		key := e.key.Interface()
		h, err := hash(key)
		if err != nil {
			return 0, typeError(funcCounter, ErrUnhashable, key, err)
		}

		fp = fold(fp, n, h)
	}

	return fp, nil
}

// mapEntry is a key with its count. Keys are unwrapped from interfaces.
type mapEntry struct {
	key, count reflect.Value
}

// mapEntries walks the map once so keys that never equal themselves (NaN)
// keep their counts.
func mapEntries(m reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, m.Len())
	iter := m.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{key: unwrap(iter.Key()), count: iter.Value()})
	}

	return entries
}

type keyClass int

const (
	classNone keyClass = iota
	classNumber
	classString
	classBytes
	classHasher
)

func classOf(entries []mapEntry) (keyClass, error) {
	class := classNone
	for _, e := range entries {
		c := classify(e.key)
		if c == classNone {
			return classNone, &keyError{k: e.key}
		}
		if class != classNone && c != class {
			return classNone, &keyError{k: e.key}
		}
		class = c
	}

	return class, nil
}

type keyError struct {
	k reflect.Value
}

func (e *keyError) Error() string {
	if !e.k.IsValid() {
		return "cannot order nil key"
	}

	return "cannot order key of type " + e.k.Type().String()
}

func classify(k reflect.Value) keyClass {
	switch k.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return classNumber
	case reflect.String:
		return classString
	case reflect.Array:
		// A [N]byte key orders like a byte string.
		if k.Type().Elem().Kind() == reflect.Uint8 {
			return classBytes
		}
	}

	if k.IsValid() && k.Type().Implements(hasherType) {
		return classHasher
	}

	return classNone
}

var hasherType = reflect.TypeFor[Hasher]()

func unwrap(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface {
		return v.Elem()
	}

	return v
}

func compareKeys(class keyClass, a, b reflect.Value) int {
	switch class {
	case classString:
		return cmp.Compare(a.String(), b.String())
	case classBytes:
		return slices.Compare(arrayBytes(a), arrayBytes(b))
	case classHasher:
		return cmp.Compare(hasherKey(a), hasherKey(b))
	}

	return compareNumbers(a, b)
}

// hasherKey orders Hasher keys by their own hash. Ties are harmless since
// the counter fold is commutative. A key that fails to hash sorts as 0 and
// is reported by the fold.
func hasherKey(v reflect.Value) int64 {
	h, err := hashHasher(v.Interface().(Hasher))
	if err != nil {
		return 0
	}

	return h
}

func arrayBytes(v reflect.Value) []byte {
	b := make([]byte, v.Len())
	for i := range b {
		b[i] = byte(v.Index(i).Uint())
	}

	return b
}

// compareNumbers orders integers exactly and falls back to float64 as soon as
// either side is a float.
func compareNumbers(a, b reflect.Value) int {
	ai, aSigned, aok := integer(a)
	bi, bSigned, bok := integer(b)
	if !aok || !bok {
		return cmp.Compare(asFloat(a), asFloat(b))
	}

	switch {
	case aSigned && bSigned:
		return cmp.Compare(int64(ai), int64(bi))
	case !aSigned && !bSigned:
		return cmp.Compare(ai, bi)
	case aSigned:
		if int64(ai) < 0 {
			return -1
		}
	case !aSigned:
		if int64(bi) < 0 {
			return 1
		}
	}

	return cmp.Compare(ai, bi)
}

// integer returns the bits of an integer or boolean key and whether they
// hold a signed value.
func integer(v reflect.Value) (bits uint64, signed, ok bool) {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1, true, true
		}
		return 0, true, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int()), true, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), false, true
	}

	return 0, false, false
}

func asFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}

	bits, signed, _ := integer(v)
	if signed {
		return float64(int64(bits))
	}

	return float64(bits)
}
