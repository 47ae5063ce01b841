package fingerprint

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"go.dw1.io/x/fingerprint/internal/wyhash"
)

// Func hashes a single element or key. A non-nil error marks the value as
// unhashable and aborts the surrounding fold.
//
// The fingerprint of a list or counter is only as stable as its Func: callers
// sharing cached fingerprints must agree on the strategy.
type Func[T any] func(T) (int64, error)

// Hasher is implemented by types that define their own element hash.
type Hasher interface {
	// Hash returns the hash of the receiver.
	Hash() int64
}

// Fingerprinter is implemented by hashers whose hash can fail, such as
// [HashableList] and [HashableCounter]. The strategies prefer Fingerprint
// over Hash so the failure reaches the caller.
type Fingerprinter interface {
	Hasher

	// Fingerprint returns the hash of the receiver or the error that
	// prevented computing it.
	Fingerprint() (int64, error)
}

// Of hashes a [Hasher] by calling its Hash method. A nil pointer is
// unhashable.
func Of[T Hasher](v T) (int64, error) { return hashHasher(v) }

func hashHasher(h Hasher) (int64, error) {
	if rv := reflect.ValueOf(h); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return 0, fmt.Errorf("nil %s", rv.Type())
	}
	if f, ok := h.(Fingerprinter); ok {
		return f.Fingerprint()
	}

	return h.Hash(), nil
}

// Text hashes a string with [String].
func Text(s string) (int64, error) { return String(s), nil }

// XXHash hashes a string with xxHash64.
func XXHash(s string) (int64, error) { return int64(xxhash.Sum64String(s)), nil }

// WyHash returns a strategy hashing strings with wyhash-64 under seed.
func WyHash(seed uint64) Func[string] {
	return func(s string) (int64, error) {
		return int64(wyhash.Sum64([]byte(s), seed)), nil
	}
}
