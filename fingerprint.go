package fingerprint

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"go.dw1.io/x/fingerprint/internal/cast"
)

// Width is the bit width of every fingerprint. Values are only comparable
// with fingerprints computed at the same width under the same wraparound.
const Width = 64

// Fold constants shared by the list and counter folds.
const (
	foldSeed   = 98767
	foldStride = 555
	termMod    = 9999999
	termScale  = 1001

	textSeed = 5381
)

// Entry point names reported in [TypeError.Func].
const (
	funcList    = "hash_list"
	funcString  = "hash_string"
	funcCounter = "hash_counter"
)

// Integer is the set of count types accepted by [Counter] and [CounterFunc].
type Integer = cast.Integer

// List returns the fingerprint of an ordered sequence. Each element is hashed
// with hash and folded as
//
//	fp = 98767 - n*555
//	fp += i + (hash(elems[i]) % 9999999) * 1001
//
// with int64 wraparound and a truncated remainder. The first hash error aborts
// the fold with [ErrUnhashable].
//
// The position term does not depend on the element, so permuting elems yields
// the same fingerprint. Do not use List where order must matter: the fold is
// kept as is because stored fingerprints were computed with it.
func List[T any](elems []T, hash Func[T]) (int64, error) {
	fp := foldSeed - int64(len(elems))*foldStride
	for i, e := range elems {
		v, err := hash(e)
		if err != nil {
			return 0, typeError(funcList, ErrUnhashable, e, err)
		}

		fp = fold(fp, int64(i), v)
	}

	return fp, nil
}

// String returns the DJB2 fingerprint of the UTF-8 bytes of s:
//
//	h = 5381
//	h = h*33 + c
//
// computed on uint64 and reinterpreted as int64. The scan stops at the first
// NUL byte, so "ab\x00cd" fingerprints like "ab".
func String(s string) int64 { return djb2(s) }

// Bytes is like [String] but for a byte slice.
func Bytes(b []byte) int64 { return djb2(b) }

// Counter returns the fingerprint of a multiset. Keys are sorted in their
// natural order before folding, so the result does not depend on map
// iteration order:
//
//	fp = 98767 - n*555
//	fp += counts[k] + (hash(k) % 9999999) * 1001
//
// An empty or nil map yields 98767.
func Counter[K cmp.Ordered, C Integer](counts map[K]C, hash Func[K]) (int64, error) {
	return CounterFunc(counts, cmp.Compare[K], hash)
}

// CounterFunc is like [Counter] but sorts keys with compare, which must be a
// strict weak ordering consistent with key equality.
func CounterFunc[K comparable, C Integer](counts map[K]C, compare func(a, b K) int, hash Func[K]) (int64, error) {
	if len(counts) == 0 {
		return foldSeed, nil
	}

	// Entries keep keys that never equal themselves (NaN) paired with their
	// counts; a lookup by key would miss them.
	entries := lo.Entries(counts)
	slices.SortFunc(entries, func(a, b lo.Entry[K, C]) int {
		return compare(a.Key, b.Key)
	})

	fp := foldSeed - int64(len(entries))*foldStride
	for _, e := range entries {
		n, err := cast.ToCount(e.Value)
		if err != nil {
			return 0, typeError(funcCounter, ErrMalformed, e.Value, err)
		}

		v, err := hash(e.Key)
		if err != nil {
			return 0, typeError(funcCounter, ErrUnhashable, e.Key, err)
		}

		fp = fold(fp, n, v)
	}

	return fp, nil
}

func fold(fp, extra, v int64) int64 {
	return fp + extra + (v%termMod)*termScale
}

func djb2[S ~string | ~[]byte](s S) int64 {
	h := uint64(textSeed)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 0 {
			break
		}

		h = h<<5 + h + uint64(c)
	}

	return int64(h)
}
