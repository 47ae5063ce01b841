package fingerprint

import "math/bits"

// xxHash primes used by the CPython 3.8+ tuple hash.
const (
	tuplePrime1 = 11400714785074694791
	tuplePrime2 = 14029467366897019727
	tuplePrime5 = 2870177450012600261

	tupleLenSalt  = tuplePrime5 ^ 3527539
	tupleMinusOne = 1546275796
)

// Tuple combines already hashed members into one value the way CPython hashes
// a tuple. It is the combiner for composite fingerprints, e.g.
//
//	Tuple(fileID, lineno, String(code), String(funcName))
//
// Tuple() of no members is a fixed constant.
func Tuple(hashes ...int64) int64 {
	acc := uint64(tuplePrime5)
	for _, h := range hashes {
		acc += uint64(h) * tuplePrime2
		acc = bits.RotateLeft64(acc, 31)
		acc *= tuplePrime1
	}
	acc += uint64(len(hashes)) ^ tupleLenSalt

	if acc == ^uint64(0) {
		return tupleMinusOne
	}

	return int64(acc)
}
