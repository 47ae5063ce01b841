package fingerprint

import (
	"errors"
	"math"
	"math/big"
)

// Numeric hashes follow CPython on 64-bit platforms: integers reduce modulo
// the Mersenne prime 2^61-1, floats that hold an integral value hash like the
// integer, and -1 is remapped to -2.
const (
	pyModulusBits = 61
	pyModulus     = 1<<pyModulusBits - 1
	pyInf         = 314159
)

var bigModulus = big.NewInt(pyModulus)

var errNilBigInt = errors.New("nil *big.Int")

// Signed is the set of signed integer types accepted by [Int].
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types accepted by [Uint].
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int hashes a signed integer like CPython's int hash.
func Int[T Signed](v T) (int64, error) { return hashInt(int64(v)), nil }

// Uint hashes an unsigned integer like CPython's int hash.
func Uint[T Unsigned](v T) (int64, error) { return int64(uint64(v) % pyModulus), nil }

// Bool hashes false as 0 and true as 1.
func Bool(v bool) (int64, error) {
	if v {
		return 1, nil
	}

	return 0, nil
}

// BigInt hashes an arbitrary-precision integer like CPython's int hash.
func BigInt(v *big.Int) (int64, error) {
	if v == nil {
		return 0, errNilBigInt
	}

	r := new(big.Int).Abs(v)
	h := r.Mod(r, bigModulus).Int64()
	if v.Sign() < 0 {
		h = -h
	}

	return notMinusOne(h), nil
}

// Float hashes a floating-point number like CPython's float hash. NaN hashes
// to 0 and ±Inf to ±314159.
func Float[T ~float32 | ~float64](v T) (int64, error) { return hashFloat(float64(v)), nil }

func hashInt(v int64) int64 {
	if v >= 0 {
		return int64(uint64(v) % pyModulus)
	}

	// uint64(-v) is the magnitude even for math.MinInt64.
	return notMinusOne(-int64(uint64(-v) % pyModulus))
}

func hashFloat(v float64) int64 {
	switch {
	case math.IsInf(v, 1):
		return pyInf
	case math.IsInf(v, -1):
		return -pyInf
	case math.IsNaN(v):
		return 0
	}

	m, e := math.Frexp(v)
	sign := int64(1)
	if m < 0 {
		sign = -1
		m = -m
	}

	// Consume the mantissa 28 bits at a time, rotating the accumulator
	// left within 61 bits.
	var x uint64
	for m != 0 {
		x = (x<<28)&pyModulus | x>>(pyModulusBits-28)
		m *= 1 << 28
		e -= 28
		y := uint64(m)
		m -= float64(y)
		x += y
		if x >= pyModulus {
			x -= pyModulus
		}
	}

	if e >= 0 {
		e %= pyModulusBits
	} else {
		e = pyModulusBits - 1 - (-1-e)%pyModulusBits
	}
	x = (x<<uint(e))&pyModulus | x>>(pyModulusBits-uint(e))

	return notMinusOne(int64(x) * sign)
}

func notMinusOne(h int64) int64 {
	if h == -1 {
		return -2
	}

	return h
}
