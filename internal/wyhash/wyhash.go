package wyhash

import (
	"encoding/binary"
	"math/bits"
)

// Secrets from the reference implementation, fixed so sums are
// deterministic across processes.
const (
	k0 = uint64(0xa0761d6478bd642f)
	k1 = uint64(0xe7037ed1a0b428db)
	k2 = uint64(0x8ebc6af09c88c6e3)
	k3 = uint64(0x589965cc75374cc3)
	k4 = uint64(0x1d8e4e27c47d124f)
)

// Sum64 returns the wyhash-64 of data under seed.
func Sum64(data []byte, seed uint64) uint64 {
	var a, c uint64
	s := len(data)
	seed ^= k0

	switch {
	case s == 0:
		return seed
	case s < 4:
		a = uint64(data[0])
		a |= uint64(data[s>>1]) << 8
		a |= uint64(data[s-1]) << 16
	case s == 4:
		a = uint64(binary.LittleEndian.Uint32(data))
		c = a
	case s < 8:
		a = uint64(binary.LittleEndian.Uint32(data))
		c = uint64(binary.LittleEndian.Uint32(data[s-4:]))
	case s == 8:
		a = binary.LittleEndian.Uint64(data)
		c = a
	case s <= 16:
		a = binary.LittleEndian.Uint64(data)
		c = binary.LittleEndian.Uint64(data[s-8:])
	default:
		l := s
		i := 0
		if l > 48 {
			seed1 := seed
			seed2 := seed
			for ; l > 48; l -= 48 {
				seed = mix64(binary.LittleEndian.Uint64(data[i:])^k1, binary.LittleEndian.Uint64(data[i+8:])^seed)
				seed1 = mix64(binary.LittleEndian.Uint64(data[i+16:])^k2, binary.LittleEndian.Uint64(data[i+24:])^seed1)
				seed2 = mix64(binary.LittleEndian.Uint64(data[i+32:])^k3, binary.LittleEndian.Uint64(data[i+40:])^seed2)
				i += 48
			}
			seed ^= seed1 ^ seed2
		}
		for ; l > 16; l -= 16 {
			seed = mix64(binary.LittleEndian.Uint64(data[i:])^k1, binary.LittleEndian.Uint64(data[i+8:])^seed)
			i += 16
		}
		a = binary.LittleEndian.Uint64(data[i+l-16:])
		c = binary.LittleEndian.Uint64(data[i+l-8:])
	}

	return mix64(k4^uint64(s), mix64(a^k1, c^seed))
}

func mix64(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
