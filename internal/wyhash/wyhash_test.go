package wyhash

import "testing"

func TestSum64Empty(t *testing.T) {
	if got := Sum64(nil, 0); got != k0 {
		t.Fatalf("Sum64(nil, 0) = %#x, want %#x", got, k0)
	}

	if got := Sum64([]byte{}, k0); got != 0 {
		t.Fatalf("Sum64(empty, k0) = %#x, want 0", got)
	}
}

func TestSum64Deterministic(t *testing.T) {
	data := []byte("SELECT * FROM app_book WHERE id = %s")
	for seed := uint64(0); seed < 4; seed++ {
		if a, b := Sum64(data, seed), Sum64(data, seed); a != b {
			t.Fatalf("seed %d: got %#x then %#x", seed, a, b)
		}
	}
}

func TestSum64SeedSensitive(t *testing.T) {
	data := []byte("hello wyhash")
	if Sum64(data, 1) == Sum64(data, 2) {
		t.Fatalf("expected different sums for different seeds")
	}
}

// Every length class of the mixing routine must see all of its input.
func TestSum64LengthClasses(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7, 8, 16, 17, 48, 49, 96, 130} {
		data := bytesOf(n, 0x5a)
		base := Sum64(data, 0)

		flipped := append([]byte(nil), data...)
		flipped[n-1] ^= 0xff
		if Sum64(flipped, 0) == base {
			t.Fatalf("len %d: flipping the last byte did not change the sum", n)
		}

		flipped = append([]byte(nil), data...)
		flipped[0] ^= 0xff
		if Sum64(flipped, 0) == base {
			t.Fatalf("len %d: flipping the first byte did not change the sum", n)
		}
	}
}

func bytesOf(n int, b byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return buf
}
