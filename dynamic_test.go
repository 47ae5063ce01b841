package fingerprint_test

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"testing"

	"go.dw1.io/x/fingerprint"
)

type modelID int64

func (id modelID) Hash() int64 { return int64(id) * 7 }

type label string

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{name: "nil", in: nil, want: 0},
		{name: "hasher", in: modelID(6), want: 42},
		{name: "true", in: true, want: 1},
		{name: "int", in: -1, want: -2},
		{name: "int8", in: int8(-1), want: -2},
		{name: "uint16", in: uint16(9), want: 9},
		{name: "float", in: 1.5, want: 1152921504606846977},
		{name: "bigInt", in: new(big.Int).Lsh(big.NewInt(1), 61), want: 1},
		{name: "numberInt", in: json.Number("18446744073709551621"), want: 13},
		{name: "numberFloat", in: json.Number("1.5"), want: 1152921504606846977},
		{name: "string", in: "abc", want: 193485963},
		{name: "namedString", in: label("abc"), want: 193485963},
		{name: "bytes", in: []byte("abc"), want: 193485963},
		{name: "array", in: [2]int{1, 2}, want: -3550055125485641917},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fingerprint.Value(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Value(%#v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestValueUnhashable(t *testing.T) {
	x := 1
	cases := map[string]any{
		"slice":       []int{1},
		"map":         map[string]int{},
		"struct":      struct{ A int }{1},
		"pointer":     &x,
		"func":        func() {},
		"nestedArray": [1][]int{{1}},
		"badNumber":   json.Number("x"),
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := fingerprint.Value(v); err == nil {
				t.Fatalf("expected %T to be unhashable", v)
			}
		})
	}
}

func TestValueWith(t *testing.T) {
	hash := fingerprint.ValueWith(fingerprint.XXHash)

	got, err := hash("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1205034819632174695 {
		t.Fatalf("ValueWith(XXHash)(\"\") = %d", got)
	}

	// Non-string values keep the default numeric hash.
	if got, _ := hash(-1); got != -2 {
		t.Fatalf("ValueWith(XXHash)(-1) = %d, want -2", got)
	}

	if got, _ := fingerprint.ValueWith(nil)("abc"); got != 193485963 {
		t.Fatalf("ValueWith(nil) should fall back to Value, got %d", got)
	}
}

func TestWyHash(t *testing.T) {
	got, err := fingerprint.WyHash(0)("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -6884282663029611473 {
		t.Fatalf("WyHash(0)(\"\") = %d", got)
	}

	a, _ := fingerprint.WyHash(1)("abc")
	b, _ := fingerprint.WyHash(2)("abc")
	if a == b {
		t.Fatalf("expected seed to change the hash")
	}
}

func TestOf(t *testing.T) {
	got, err := fingerprint.List([]modelID{1, 2}, fingerprint.Of[modelID])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 98767 - 2*555 + (0 + 7*1001) + (1 + 14*1001)
	if want := int64(97657 + 7007 + 1 + 14014); got != want {
		t.Fatalf("List(Of) = %d, want %d", got, want)
	}
}

func TestOfNilPointer(t *testing.T) {
	if _, err := fingerprint.Of[*modelID](nil); err == nil {
		t.Fatalf("expected an error for a nil pointer")
	}
}

func TestHashListNilHasher(t *testing.T) {
	got, err := fingerprint.HashList([]any{modelID(1), (*modelID)(nil)})
	if !errors.Is(err, fingerprint.ErrUnhashable) {
		t.Fatalf("expected ErrUnhashable, got %v", err)
	}
	if got != 0 {
		t.Fatalf("expected no partial result, got %d", got)
	}
}

func TestHashList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{name: "empty", in: []any{}, want: 98767},
		{name: "nilSlice", in: []any(nil), want: 98767},
		{name: "anySlice", in: []any{1, 2, 3}, want: 103111},
		{name: "typedSlice", in: []int{1, 2, 3}, want: 103111},
		{name: "array", in: [3]int{3, 2, 1}, want: 103111},
		{name: "strings", in: []string{"a"}, want: 177945882},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fingerprint.HashList(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("HashList(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestHashListErrors(t *testing.T) {
	t.Run("notSequence", func(t *testing.T) {
		for _, in := range []any{nil, "abc", 42, map[string]int{}} {
			if _, err := fingerprint.HashList(in); !errors.Is(err, fingerprint.ErrNotSequence) {
				t.Fatalf("HashList(%#v): expected ErrNotSequence, got %v", in, err)
			}
		}
	})

	t.Run("unhashableElement", func(t *testing.T) {
		_, err := fingerprint.HashList([]any{1, []any{2}})
		if !errors.Is(err, fingerprint.ErrUnhashable) {
			t.Fatalf("expected ErrUnhashable, got %v", err)
		}

		var typeErr *fingerprint.TypeError
		if !errors.As(err, &typeErr) || typeErr.Type != "[]interface {}" {
			t.Fatalf("unexpected error: %#v", err)
		}
	})

	t.Run("unhashableTypedElement", func(t *testing.T) {
		_, err := fingerprint.HashList([][]int{{1}})
		if !errors.Is(err, fingerprint.ErrUnhashable) {
			t.Fatalf("expected ErrUnhashable, got %v", err)
		}
	})
}

func TestHashListFunc(t *testing.T) {
	a, err := fingerprint.HashListFunc([]any{"a", "b"}, fingerprint.ValueWith(fingerprint.WyHash(7)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := fingerprint.HashList([]any{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a == b {
		t.Fatalf("expected the text strategy to change the fingerprint")
	}
}

func TestHashString(t *testing.T) {
	for _, in := range []any{"abc", []byte("abc"), label("abc")} {
		got, err := fingerprint.HashString(in)
		if err != nil {
			t.Fatalf("HashString(%#v): unexpected error: %v", in, err)
		}
		if got != 193485963 {
			t.Fatalf("HashString(%#v) = %d, want 193485963", in, got)
		}
	}

	for _, in := range []any{nil, 42, []rune("abc"), []string{"abc"}} {
		if _, err := fingerprint.HashString(in); !errors.Is(err, fingerprint.ErrNotString) {
			t.Fatalf("HashString(%#v): expected ErrNotString, got %v", in, err)
		}
	}
}

func TestHashCounter(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{name: "empty", in: map[string]int{}, want: 98767},
		{name: "nilMap", in: map[string]int(nil), want: 98767},
		{name: "emptyWithoutValidCounts", in: map[string][]int{}, want: 98767},
		{name: "strings", in: map[string]int{"a": 2, "b": 1}, want: 355794001},
		{name: "insertedReversed", in: map[any]any{"b": 1, "a": int8(2)}, want: 355794001},
		{name: "jsonCounts", in: map[string]any{"a": json.Number("2")}, want: 177945884},
		{name: "mixedNumbers", in: map[any]int{1: 1, 2.5: 1, true: 1}, want: 9018075074},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fingerprint.HashCounter(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("HashCounter(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestHashCounterMatchesCounter(t *testing.T) {
	counts := map[string]int{"only": 3, "defer": 1, "values_list": 2}

	want, err := fingerprint.Counter(counts, fingerprint.Text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := fingerprint.HashCounter(counts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != want {
		t.Fatalf("HashCounter = %d, Counter = %d", got, want)
	}
}

func TestHashCounterNaNKeys(t *testing.T) {
	counts := map[float64]int{}
	counts[math.NaN()] = 5
	counts[math.NaN()] = 7

	got, err := fingerprint.HashCounter(counts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// NaN hashes to 0: 98767 - 2*555 + 5 + 7
	if got != 97669 {
		t.Fatalf("HashCounter = %d, want 97669", got)
	}

	want, err := fingerprint.Counter(counts, fingerprint.Float[float64])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("HashCounter = %d, Counter = %d", got, want)
	}
}

func TestHashCounterErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want error
	}{
		{name: "nil", in: nil, want: fingerprint.ErrNotMapping},
		{name: "slice", in: []int{1}, want: fingerprint.ErrNotMapping},
		{name: "mixedKeys", in: map[any]int{"a": 2, 1: 1}, want: fingerprint.ErrIncomparable},
		{name: "nilKey", in: map[any]int{nil: 1, 2: 1}, want: fingerprint.ErrIncomparable},
		{name: "structKeys", in: map[struct{ A int }]int{{1}: 1}, want: fingerprint.ErrIncomparable},
		{name: "floatCount", in: map[string]float64{"a": 1.5}, want: fingerprint.ErrMalformed},
		{name: "stringCount", in: map[string]string{"a": "1"}, want: fingerprint.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fingerprint.HashCounter(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if got != 0 {
				t.Fatalf("expected no partial result, got %d", got)
			}
		})
	}
}

func TestHashCounterFunc(t *testing.T) {
	t.Run("textStrategy", func(t *testing.T) {
		got, err := fingerprint.HashCounterFunc(map[string]int{"a": 2, "b": 1}, fingerprint.ValueWith(fingerprint.Text))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 355794001 {
			t.Fatalf("HashCounterFunc = %d, want 355794001", got)
		}
	})

	t.Run("unhashableKey", func(t *testing.T) {
		errBoom := errors.New("boom")
		hash := func(any) (int64, error) { return 0, errBoom }

		_, err := fingerprint.HashCounterFunc(map[string]int{"a": 1}, hash)
		if !errors.Is(err, fingerprint.ErrUnhashable) || !errors.Is(err, errBoom) {
			t.Fatalf("expected ErrUnhashable wrapping the cause, got %v", err)
		}
	})

	t.Run("byteArrayKeys", func(t *testing.T) {
		a, err := fingerprint.HashCounter(map[[2]byte]int{{'a', 'b'}: 1, {'a', 'a'}: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		b, err := fingerprint.HashCounter(map[[2]byte]int{{'a', 'a'}: 2, {'a', 'b'}: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if a != b {
			t.Fatalf("expected equal fingerprints, got %d and %d", a, b)
		}
	})
}
