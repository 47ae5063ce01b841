package fingerprint

import (
	"cmp"
	"maps"
	"slices"
	"sync"
)

// HashableList is an immutable sequence whose [List] fingerprint is computed
// on first use and cached. It implements [Fingerprinter], so it can be an
// element of another list or a key of a counter.
//
// A HashableList is safe for concurrent use.
type HashableList[T any] struct {
	elems []T
	fp    func() (int64, error)
}

// NewList returns a HashableList over a copy of elems hashed with hash.
func NewList[T any](elems []T, hash Func[T]) *HashableList[T] {
	l := &HashableList[T]{elems: slices.Clone(elems)}
	l.fp = sync.OnceValues(func() (int64, error) {
		return List(l.elems, hash)
	})

	return l
}

// Len returns the number of elements.
func (l *HashableList[T]) Len() int { return len(l.elems) }

// At returns the i-th element.
func (l *HashableList[T]) At(i int) T { return l.elems[i] }

// All returns a copy of the elements.
func (l *HashableList[T]) All() []T { return slices.Clone(l.elems) }

// Fingerprint returns the cached [List] fingerprint.
func (l *HashableList[T]) Fingerprint() (int64, error) { return l.fp() }

// Hash returns the cached [List] fingerprint, or 0 if an element is
// unhashable. Use Fingerprint to observe the error.
func (l *HashableList[T]) Hash() int64 {
	fp, _ := l.fp()
	return fp
}

// HashableCounter is an immutable multiset whose [CounterFunc] fingerprint
// is computed on first use and cached. Like [HashableList] it can nest as an
// element or key.
type HashableCounter[K comparable, C Integer] struct {
	counts map[K]C
	fp     func() (int64, error)
}

// NewCounter returns a HashableCounter over a copy of counts, ordering keys
// naturally.
func NewCounter[K cmp.Ordered, C Integer](counts map[K]C, hash Func[K]) *HashableCounter[K, C] {
	return NewCounterFunc(counts, cmp.Compare[K], hash)
}

// NewCounterFunc is like [NewCounter] but orders keys with compare.
func NewCounterFunc[K comparable, C Integer](counts map[K]C, compare func(a, b K) int, hash Func[K]) *HashableCounter[K, C] {
	c := &HashableCounter[K, C]{counts: maps.Clone(counts)}
	c.fp = sync.OnceValues(func() (int64, error) {
		return CounterFunc(c.counts, compare, hash)
	})

	return c
}

// Len returns the number of distinct keys.
func (c *HashableCounter[K, C]) Len() int { return len(c.counts) }

// Count returns the count of k, or 0 if k is absent.
func (c *HashableCounter[K, C]) Count(k K) C { return c.counts[k] }

// Fingerprint returns the cached [CounterFunc] fingerprint.
func (c *HashableCounter[K, C]) Fingerprint() (int64, error) { return c.fp() }

// Hash returns the cached fingerprint, or 0 on error.
func (c *HashableCounter[K, C]) Hash() int64 {
	fp, _ := c.fp()
	return fp
}
