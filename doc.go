// Package fingerprint provides the deterministic integer hashes used to
// fingerprint lists, strings and counters for caching and change detection.
//
// Three folds are available:
//
//	List / HashList        ordered sequence of hashable elements
//	String / HashString    DJB2 over the UTF-8 bytes of a string
//	Counter / HashCounter  key→count mapping, independent of map order
//
// Results are 64-bit signed integers ([Width]). Every fold wraps on overflow
// with two's-complement arithmetic, so values stay bit-for-bit comparable
// with fingerprints produced by other implementations of the same width.
//
// Element and key hashes come from a pluggable [Func] strategy. [Value] is
// the default one: numbers hash like CPython ints and floats, strings hash
// with [String], and types implementing [Hasher] supply their own value.
//
// All functions are pure and safe for concurrent use.
package fingerprint
