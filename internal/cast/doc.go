// Package cast converts dynamic counter values to int64 counts.
//
// Go integer types go through [safemath] so that values outside the int64
// range are rejected instead of silently truncated. Booleans and
// [encoding/json.Number] literals go through [cast]. Floats, strings and every
// other type are rejected: a count must already be an integer.
package cast
