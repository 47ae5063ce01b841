// Package regexp compiles the masking patterns applied to text before it is
// fingerprinted.
//
// Patterns compile with coregex (RE2-compatible) unless they use Perl-only
// constructs such as lookarounds, atomic groups or backreferences, in which
// case [regexp2] is used instead.
package regexp

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled pattern backed by exactly one of the two engines.
type Regexp struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses pattern and selects the engine able to run it.
func Compile(pattern string) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: pattern, pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, core: re}, nil
}

// String returns the source text used to compile the regular expression.
func (r *Regexp) String() string { return r.pattern }

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	ok, err := r.pcre.MatchString(s)
	return err == nil && ok
}

// ReplaceAllString returns a copy of src with every match replaced by repl.
// A regexp2 matching failure, such as a timeout, leaves src unchanged.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	if r.core != nil {
		return r.core.ReplaceAllString(src, repl)
	}

	replaced, err := r.pcre.Replace(src, repl, -1, -1)
	if err != nil {
		return src
	}

	return replaced
}
