package regexp

import "strings"

// pcreOnly lists constructs that RE2 rejects but regexp2 accepts.
var pcreOnly = []string{
	// Lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	// Atomic, branch reset, conditional and comment groups
	"(?>", "(?|", "(?(", "(?#",
	// Recursion and named backreferences
	"(?R)", "(?P>", "(?&", "(?P=", `\k<`, `\k'`, `\k{`, `\g`,
	// Anchors and escapes outside RE2
	`\G`, `\Z`, `\K`, `\R`, `\X`, `\h`, `\H`, `\V`, `\e`,
}

// needsPCRE reports whether pattern uses a construct only regexp2 supports.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numbered backreferences such as \1.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// Go only understands the (?P<name>...) spelling of named groups.
	return !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'"))
}
