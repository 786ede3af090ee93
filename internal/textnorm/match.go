package textnorm

import (
	"regexp"
	"strings"
)

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// WordPattern compiles a case-insensitive whole-word pattern for a keyword.
// Word boundaries are only anchored on sides where the keyword itself starts
// or ends with a word character, so terms like "c++" or ".net" still match.
func WordPattern(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ToLower(term))
	if len(term) > 0 && isWordByte(term[0]) {
		quoted = `\b` + quoted
	}
	if len(term) > 0 && isWordByte(term[len(term)-1]) {
		quoted = quoted + `\b`
	}
	return regexp.MustCompile(`(?i)` + quoted)
}

// ContainsWord reports whether text contains term as a whole word.
// "java" does not match inside "javascript".
func ContainsWord(text, term string) bool {
	if text == "" || term == "" {
		return false
	}
	return WordPattern(term).MatchString(text)
}
