// Package syntax holds scanning helpers shared by the tag and host grammars.
package syntax

import "unicode/utf8"

// Validator is the minimal character capability needed to scan a token.
type Validator interface {
	// IsValidChar reports whether r may appear past the first position of a token.
	IsValidChar(r rune) bool
}

// WhileValid consumes s while v accepts the current rune and returns the
// matched prefix and the remainder. The first rune must have been checked
// against the start rule already; it is always included in the match.
func WhileValid(v Validator, s string, first rune) (matched, rest string) {
	i := utf8.RuneLen(first)
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !v.IsValidChar(r) {
			break
		}
		i += size
	}
	return s[:i], s[i:]
}
