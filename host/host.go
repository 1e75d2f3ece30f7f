// Package host implements the RFC 952 hostname grammar, used standalone and
// as the vendor-prefix sub-grammar of an IRCv3 tag key.
//
// From RFC 952:
//   - a name is a text string drawn from the alphabet, digits, minus sign
//     and period;
//   - names must start with a letter and end with a letter or digit;
//   - segments (labels) are separated by periods;
//   - consecutive hyphens are not allowed.
//
// See https://datatracker.ietf.org/doc/html/rfc952.
package host

//go:generate go tool errtrace -w .

import (
	"errors"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/ircv3tags/internal/constraints"
	"github.com/ghettovoice/ircv3tags/internal/grammar"
	"github.com/ghettovoice/ircv3tags/internal/syntax"
)

// Validator defines which characters may start or continue a host label and
// which composite constructs invalidate a matched label.
type Validator interface {
	IsValidStartChar(r rune) bool
	IsValidChar(r rune) bool
	// IsInvalidConstruct reports composite violations that a single-character
	// rule cannot express, e.g. a trailing or doubled separator.
	IsInvalidConstruct(s string) bool
}

// StandardValidator is the RFC 952 character policy.
type StandardValidator struct{}

func (StandardValidator) IsValidStartChar(r rune) bool { return isASCIIAlpha(r) }

func (StandardValidator) IsValidChar(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r) || r == '-'
}

func (StandardValidator) IsInvalidConstruct(s string) bool {
	return strings.HasSuffix(s, "-") || strings.Contains(s, "--")
}

func isASCIIAlpha(r rune) bool { return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' }

func isASCIIDigit(r rune) bool { return '0' <= r && r <= '9' }

// Parser parses dotted hostnames under the character policy V. A Parser
// holds no mutable state and is safe for concurrent reuse; the zero value
// of Parser[StandardValidator] is ready to use.
type Parser[V Validator] struct {
	v V
}

// New returns a host parser using the character policy v.
func New[V Validator](v V) Parser[V] { return Parser[V]{v: v} }

var std Parser[StandardValidator]

// DebugParse parses a hostname from the beginning of s and returns the
// matched host and the unconsumed remainder. The matched host is a verbatim
// substring of s including internal dots. On failure the returned error is
// a [*Error] carrying the failing input slice and diagnosis.
//
// Invalid-construct failures are reported against the whole input s, so
// that the diagnostic points at the start of the host rather than mid-label.
func (p Parser[V]) DebugParse(s string) (h, rest string, err error) {
	if s == "" {
		return "", "", errtrace.Wrap(&Error{Input: s, Code: CodeAlpha, Kind: KindEmpty, Reason: reasonStartWithLetter})
	}

	first, _ := utf8.DecodeRuneInString(s)
	if !p.v.IsValidStartChar(first) {
		return "", "", errtrace.Wrap(&Error{Input: s, Code: CodeAlpha, Kind: KindIllegalStartChar, Reason: reasonStartWithLetter})
	}

	label, rest := syntax.WhileValid(p.v, s, first)
	if err := p.checkLabel(s, label); err != nil {
		return "", "", err
	}

	n := len(label)
	for strings.HasPrefix(rest, ".") {
		next := rest[len("."):]
		if next == "" {
			return "", "", errtrace.Wrap(&Error{Input: next, Code: CodeAlpha, Kind: KindEmpty, Reason: reasonStartWithLetter})
		}
		first, _ = utf8.DecodeRuneInString(next)
		if !p.v.IsValidStartChar(first) {
			return "", "", errtrace.Wrap(&Error{Input: next, Code: CodeAlpha, Kind: KindIllegalStartChar, Reason: reasonStartWithLetter})
		}
		label, rest = syntax.WhileValid(p.v, next, first)
		if err := p.checkLabel(s, label); err != nil {
			return "", "", err
		}
		n += len(".") + len(label)
	}
	return s[:n], rest, nil
}

func (p Parser[V]) checkLabel(input, label string) error {
	if !p.v.IsInvalidConstruct(label) {
		return nil
	}
	reason := reasonInvalidLabelConstruct
	switch {
	case strings.HasSuffix(label, "-"):
		reason = reasonEndWithAlphanum
	case strings.Contains(label, "--"):
		reason = reasonNoConsecutiveHyphens
	}
	return errtrace.Wrap(&Error{Input: input, Code: CodeChar, Kind: KindInvalidConstruct, Reason: reason})
}

// Parse is the tolerant form of [Parser.DebugParse]: the same grammar, with
// the diagnostic error projected down to a [*SyntaxError].
func (p Parser[V]) Parse(s string) (h, rest string, err error) {
	h, rest, err = p.DebugParse(s)
	if err != nil {
		var de *Error
		if errors.As(err, &de) {
			return "", "", errtrace.Wrap(&SyntaxError{Input: de.Input, Code: de.Code})
		}
		return "", "", errtrace.Wrap(err)
	}
	return h, rest, nil
}

// MustParse is like [Parser.Parse] but panics on malformed input. Use it
// only when the input is known to hold a valid hostname.
func (p Parser[V]) MustParse(s string) (h, rest string) {
	h, rest, err := p.DebugParse(s)
	if err != nil {
		panic(err)
	}
	return h, rest
}

// Parse parses a hostname with the standard RFC 952 policy.
func Parse(s string) (h, rest string, err error) { return errtrace.Wrap3(std.Parse(s)) }

// DebugParse parses a hostname with the standard RFC 952 policy and full
// diagnostics.
func DebugParse(s string) (h, rest string, err error) { return errtrace.Wrap3(std.DebugParse(s)) }

// MustParse parses a hostname with the standard RFC 952 policy and panics
// on malformed input.
func MustParse(s string) (h, rest string) { return std.MustParse(s) }

// Validate reports whether s is entirely a valid RFC 952 hostname.
func Validate[T constraints.Byteseq](s T) bool { return grammar.IsHostName(s) }

// ValidateLabel reports whether s is entirely a single valid RFC 952 label.
func ValidateLabel[T constraints.Byteseq](s T) bool { return grammar.IsLabel(s) }
