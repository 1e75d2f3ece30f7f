package ircv3tags

import (
	"slices"
	"unicode"
)

// CharValidator defines which characters may start or continue a tag key
// name. Implementations are stateless value objects; a validator is bound
// to a [Parser] once and reused for every parse.
type CharValidator interface {
	IsValidStartChar(r rune) bool
	IsValidChar(r rune) bool
	// IsInvalidConstruct reports composite violations that a
	// single-character rule cannot express. Key names have none.
	IsInvalidConstruct(s string) bool
}

// StandardValidator is the default key-name policy: a key starts with an
// ASCII letter and continues with letters, digits and hyphens.
type StandardValidator struct{}

func (StandardValidator) IsValidStartChar(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func (StandardValidator) IsValidChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-'
}

func (StandardValidator) IsInvalidConstruct(string) bool { return false }

// CustomValidator extends the standard key-name policy with extra allowed
// characters, without touching the grammar itself.
type CustomValidator struct {
	extra      []rune
	extraStart []rune
}

func (v CustomValidator) IsValidStartChar(r rune) bool {
	return StandardValidator{}.IsValidStartChar(r) || slices.Contains(v.extraStart, r)
}

func (v CustomValidator) IsValidChar(r rune) bool {
	return StandardValidator{}.IsValidChar(r) || slices.Contains(v.extra, r)
}

func (v CustomValidator) IsInvalidConstruct(string) bool { return false }

// ParserBuilder assembles a [Parser] with a relaxed key-name policy.
type ParserBuilder struct {
	v CustomValidator
}

// CustomParser starts a builder for a parser with extra allowed key-name
// characters:
//
//	p := ircv3tags.CustomParser().AllowChars('_', '.').Build()
func CustomParser() *ParserBuilder { return &ParserBuilder{} }

// AllowChars permits chars anywhere past the first position of a key name.
func (b *ParserBuilder) AllowChars(chars ...rune) *ParserBuilder {
	b.v.extra = append(b.v.extra, chars...)
	return b
}

// AllowStartChars permits chars at the first position of a key name.
func (b *ParserBuilder) AllowStartChars(chars ...rune) *ParserBuilder {
	b.v.extraStart = append(b.v.extraStart, chars...)
	return b
}

// Build returns the parser for the accumulated policy.
func (b *ParserBuilder) Build() *Parser[CustomValidator] { return NewParser(b.v) }
