package ircv3tags

//go:generate go tool errtrace -w .

import (
	"errors"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/ircv3tags/host"
	"github.com/ghettovoice/ircv3tags/internal/syntax"
)

// valueStopChars are the bytes forbidden raw in a tag value:
// NUL, CR, LF, semicolon and space.
const valueStopChars = "\x00\r\n; "

const clientPrefix = "+"

// Parser parses the message-tags prefix of an IRC line. The key-name policy
// V is pluggable; the vendor sub-grammar always uses the standard RFC 952
// host policy. A Parser holds no mutable state and is safe for concurrent
// reuse.
type Parser[V CharValidator] struct {
	keyName V
	vendor  host.Parser[host.StandardValidator]
}

// NewParser returns a tag parser using the key-name policy v.
func NewParser[V CharValidator](v V) *Parser[V] {
	return &Parser[V]{keyName: v, vendor: host.New(host.StandardValidator{})}
}

// WithUnderscore returns a parser that additionally allows '_' past the
// first position of a key name.
func WithUnderscore() *Parser[CustomValidator] {
	return CustomParser().AllowChars('_').Build()
}

// DebugParse parses the tags prefix of line and returns the tags and the
// remainder following the delimiting space. On failure the returned error
// is a [*Error] carrying the failing input slice and diagnosis.
func (p *Parser[V]) DebugParse(line string) (Tags, string, error) {
	if !strings.HasPrefix(line, "@") {
		return Tags{}, "", errtrace.Wrap(&Error{Input: line, Code: CodeChar, Kind: KindNoTagMarker, Reason: reasonNoTagMarker})
	}

	list, rest, err := p.parseList(line[len("@"):])
	if err != nil {
		return Tags{}, "", errtrace.Wrap(err)
	}
	if !strings.HasPrefix(rest, " ") {
		return Tags{}, "", errtrace.Wrap(&Error{Input: rest, Code: CodeSpace, Kind: KindGeneric, Reason: reasonGeneric})
	}
	return Tags{list: list}, rest[len(" "):], nil
}

// Parse is the tolerant form of [Parser.DebugParse]: the same grammar, with
// the diagnostic error projected down to a [*SyntaxError].
func (p *Parser[V]) Parse(line string) (Tags, string, error) {
	tags, rest, err := p.DebugParse(line)
	if err != nil {
		var de *Error
		if errors.As(err, &de) {
			return Tags{}, "", errtrace.Wrap(&SyntaxError{Input: de.Input, Code: de.Code})
		}
		return Tags{}, "", errtrace.Wrap(err)
	}
	return tags, rest, nil
}

// MustParse is like [Parser.Parse] but panics on malformed input. Use it
// only when the line is known to carry a valid tags prefix.
func (p *Parser[V]) MustParse(line string) (Tags, string) {
	tags, rest, err := p.DebugParse(line)
	if err != nil {
		panic(err)
	}
	return tags, rest
}

// parseList parses one or more ';'-separated tags. A tag failing to parse
// after a separator ends the list at the last complete tag; the separator
// stays unconsumed and the caller's delimiter check reports the position.
func (p *Parser[V]) parseList(s string) ([]Tag, string, error) {
	t, rest, err := p.parseTag(s)
	if err != nil {
		return nil, "", errtrace.Wrap(err)
	}
	list := []Tag{t}
	for strings.HasPrefix(rest, ";") {
		t, next, err := p.parseTag(rest[len(";"):])
		if err != nil {
			break
		}
		list = append(list, t)
		rest = next
	}
	return list, rest, nil
}

// parseTag parses key [ "=" value ]. A present '=' always yields a value,
// possibly empty; absent '=' leaves HasValue false.
func (p *Parser[V]) parseTag(s string) (Tag, string, error) {
	key, rest, err := p.parseKey(s)
	if err != nil {
		return Tag{}, "", errtrace.Wrap(err)
	}
	if strings.HasPrefix(rest, "=") {
		val, next := p.parseValue(rest[len("="):])
		return Tag{Key: key, Value: val, HasValue: true}, next, nil
	}
	return Tag{Key: key}, rest, nil
}

// parseKey consumes [ "+" ] [ host "/" ] key-name and returns the key as
// one verbatim substring of s. The vendor attempt backtracks wholly when
// the host grammar or the following '/' does not match.
func (p *Parser[V]) parseKey(s string) (string, string, error) {
	rest := s
	if strings.HasPrefix(rest, clientPrefix) {
		rest = rest[len(clientPrefix):]
	}
	if _, hrest, err := p.parseVendor(rest); err == nil && strings.HasPrefix(hrest, "/") {
		rest = hrest[len("/"):]
	}
	_, rest, err := p.parseKeyName(rest)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	return s[:len(s)-len(rest)], rest, nil
}

// parseVendor parses the vendor hostname, lifting host grammar failures
// into the tag error family.
func (p *Parser[V]) parseVendor(s string) (string, string, error) {
	h, rest, err := p.vendor.DebugParse(s)
	if err != nil {
		var herr *host.Error
		if errors.As(err, &herr) {
			return "", "", errtrace.Wrap(errorFromHost(herr))
		}
		return "", "", errtrace.Wrap(err)
	}
	return h, rest, nil
}

func (p *Parser[V]) parseKeyName(s string) (string, string, error) {
	if s == "" {
		return "", "", errtrace.Wrap(&Error{Input: s, Code: CodeChar, Kind: KindEmpty, Reason: reasonKeyEmpty})
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !p.keyName.IsValidStartChar(first) {
		return "", "", errtrace.Wrap(&Error{Input: s, Code: CodeChar, Kind: KindIllegalStartChar, Reason: reasonKeyStartChar})
	}
	name, rest := syntax.WhileValid(p.keyName, s, first)
	if rest == "" {
		// the tags prefix is always terminated, so a key running to the
		// end of input cannot form a complete tag
		return "", "", errtrace.Wrap(&Error{Input: s, Code: CodeChar, Kind: KindEmpty, Reason: reasonKeyNotEmpty})
	}
	return name, rest, nil
}

// parseValue greedily consumes value bytes up to NUL, CR, LF, ';' or space.
// An empty match is valid: "k=" carries an empty value.
func (p *Parser[V]) parseValue(s string) (string, string) {
	if i := strings.IndexAny(s, valueStopChars); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}
