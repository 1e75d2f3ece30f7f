// Package ircv3tags parses the message-tags prefix of an IRCv3 line into an
// ordered key/value collection.
//
//	line := "@id=234AB;+example.com/key=value :nick!user@host PRIVMSG #channel :Hello"
//	tags, rest, err := ircv3tags.Parse(line)
//	// rest == ":nick!user@host PRIVMSG #channel :Hello"
//	// tags.Get("id") == ("234AB", true)
//	// tags.Get("+example.com/key") == ("value", true)
//
// Values are kept raw; use [Unescape] or [Tags.GetUnescaped] to recover
// literal characters. Key-name character policies are pluggable, see
// [NewParser], [WithUnderscore] and [CustomParser]. The standalone RFC 952
// hostname grammar lives in the host subpackage.
//
// See https://ircv3.net/specs/extensions/message-tags.html.
package ircv3tags

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/ircv3tags/internal/constraints"
	"github.com/ghettovoice/ircv3tags/internal/grammar"
)

var std = NewParser(StandardValidator{})

// Parse parses the tags prefix of line with the standard key-name policy
// and returns the tags and the remainder following the delimiting space.
func Parse(line string) (Tags, string, error) { return errtrace.Wrap3(std.Parse(line)) }

// DebugParse is like [Parse] with full diagnostics: the returned error is a
// [*Error].
func DebugParse(line string) (Tags, string, error) { return errtrace.Wrap3(std.DebugParse(line)) }

// MustParse is like [Parse] but panics on malformed input. Use it only when
// the line is known to carry a valid tags prefix.
func MustParse(line string) (Tags, string) { return std.MustParse(line) }

// ValidateKeyName reports whether s is entirely a strict tag key name:
// a letter followed by letters, digits and interior hyphens.
func ValidateKeyName[T constraints.Byteseq](s T) bool { return grammar.IsKeyName(s) }

// ValidateVendor reports whether s is entirely a valid RFC 952 vendor
// hostname.
func ValidateVendor[T constraints.Byteseq](s T) bool { return grammar.IsHostName(s) }
