package ircv3tags

import (
	"fmt"

	"github.com/ghettovoice/ircv3tags/host"
)

// Code is a low-level parser failure code.
type Code uint8

const (
	CodeChar Code = iota
	CodeAlpha
	CodeSpace
	CodeSepList
)

func (c Code) String() string {
	switch c {
	case CodeChar:
		return "Char"
	case CodeAlpha:
		return "Alpha"
	case CodeSpace:
		return "Space"
	case CodeSepList:
		return "SepList"
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// ErrorKind classifies a tag grammar failure.
type ErrorKind uint8

const (
	KindGeneric ErrorKind = iota
	// KindEmpty reports a required element that is absent.
	KindEmpty
	// KindIllegalStartChar reports a key name whose first character fails
	// the start rule.
	KindIllegalStartChar
	// KindHost reports a vendor hostname failure lifted from the host
	// grammar.
	KindHost
	// KindNoTagMarker reports an input that does not begin with '@'.
	KindNoTagMarker
)

func (k ErrorKind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindEmpty:
		return "Empty"
	case KindIllegalStartChar:
		return "IllegalStartChar"
	case KindHost:
		return "Host"
	case KindNoTagMarker:
		return "NoTagMarker"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

const (
	reasonGeneric      = "failed to parse IRCv3 message tags"
	reasonNoTagMarker  = "tags must start with an '@'"
	reasonKeyEmpty     = "tag key does not allow empty"
	reasonKeyNotEmpty  = "tag key must not be empty"
	reasonKeyStartChar = "tag key must start with an allowed character"
)

// Error is a detailed tag grammar failure: the failing input slice, the
// low-level code, the semantic kind and a static reason.
type Error struct {
	Input  string
	Code   Code
	Kind   ErrorKind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("message tags: %s: %q", e.Reason, e.Input)
}

// Syntax indicates that this is syntax error.
func (e *Error) Syntax() bool { return true }

// SyntaxError is the generic projection of [Error]: the semantic kind and
// reason are dropped, the failing slice and code are kept.
type SyntaxError struct {
	Input string
	Code  Code
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("message tags: %s at %q", e.Code, e.Input)
}

// Syntax indicates that this is syntax error.
func (e *SyntaxError) Syntax() bool { return true }

// errorFromHost lifts a host grammar failure into the tag error family,
// preserving the failing slice, code and reason.
func errorFromHost(err *host.Error) *Error {
	code := CodeChar
	if err.Code == host.CodeAlpha {
		code = CodeAlpha
	}
	return &Error{Input: err.Input, Code: code, Kind: KindHost, Reason: err.Reason}
}
