package host

import "fmt"

// Code is a low-level parser failure code.
type Code uint8

const (
	CodeChar Code = iota
	CodeAlpha
)

func (c Code) String() string {
	switch c {
	case CodeChar:
		return "Char"
	case CodeAlpha:
		return "Alpha"
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// ErrorKind classifies a host grammar failure.
type ErrorKind uint8

const (
	KindGeneric ErrorKind = iota
	// KindEmpty reports a required element that is absent.
	KindEmpty
	// KindIllegalStartChar reports a label whose first character fails the start rule.
	KindIllegalStartChar
	// KindInvalidConstruct reports a label with a trailing or doubled hyphen.
	KindInvalidConstruct
)

func (k ErrorKind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindEmpty:
		return "Empty"
	case KindIllegalStartChar:
		return "IllegalStartChar"
	case KindInvalidConstruct:
		return "InvalidConstruct"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

const (
	reasonStartWithLetter       = "label must start with the ascii alphabet"
	reasonEndWithAlphanum       = "end with an ascii alphabet or ascii digit"
	reasonNoConsecutiveHyphens  = "cannot contain consecutive hyphens"
	reasonInvalidLabelConstruct = "label is not a valid construct"
)

// Error is a detailed host grammar failure: the failing input slice, the
// low-level code, the semantic kind and a static reason.
type Error struct {
	Input  string
	Code   Code
	Kind   ErrorKind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("host grammar: %s: %q", e.Reason, e.Input)
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
	return fmt.Sprintf("host grammar: %s at %q", e.Code, e.Input)
}

// Syntax indicates that this is syntax error.
func (e *SyntaxError) Syntax() bool { return true }
