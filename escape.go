package ircv3tags

import (
	"bytes"

	"github.com/ghettovoice/ircv3tags/internal/constraints"
)

// Unescape converts tag value escape sequences to their literal characters
// in a single pass:
//
//	\:  ->  ;
//	\s  ->  space
//	\\  ->  \
//	\r  ->  CR
//	\n  ->  LF
//
// An unknown escape is preserved verbatim, backslash included, and so is a
// lone trailing backslash. Values come out of the parser raw; callers
// unescape on demand.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 == len(s) {
			b.WriteByte('\\')
			break
		}
		i++
		switch s[i] {
		case ':':
			b.WriteByte(';')
		case 's':
			b.WriteByte(' ')
		case '\\':
			b.WriteByte('\\')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape replaces every character forbidden raw in a tag value with its
// escape sequence: ';' -> `\:`, space -> `\s`, '\' -> `\\`, CR -> `\r`,
// LF -> `\n`. Unescape(Escape(s)) == s for any s.
func Escape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ';':
			b.WriteString(`\:`)
		case ' ':
			b.WriteString(`\s`)
		case '\\':
			b.WriteString(`\\`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}
