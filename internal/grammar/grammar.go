// Package grammar provides ABNF-backed whole-string validators for the tag
// and host grammars.
package grammar

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/ircv3tags/internal/constraints"
)

// IsHostName reports whether s is entirely an RFC 952 hostname.
func IsHostName[T constraints.Byteseq](s T) bool {
	return fullMatch(hostName, s)
}

// IsLabel reports whether s is entirely a single RFC 952 host label.
func IsLabel[T constraints.Byteseq](s T) bool {
	return fullMatch(label, s)
}

// IsKeyName reports whether s is entirely a strict tag key name:
// a letter followed by letters, digits and interior hyphens.
func IsKeyName[T constraints.Byteseq](s T) bool {
	return fullMatch(keyName, s)
}

func fullMatch[T constraints.Byteseq](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
