package ircv3tags

import (
	"iter"

	"github.com/ghettovoice/ircv3tags/internal/stringutils"
)

// Tag is one key/value pair of a message-tags prefix. Key retains the full
// verbatim key text, including any client prefix and vendor host. HasValue
// distinguishes "k=" (present, empty value) from bare "k" (absent value).
type Tag struct {
	Key      string
	Value    string
	HasValue bool
}

// Tags is the ordered tag collection produced by a successful parse.
// Order matches appearance in the input. Keys are not required to be
// unique; lookups return the first match. Every string in the collection
// is a substring of the parsed line and stays valid for as long as the
// collection is used.
type Tags struct {
	list []Tag
}

// Len returns the number of tags.
func (t Tags) Len() int { return len(t.list) }

// Get returns the raw, still escaped value for key. A present but
// valueless key yields "" with ok=true; a missing key yields ok=false.
func (t Tags) Get(key string) (value string, ok bool) {
	for _, tag := range t.list {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

// GetUnescaped performs the same lookup as [Tags.Get] and unescapes the
// value.
func (t Tags) GetUnescaped(key string) (value string, ok bool) {
	v, ok := t.Get(key)
	if !ok {
		return "", false
	}
	return Unescape(v), true
}

// All returns an iterator over the tags in appearance order.
func (t Tags) All() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for _, tag := range t.list {
			if !yield(tag) {
				return
			}
		}
	}
}

// Map returns the tags as a map of raw values. Valueless keys map to "";
// on duplicate keys the last occurrence wins.
func (t Tags) Map() map[string]string {
	m := make(map[string]string, len(t.list))
	for _, tag := range t.list {
		m[tag.Key] = tag.Value
	}
	return m
}

// UnescapedMap is like [Tags.Map] with every value unescaped.
func (t Tags) UnescapedMap() map[string]string {
	m := make(map[string]string, len(t.list))
	for _, tag := range t.list {
		m[tag.Key] = Unescape(tag.Value)
	}
	return m
}

func (t Tags) String() string {
	sb := stringutils.NewStrBldr()
	defer stringutils.FreeStrBldr(sb)

	for i, tag := range t.list {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tag.Key)
		sb.WriteString(": ")
		if tag.Value == "" {
			sb.WriteString("''")
		} else {
			sb.WriteString(tag.Value)
		}
	}
	return sb.String()
}
