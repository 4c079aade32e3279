// SPDX-License-Identifier: MIT

package sequence

import "strings"

// Unit selects the atomic character used when splitting a string.
type Unit int

const (
	// Grapheme splits into extended grapheme clusters.
	Grapheme Unit = iota

	// Rune splits into Unicode scalar values.
	Rune
)

// DefaultUnit is the unit used when no WithUnit option is supplied.
const DefaultUnit = Grapheme

// String returns a human-readable unit name.
func (u Unit) String() string {
	switch u {
	case Grapheme:
		return "grapheme"
	case Rune:
		return "rune"
	default:
		return "unknown"
	}
}

// valid reports whether u is one of the declared units.
func (u Unit) valid() bool {
	return u == Grapheme || u == Rune
}

// Seq is an ordered list of characters. Each element holds exactly one
// character in the unit it was split with.
type Seq []string

// Len returns the number of characters.
func (s Seq) Len() int { return len(s) }

// Equal reports whether s and t hold the same characters in the same order.
func (s Seq) Equal(t Seq) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

// String joins the characters back into a string.
func (s Seq) String() string {
	return strings.Join(s, "")
}
