// SPDX-License-Identifier: MIT

package sequence

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split breaks s into characters of the configured unit (Grapheme by default).
//
// Invalid UTF-8 bytes decode to utf8.RuneError in Rune mode; in Grapheme
// mode uniseg emits them as single-byte clusters.
//
// Complexity: O(len(s)) time and memory.
func Split(s string, opts ...Option) Seq {
	return SplitUnit(s, Gather(opts...).unit)
}

// SplitPair splits a and b with the same resolved options.
func SplitPair(a, b string, opts ...Option) (Seq, Seq) {
	u := Gather(opts...).unit

	return SplitUnit(a, u), SplitUnit(b, u)
}

// SplitUnit breaks s into characters of unit u. Unknown units fall back to
// Grapheme.
func SplitUnit(s string, u Unit) Seq {
	if s == "" {
		return Seq{}
	}
	if u == Rune {
		return runes(s)
	}

	return graphemes(s)
}

// graphemes segments s into extended grapheme clusters.
func graphemes(s string) Seq {
	out := make(Seq, 0, len(s))
	state := -1
	var cluster string
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}

	return out
}

// runes segments s into code points.
func runes(s string) Seq {
	out := make(Seq, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}
