// SPDX-License-Identifier: MIT

// Package sequence turns strings into the character sequences compared by the
// strsim engines.
//
// What is a character?
//
//	A Go string is a run of bytes; a human "character" may span several
//	runes ("é" written as e + U+0301, flags, emoji with skin tones).
//	Every engine in strsim works on a Seq: a []string where each element is
//	one character in the selected Unit.
//
// Units:
//   - Grapheme (default) — extended grapheme clusters (UAX #29), segmented
//     with github.com/rivo/uniseg. "e\u0301" is ONE unit.
//   - Rune               — Unicode scalar values. "e\u0301" is TWO units.
//
// The unit is applied to both inputs of a comparison; mixing units inside a
// single call is not possible through the public API.
//
// Usage:
//
//	s := sequence.Split("naïve", sequence.WithUnit(sequence.Rune))
//	fmt.Println(s.Len()) // 5
//
// No Unicode normalization is performed: "\u00e9" and "e\u0301" are
// different characters even though both form a single grapheme.
package sequence
