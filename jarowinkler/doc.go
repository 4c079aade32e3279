// SPDX-License-Identifier: MIT

// Package jarowinkler scores sequence similarity with the Jaro–Winkler metric.
//
// The score lies in [0,1]: 1 means identical, 0 means no character could be
// matched inside the search window.
//
// Matching:
//
//	The shorter input is scanned left to right. For each character, the
//	longer input is searched inside the window [i-r, i+r) with
//	r = ⌊|longer|/2⌋, and the FIRST unmatched equal character in index
//	order is taken. A match that lands left of the previous match counts as
//	a transposition.
//
// Winkler adjustment:
//
//	jw = jaro + p·PrefixScale·(1 − jaro), p = common prefix length ≤ 4.
//	PrefixScale is fixed at 0.1; anything above 0.25 could push jw past 1.
//
//	s := jarowinkler.Similarity("MARTHA", "MARHTA") // ≈ 0.961
package jarowinkler
