// SPDX-License-Identifier: MIT

// Package strsim scores how alike two strings are.
//
// What is inside?
//
//	A pure, dependency-light library of string metrics, each in its own
//	package and all reachable through one dispatch facade:
//		• Edit distances: Levenshtein, Damerau–Levenshtein
//		• Position-wise: Hamming
//		• Window matching: Jaro–Winkler
//		• Character frequency: Most Frequent K (raw and normalized)
//
// Layout:
//
//	sequence/     — splits strings into characters (grapheme clusters or runes)
//	editdistance/ — Levenshtein (two rows) and Damerau–Levenshtein (full matrix)
//	hamming/      — mismatch count for equal-length inputs
//	jarowinkler/  — Jaro and Jaro–Winkler similarity
//	mostfreqk/    — top-k character histograms and the MFK scores
//	similarity/   — Algorithm selector, Compare and Normalized
//
// Every function is synchronous and keeps no state between calls, so any
// number of goroutines may call any metric at the same time.
//
// Quick example:
//
//	s, _ := similarity.Compare("MARTHA", "MARHTA") // Jaro–Winkler ≈ 0.961
//
//	go get github.com/katalvlaran/strsim
package strsim
