// SPDX-License-Identifier: MIT

// Package similarity is the single entry point to every strsim metric.
//
// An Algorithm names one metric and carries its parameter (k for the Most
// Frequent K variants). Compare routes a pair of strings to that metric and
// returns its raw score widened to float64; Normalized maps the same metric
// onto [0,1] where 1 means identical.
//
//	Algorithm                    Compare          Normalized
//	JaroWinkler (default)        [0,1]            same
//	Levenshtein                  edits            1 − d/max(|a|,|b|)
//	DamerauLevenshtein           edits            1 − d/max(|a|,|b|)
//	Hamming                      mismatches       1 − d/|a|
//	MostFrequentK(k)             max − overlap    normalized MFK
//	MostFrequentKNormalized(k)   [0,1]            same
//
// Usage:
//
//	s, err := similarity.Compare("kitten", "sitting",
//		similarity.WithAlgorithm(similarity.Levenshtein()))
//	// s == 3
//
// Errors from the engines (hamming.ErrLengthMismatch, mostfreqk.ErrNegativeK)
// are returned wrapped, so errors.Is works on them.
package similarity
