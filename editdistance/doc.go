// SPDX-License-Identifier: MIT

// Package editdistance computes edit distances between character sequences.
//
// What is an edit distance?
//
//	The minimum number of elementary operations that turn one sequence into
//	another. Every operation costs 1.
//
// Algorithms:
//   - Levenshtein         — insertion, deletion, substitution.
//     Two-row dynamic programming, O(|a|·|b|) time, O(|b|) memory.
//   - DamerauLevenshtein  — the above plus transposition of adjacent
//     characters, in the unrestricted (Lowrance–Wagner) form: characters may
//     be edited between the two transposed ones, so "CA"→"ABC" costs 2.
//     Full (|a|+2)×(|b|+2) matrix, O(|a|·|b|) time and memory.
//
// Both functions are total: empty inputs are valid and no error is returned.
// Characters are grapheme clusters unless sequence.WithUnit says otherwise.
//
//	d := editdistance.Levenshtein("kitten", "sitting")            // 3
//	t := editdistance.DamerauLevenshtein("specter", "spectre")    // 1
package editdistance
