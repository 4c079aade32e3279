// SPDX-License-Identifier: MIT

package editdistance

import "github.com/katalvlaran/strsim/sequence"

// Levenshtein returns the Levenshtein distance between a and b.
//
// Algorithm Outline (two rows):
//  1. prev[j] = j — cost of building b[:j] from the empty prefix.
//  2. For each a[i]: curr[0] = i+1, then
//     curr[j+1] = min(curr[j]+1, prev[j+1]+1, prev[j]+cost)
//     where cost = 0 if a[i]==b[j] else 1.
//  3. Swap rows; the answer is prev[|b|] after the last row.
//
// Complexity: O(|a|·|b|) time, O(|b|) memory.
func Levenshtein(a, b string, opts ...sequence.Option) int {
	sa, sb := sequence.SplitPair(a, b, opts...)

	return LevenshteinSeq(sa, sb)
}

// LevenshteinSeq is Levenshtein over already split sequences.
func LevenshteinSeq(a, b sequence.Seq) int {
	if a.Equal(b) {
		return 0
	}
	n, m := len(a), len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 0; i < n; i++ {
		curr[0] = i + 1
		for j := 0; j < m; j++ {
			cost := 1
			if a[i] == b[j] {
				cost = 0
			}
			curr[j+1] = min(
				curr[j]+1,    // insertion
				prev[j+1]+1,  // deletion
				prev[j]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
