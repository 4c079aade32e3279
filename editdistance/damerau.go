// SPDX-License-Identifier: MIT

package editdistance

import "github.com/katalvlaran/strsim/sequence"

// DamerauLevenshtein returns the Damerau–Levenshtein distance between a and b
// with unrestricted adjacent transpositions.
//
// Algorithm Outline (Lowrance–Wagner):
//  1. Allocate d of size (|a|+2)×(|b|+2); maxdist = |a|+|b|.
//     Row 0 and column 0 hold maxdist so a transposition can never be taken
//     from a character that was not seen yet. d[i][1] = i-1, d[1][j] = j-1.
//  2. da[c] — last row (1-based, shifted by one) where c occurred in a.
//  3. For each row i, db — last column where a[i-2] matched b.
//     For each column j, with k = da[b[j-2]] (default 1) and l = db:
//     d[i][j] = min(subst, insert, delete, d[k-1][l-1] + (i-k-1) + 1 + (j-l-1)).
//  4. After the row, da[a[i-2]] = i.
//
// Complexity: O(|a|·|b|) time and memory.
func DamerauLevenshtein(a, b string, opts ...sequence.Option) int {
	sa, sb := sequence.SplitPair(a, b, opts...)

	return DamerauLevenshteinSeq(sa, sb)
}

// DamerauLevenshteinSeq is DamerauLevenshtein over already split sequences.
func DamerauLevenshteinSeq(a, b sequence.Seq) int {
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

	maxdist := n + m
	d := make([][]int, n+2)
	for i := range d {
		d[i] = make([]int, m+2)
	}
	d[0][0] = maxdist
	for i := 1; i <= n+1; i++ {
		d[i][0] = maxdist
		d[i][1] = i - 1
	}
	for j := 1; j <= m+1; j++ {
		d[0][j] = maxdist
		d[1][j] = j - 1
	}

	da := make(map[string]int, n)
	for i := 2; i <= n+1; i++ {
		db := 1
		for j := 2; j <= m+1; j++ {
			k, ok := da[b[j-2]]
			if !ok {
				k = 1
			}
			l := db

			cost := 1
			if a[i-2] == b[j-2] {
				cost = 0
				db = j
			}

			d[i][j] = min(
				d[i-1][j-1]+cost,              // substitution
				d[i][j-1]+1,                   // insertion
				d[i-1][j]+1,                   // deletion
				d[k-1][l-1]+(i-k-1)+1+(j-l-1), // transposition
			)
		}
		da[a[i-2]] = i
	}

	return d[n+1][m+1]
}
