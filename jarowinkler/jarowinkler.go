// SPDX-License-Identifier: MIT

package jarowinkler

import "github.com/katalvlaran/strsim/sequence"

const (
	// PrefixScale weights the common-prefix bonus. Must stay ≤ 0.25.
	PrefixScale = 0.1

	// MaxPrefixLength caps the common prefix considered by the bonus.
	MaxPrefixLength = 4
)

// Similarity returns the Jaro–Winkler similarity of a and b in [0,1].
//
// Edge cases:
//   - both empty           → 1
//   - equal sequences      → 1
//   - exactly one is empty → 0
//   - no matched character → 0
//
// Complexity: O(|s1|·|s2|) time worst case, O(|s2|) memory.
func Similarity(a, b string, opts ...sequence.Option) float64 {
	sa, sb := sequence.SplitPair(a, b, opts...)

	return SimilaritySeq(sa, sb)
}

// SimilaritySeq is Similarity over already split sequences.
func SimilaritySeq(a, b sequence.Seq) float64 {
	jaro := JaroSeq(a, b)
	if jaro == 0 {
		return 0
	}
	p := float64(CommonPrefixSeq(a, b))

	return jaro + p*PrefixScale*(1-jaro)
}

// Jaro returns the Jaro similarity of a and b before the Winkler adjustment.
func Jaro(a, b string, opts ...sequence.Option) float64 {
	sa, sb := sequence.SplitPair(a, b, opts...)

	return JaroSeq(sa, sb)
}

// JaroSeq is Jaro over already split sequences.
//
// Algorithm Outline:
//  1. s1 = shorter, s2 = longer (a stays s1 on equal length).
//  2. r = |s2|/2. For each s1[i], scan j in [max(0,i-r), min(|s2|,i+r)) and
//     take the first j with !used[j] && s2[j]==s1[i]: m++, t++ if j < prev,
//     prev = j.
//  3. jaro = (m/|s1| + m/|s2| + (m−t)/m) / 3.
//
// Each element of s2 is consumed by at most one match, so implementations that
// rescan already matched positions can score repeated characters higher.
func JaroSeq(a, b sequence.Seq) float64 {
	s1, s2 := a, b
	if len(s1) > len(s2) {
		s1, s2 = b, a
	}
	if len(s2) == 0 || a.Equal(b) {
		return 1
	}
	if len(s1) == 0 {
		return 0
	}

	radius := len(s2) / 2
	used := make([]bool, len(s2))
	matches, transpositions := 0, 0
	prev := -1

	for i, c := range s1 {
		lo := max(0, i-radius)
		hi := min(len(s2), i+radius)
		for j := lo; j < hi; j++ {
			if used[j] || s2[j] != c {
				continue
			}
			used[j] = true
			matches++
			if prev != -1 && j < prev {
				transpositions++
			}
			prev = j

			break
		}
	}

	if matches == 0 {
		return 0
	}
	m := float64(matches)

	return (m/float64(len(s1)) + m/float64(len(s2)) + (m-float64(transpositions))/m) / 3
}

// CommonPrefix returns the number of leading characters a and b share,
// capped at MaxPrefixLength.
func CommonPrefix(a, b string, opts ...sequence.Option) int {
	sa, sb := sequence.SplitPair(a, b, opts...)

	return CommonPrefixSeq(sa, sb)
}

// CommonPrefixSeq is CommonPrefix over already split sequences.
func CommonPrefixSeq(a, b sequence.Seq) int {
	n := min(len(a), len(b), MaxPrefixLength)
	p := 0
	for p < n && a[p] == b[p] {
		p++
	}

	return p
}
