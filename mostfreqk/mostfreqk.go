// SPDX-License-Identifier: MIT

package mostfreqk

import (
	"fmt"

	"github.com/katalvlaran/strsim/sequence"
)

// Distance returns maxDistance minus the summed counts, taken from a's
// histogram, of the characters present in both top-k histograms.
//
// Errors:
//   - ErrNegativeK — if k < 0.
func Distance(a, b string, k, maxDistance int, opts ...sequence.Option) (int, error) {
	sa, sb := sequence.SplitPair(a, b, opts...)

	return DistanceSeq(sa, sb, k, maxDistance)
}

// DistanceSeq is Distance over already split sequences.
func DistanceSeq(a, b sequence.Seq, k, maxDistance int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: k=%d", ErrNegativeK, k)
	}
	ha, hb := histogram(topK(a, k)), histogram(topK(b, k))

	overlap := 0
	for c, n := range ha {
		if _, ok := hb[c]; ok {
			overlap += n
		}
	}

	return maxDistance - overlap, nil
}

// Normalized returns the summed counts of the shared top-k characters from
// both histograms divided by the combined input length. The result is in
// [0,1]; disjoint histograms score 0.
//
// Errors:
//   - ErrNegativeK — if k < 0.
func Normalized(a, b string, k int, opts ...sequence.Option) (float64, error) {
	sa, sb := sequence.SplitPair(a, b, opts...)

	return NormalizedSeq(sa, sb, k)
}

// NormalizedSeq is Normalized over already split sequences.
func NormalizedSeq(a, b sequence.Seq, k int) (float64, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: k=%d", ErrNegativeK, k)
	}
	ha, hb := histogram(topK(a, k)), histogram(topK(b, k))

	shared := 0
	for c, na := range ha {
		if nb, ok := hb[c]; ok {
			shared += na + nb
		}
	}
	if shared == 0 {
		return 0, nil
	}

	return float64(shared) / float64(len(a)+len(b)), nil
}
