// SPDX-License-Identifier: MIT

package hamming

import (
	"fmt"

	"github.com/katalvlaran/strsim/sequence"
)

// Distance returns the number of positions at which a and b differ.
//
// Errors:
//   - ErrLengthMismatch — if a and b split into different numbers of characters.
//
// Complexity: O(n) time, O(n) memory for the split sequences.
func Distance(a, b string, opts ...sequence.Option) (int, error) {
	sa, sb := sequence.SplitPair(a, b, opts...)

	return DistanceSeq(sa, sb)
}

// DistanceSeq is Distance over already split sequences.
func DistanceSeq(a, b sequence.Seq) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}

	return diff, nil
}
