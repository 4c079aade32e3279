// SPDX-License-Identifier: MIT

// Package hamming counts position-wise mismatches between two sequences of
// equal length.
//
// Lengths are measured in characters of the selected unit (grapheme clusters
// by default), not bytes. Unequal lengths are a caller error reported as
// ErrLengthMismatch; the shorter input is never padded or truncated.
//
//	d, err := hamming.Distance("karolin", "kathrin") // 3, nil
//	_, err = hamming.Distance("abc", "ab")           // errors.Is(err, hamming.ErrLengthMismatch)
package hamming
