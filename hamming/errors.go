// SPDX-License-Identifier: MIT

package hamming

import "errors"

// ErrLengthMismatch indicates the two sequences have different lengths.
var ErrLengthMismatch = errors.New("hamming: sequences must have equal length")
