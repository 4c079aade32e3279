// SPDX-License-Identifier: MIT

package similarity

import "errors"

// ErrUnknownAlgorithm indicates an Algorithm with an undeclared Kind.
var ErrUnknownAlgorithm = errors.New("similarity: unknown algorithm")
