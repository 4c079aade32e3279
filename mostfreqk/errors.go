// SPDX-License-Identifier: MIT

package mostfreqk

import "errors"

// ErrNegativeK indicates a negative number of characters was requested.
var ErrNegativeK = errors.New("mostfreqk: k must be non-negative")
