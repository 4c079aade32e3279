// SPDX-License-Identifier: MIT

package similarity

import "github.com/katalvlaran/strsim/sequence"

// Option configures Compare and Normalized.
type Option func(*options)

type options struct {
	algorithm Algorithm
	seq       []sequence.Option
}

// WithAlgorithm selects the metric. Defaults to JaroWinkler().
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithUnit selects the character unit for both inputs. Defaults to
// sequence.Grapheme. Panics on an undeclared unit.
func WithUnit(u sequence.Unit) Option {
	opt := sequence.WithUnit(u)

	return func(o *options) { o.seq = append(o.seq, opt) }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
