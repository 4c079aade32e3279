// SPDX-License-Identifier: MIT

package sequence

import "fmt"

const panicUnitInvalid = "sequence: WithUnit: unknown unit %d"

// Option mutates Options. Options are applied in order; the last one wins.
type Option func(*Options)

// Options holds the resolved splitting configuration.
type Options struct {
	unit Unit
}

// Unit returns the resolved unit.
func (o Options) Unit() Unit { return o.unit }

// WithUnit selects the character unit.
// Panics on an undeclared Unit value; that is a programmer error, not input.
func WithUnit(u Unit) Option {
	if !u.valid() {
		panic(fmt.Sprintf(panicUnitInvalid, int(u)))
	}

	return func(o *Options) { o.unit = u }
}

// Gather resolves opts on top of the defaults.
func Gather(opts ...Option) Options {
	o := Options{unit: DefaultUnit}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
