// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"

	"github.com/katalvlaran/strsim/editdistance"
	"github.com/katalvlaran/strsim/hamming"
	"github.com/katalvlaran/strsim/jarowinkler"
	"github.com/katalvlaran/strsim/mostfreqk"
	"github.com/katalvlaran/strsim/sequence"
)

// Compare scores a against b with the selected algorithm (Jaro–Winkler by
// default) and returns the raw score as float64.
//
// Errors:
//   - ErrUnknownAlgorithm       — undeclared Kind.
//   - mostfreqk.ErrNegativeK    — negative k for a Most Frequent K variant.
//   - hamming.ErrLengthMismatch — Hamming on inputs of different length.
func Compare(a, b string, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := o.algorithm.Validate(); err != nil {
		return 0, err
	}
	sa, sb := sequence.SplitPair(a, b, o.seq...)

	return raw(o.algorithm, sa, sb)
}

// Normalized scores a against b with the selected algorithm mapped onto
// [0,1], 1 meaning identical. See the package documentation for the mapping.
func Normalized(a, b string, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := o.algorithm.Validate(); err != nil {
		return 0, err
	}
	sa, sb := sequence.SplitPair(a, b, o.seq...)

	switch o.algorithm.kind {
	case KindLevenshtein, KindDamerauLevenshtein:
		d, err := raw(o.algorithm, sa, sb)
		if err != nil {
			return 0, err
		}

		return ratio(d, max(len(sa), len(sb))), nil
	case KindHamming:
		d, err := raw(o.algorithm, sa, sb)
		if err != nil {
			return 0, err
		}

		return ratio(d, len(sa)), nil
	case KindMostFrequentK, KindMostFrequentKNormalized:
		n, err := mostfreqk.NormalizedSeq(sa, sb, o.algorithm.k)

		return wrap(o.algorithm, n, err)
	default:
		return raw(o.algorithm, sa, sb)
	}
}

// raw dispatches to the engine; a must be valid.
func raw(a Algorithm, sa, sb sequence.Seq) (float64, error) {
	switch a.kind {
	case KindDamerauLevenshtein:
		return float64(editdistance.DamerauLevenshteinSeq(sa, sb)), nil
	case KindHamming:
		d, err := hamming.DistanceSeq(sa, sb)

		return wrap(a, float64(d), err)
	case KindLevenshtein:
		return float64(editdistance.LevenshteinSeq(sa, sb)), nil
	case KindMostFrequentK:
		d, err := mostfreqk.DistanceSeq(sa, sb, a.k, a.maxDistance)

		return wrap(a, float64(d), err)
	case KindMostFrequentKNormalized:
		n, err := mostfreqk.NormalizedSeq(sa, sb, a.k)

		return wrap(a, n, err)
	default:
		return jarowinkler.SimilaritySeq(sa, sb), nil
	}
}

// ratio maps a distance d over length n to 1 − d/n; two empty inputs are identical.
func ratio(d float64, n int) float64 {
	if n == 0 {
		return 1
	}

	return 1 - d/float64(n)
}

func wrap(a Algorithm, v float64, err error) (float64, error) {
	if err != nil {
		return 0, fmt.Errorf("similarity: %s: %w", a, err)
	}

	return v, nil
}
