// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"

	"github.com/katalvlaran/strsim/mostfreqk"
)

// Kind identifies a metric.
type Kind int

const (
	// KindJaroWinkler is the zero Kind, so the zero Algorithm is Jaro–Winkler.
	KindJaroWinkler Kind = iota
	KindDamerauLevenshtein
	KindHamming
	KindLevenshtein
	KindMostFrequentK
	KindMostFrequentKNormalized
)

// Algorithm selects a metric and its parameters.
// The zero value selects Jaro–Winkler.
type Algorithm struct {
	kind        Kind
	k           int
	maxDistance int
}

// JaroWinkler selects the Jaro–Winkler similarity.
func JaroWinkler() Algorithm { return Algorithm{kind: KindJaroWinkler} }

// DamerauLevenshtein selects the Damerau–Levenshtein distance.
func DamerauLevenshtein() Algorithm { return Algorithm{kind: KindDamerauLevenshtein} }

// Hamming selects the Hamming distance.
func Hamming() Algorithm { return Algorithm{kind: KindHamming} }

// Levenshtein selects the Levenshtein distance.
func Levenshtein() Algorithm { return Algorithm{kind: KindLevenshtein} }

// MostFrequentK selects the raw Most Frequent K Characters distance with
// mostfreqk.DefaultMaxDistance.
func MostFrequentK(k int) Algorithm {
	return MostFrequentKWithMax(k, mostfreqk.DefaultMaxDistance)
}

// MostFrequentKWithMax is MostFrequentK with an explicit maximum distance.
func MostFrequentKWithMax(k, maxDistance int) Algorithm {
	return Algorithm{kind: KindMostFrequentK, k: k, maxDistance: maxDistance}
}

// MostFrequentKNormalized selects the normalized Most Frequent K Characters similarity.
func MostFrequentKNormalized(k int) Algorithm {
	return Algorithm{kind: KindMostFrequentKNormalized, k: k}
}

// Kind returns the selected metric.
func (a Algorithm) Kind() Kind { return a.kind }

// K returns the character count of the Most Frequent K variants, 0 otherwise.
func (a Algorithm) K() int { return a.k }

// MaxDistance returns the bound of the raw Most Frequent K distance, 0 otherwise.
func (a Algorithm) MaxDistance() int { return a.maxDistance }

// Validate reports whether a can be scored.
func (a Algorithm) Validate() error {
	switch a.kind {
	case KindJaroWinkler, KindDamerauLevenshtein, KindHamming, KindLevenshtein:
		return nil
	case KindMostFrequentK, KindMostFrequentKNormalized:
		if a.k < 0 {
			return fmt.Errorf("similarity: %s: %w", a, mostfreqk.ErrNegativeK)
		}

		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownAlgorithm, int(a.kind))
	}
}

// String returns the human-readable metric name.
func (a Algorithm) String() string {
	switch a.kind {
	case KindJaroWinkler:
		return "Jaro-Winkler"
	case KindDamerauLevenshtein:
		return "Damerau-Levenshtein"
	case KindHamming:
		return "Hamming"
	case KindLevenshtein:
		return "Levenshtein"
	case KindMostFrequentK:
		return fmt.Sprintf("Most Frequent K Characters (k=%d)", a.k)
	case KindMostFrequentKNormalized:
		return fmt.Sprintf("Normalized Most Frequent K Characters (k=%d)", a.k)
	default:
		return fmt.Sprintf("Unknown (%d)", int(a.kind))
	}
}
