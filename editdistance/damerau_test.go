package editdistance_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/strsim/editdistance"
	"github.com/katalvlaran/strsim/sequence"
)

// TestDamerauLevenshtein_EmptyInput verifies the empty-side short-circuits.
func TestDamerauLevenshtein_EmptyInput(t *testing.T) {
	assert.Equal(t, 7, editdistance.DamerauLevenshtein("", "sitting"))
	assert.Equal(t, 6, editdistance.DamerauLevenshtein("kitten", ""))
	assert.Equal(t, 0, editdistance.DamerauLevenshtein("", ""))
}

// TestDamerauLevenshtein_Transpositions checks that an adjacent swap costs one edit.
func TestDamerauLevenshtein_Transpositions(t *testing.T) {
	assert.Equal(t, 1, editdistance.DamerauLevenshtein("CA", "AC"))
	assert.Equal(t, 1, editdistance.DamerauLevenshtein("specter", "spectre"))
	assert.Equal(t, 3, editdistance.DamerauLevenshtein("kitten", "sitting"))
}

// TestDamerauLevenshtein_Unrestricted ensures an edit between transposed
// characters is allowed (optimal string alignment would return 3).
func TestDamerauLevenshtein_Unrestricted(t *testing.T) {
	assert.Equal(t, 2, editdistance.DamerauLevenshtein("CA", "ABC"))
}

// TestDamerauLevenshtein_Ideographs ensures multi-byte characters count as one unit.
func TestDamerauLevenshtein_Ideographs(t *testing.T) {
	assert.Equal(t, 4, editdistance.DamerauLevenshtein("君子和而不同", "小人同而不和"))
}

// TestDamerauLevenshtein_GraphemeSwap swaps two decomposed accented letters.
func TestDamerauLevenshtein_GraphemeSwap(t *testing.T) {
	a := "e\u0301a\u0300"
	b := "a\u0300e\u0301"
	assert.Equal(t, 1, editdistance.DamerauLevenshtein(a, b))
	assert.Equal(t, 1, editdistance.DamerauLevenshteinSeq(sequence.Split(a), sequence.Split(b)))
}

// TestDamerauLevenshtein_Properties checks it never exceeds Levenshtein and is symmetric.
func TestDamerauLevenshtein_Properties(t *testing.T) {
	f := gofakeit.New(1337)
	for i := 0; i < 300; i++ {
		a, b := f.Regex("[a-d]{0,8}"), f.Regex("[a-d]{0,8}")

		dl := editdistance.DamerauLevenshtein(a, b)
		assert.Equal(t, 0, editdistance.DamerauLevenshtein(a, a), "identity for %q", a)
		assert.Equal(t, dl, editdistance.DamerauLevenshtein(b, a), "symmetry for %q/%q", a, b)
		assert.LessOrEqual(t, dl, editdistance.Levenshtein(a, b), "bounded by Levenshtein for %q/%q", a, b)
	}
}
