package mostfreqk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strsim/mostfreqk"
	"github.com/katalvlaran/strsim/sequence"
)

// TestTopK_TieBreakByFirstOccurrence verifies equal counts are ordered by first index.
func TestTopK_TieBreakByFirstOccurrence(t *testing.T) {
	got, err := mostfreqk.TopK("research", 2)
	require.NoError(t, err)
	assert.Equal(t, []mostfreqk.Entry{
		{Char: "r", Count: 2, First: 0},
		{Char: "e", Count: 2, First: 1},
	}, got)

	got, err = mostfreqk.TopK("aabbbcc", 3)
	require.NoError(t, err)
	assert.Equal(t, []mostfreqk.Entry{
		{Char: "b", Count: 3, First: 2},
		{Char: "a", Count: 2, First: 0},
		{Char: "c", Count: 2, First: 5},
	}, got)
}

// TestTopK_PermutedTies checks that swapping the first occurrences swaps the order.
func TestTopK_PermutedTies(t *testing.T) {
	ab, err := mostfreqk.TopK("abab", 1)
	require.NoError(t, err)
	ba, err := mostfreqk.TopK("baba", 1)
	require.NoError(t, err)

	assert.Equal(t, "a", ab[0].Char)
	assert.Equal(t, "b", ba[0].Char)
}

// TestTopK_ClampsK ensures k beyond the distinct count returns every character.
func TestTopK_ClampsK(t *testing.T) {
	got, err := mostfreqk.TopK("mississippi", 10)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"i", "s", "p", "m"}, chars(got))
}

// TestTopK_ZeroAndEmpty covers k=0 and an empty input.
func TestTopK_ZeroAndEmpty(t *testing.T) {
	got, err := mostfreqk.TopK("abc", 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = mostfreqk.TopK("", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestTopK_NegativeK ensures a negative k is rejected.
func TestTopK_NegativeK(t *testing.T) {
	_, err := mostfreqk.TopK("abc", -1)
	assert.ErrorIs(t, err, mostfreqk.ErrNegativeK)

	_, err = mostfreqk.TopKSeq(sequence.Split("abc"), -3)
	assert.ErrorIs(t, err, mostfreqk.ErrNegativeK)
}

// TestTopK_Graphemes counts a decomposed accent as one character.
func TestTopK_Graphemes(t *testing.T) {
	got, err := mostfreqk.TopK("e\u0301te\u0301", 1)
	require.NoError(t, err)
	assert.Equal(t, mostfreqk.Entry{Char: "e\u0301", Count: 2, First: 0}, got[0])

	got, err = mostfreqk.TopK("e\u0301te\u0301", 1, sequence.WithUnit(sequence.Rune))
	require.NoError(t, err)
	assert.Equal(t, "e", got[0].Char)
}

func chars(entries []mostfreqk.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Char
	}

	return out
}
