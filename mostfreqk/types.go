// SPDX-License-Identifier: MIT

package mostfreqk

// DefaultMaxDistance is the customary upper bound used by Distance.
const DefaultMaxDistance = 10

// Entry is one character of a top-k histogram.
type Entry struct {
	// Char is the character in the selected unit.
	Char string

	// Count is the number of occurrences of Char in the whole input.
	Count int

	// First is the index of the first occurrence of Char; it breaks ties.
	First int
}

// counts maps each selected character to its count.
type counts map[string]int

// histogram converts ordered entries to a lookup map.
func histogram(entries []Entry) counts {
	h := make(counts, len(entries))
	for _, e := range entries {
		h[e.Char] = e.Count
	}

	return h
}
