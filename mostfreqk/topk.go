// SPDX-License-Identifier: MIT

package mostfreqk

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/strsim/sequence"
)

// TopK returns the min(k, distinct) most frequent characters of s, ordered by
// descending count and then by first occurrence.
//
// Errors:
//   - ErrNegativeK — if k < 0.
//
// Complexity: O(n + d·log d) time, O(d) memory, d = distinct characters.
func TopK(s string, k int, opts ...sequence.Option) ([]Entry, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrNegativeK, k)
	}

	return topK(sequence.Split(s, opts...), k), nil
}

// TopKSeq is TopK over an already split sequence.
func TopKSeq(s sequence.Seq, k int) ([]Entry, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrNegativeK, k)
	}

	return topK(s, k), nil
}

// topK assumes k >= 0.
func topK(s sequence.Seq, k int) []Entry {
	index := make(map[string]int, len(s))
	var entries []Entry
	for i, c := range s {
		if at, ok := index[c]; ok {
			entries[at].Count++
			continue
		}
		index[c] = len(entries)
		entries = append(entries, Entry{Char: c, Count: 1, First: i})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}

		return entries[i].First < entries[j].First
	})

	return entries[:min(k, len(entries))]
}
