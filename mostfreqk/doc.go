// SPDX-License-Identifier: MIT

// Package mostfreqk implements the Most Frequent K Characters string metric.
//
// Each input is reduced to its top-k histogram: the k characters with the
// highest counts, ties broken by the earliest first occurrence in the input.
// Two scores are derived from the shared keys of both histograms:
//
//   - Distance   — maxDistance − Σ Ha[c]            (raw, lower is closer)
//   - Normalized — Σ (Ha[c] + Hb[c]) / (|a| + |b|)  (in [0,1], higher is closer)
//
// Distance sums the counts of the FIRST histogram only. This asymmetry is the
// established behavior of the metric and is kept as is, so Distance(a, b) and
// Distance(b, a) may differ. The raw value is not clamped and can drop below
// zero when the overlap exceeds maxDistance.
//
// k larger than the number of distinct characters is clamped; negative k is
// rejected with ErrNegativeK.
//
//	d, _ := mostfreqk.Distance("research", "seeking", 2, mostfreqk.DefaultMaxDistance) // 8
//	n, _ := mostfreqk.Normalized("aabbbcc", "bbccddee", 3)                            // 0.6
package mostfreqk
