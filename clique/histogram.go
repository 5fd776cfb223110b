// SPDX-License-Identifier: MIT
// Package: cliquekernel/clique
//
// histogram.go — clique-size histogram value type.

package clique

import "sort"

// Histogram maps clique size (≥ 1) to the number of cliques of that size.
// Absent sizes count as zero. Counters return a fresh Histogram per call.
type Histogram map[int]int64

// Total returns the number of cliques of all sizes.
func (h Histogram) Total() int64 {
	var t int64
	for _, c := range h {
		t += c
	}

	return t
}

// Count returns the number of cliques of size k.
func (h Histogram) Count(k int) int64 { return h[k] }

// Sizes returns the sizes present in h in ascending order.
func (h Histogram) Sizes() []int {
	out := make([]int, 0, len(h))
	for k := range h {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// MaxSize returns the largest size with a non-zero count, or 0.
func (h Histogram) MaxSize() int {
	max := 0
	for k, c := range h {
		if c > 0 && k > max {
			max = k
		}
	}

	return max
}

// Clone returns an independent copy.
func (h Histogram) Clone() Histogram {
	out := make(Histogram, len(h))
	for k, c := range h {
		out[k] = c
	}

	return out
}

// Merge adds other's counts into h.
func (h Histogram) Merge(other Histogram) {
	for k, c := range other {
		h[k] += c
	}
}
