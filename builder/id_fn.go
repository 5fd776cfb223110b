// SPDX-License-Identifier: MIT
// Package: cliquekernel/builder
//
// id_fn.go — vertex ID schemes for constructors.

package builder

import "fmt"

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure and deterministic.
type IDFn func(idx int) string

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// PaddedIDFn returns zero-padded decimal IDs of the given width ("007"), so that
// lexicographic vertex order equals index order.
func PaddedIDFn(width int) IDFn {
	return func(idx int) string {
		return fmt.Sprintf("%0*d", width, idx)
	}
}

// WithSymbolIDs switches to single-letter IDs ("A","B",…).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithPaddedIDs switches to zero-padded decimal IDs of the given width.
func WithPaddedIDs(width int) BuilderOption {
	return WithIDScheme(PaddedIDFn(width))
}
