// SPDX-License-Identifier: MIT
// Package: cliquekernel/matrix
//
// validators.go — shape and symmetry checks shared by kernel helpers and tests.

package matrix

import (
	"fmt"
	"math"
)

// ValidateSquare returns ErrNilMatrix or ErrNonSquare unless m is n×n.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |m[i,j]-m[j,i]| ≤ eps for all i<j.
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: scan the strict upper triangle, failing on the first violation.
//
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > eps {
				return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}
