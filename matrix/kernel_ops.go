// SPDX-License-Identifier: MIT
// Package: cliquekernel/matrix
//
// kernel_ops.go — whole-matrix helpers for Gram-style kernel matrices:
// triangle mirroring, diagonal extraction and cosine normalization.

package matrix

import (
	"fmt"
	"math"
)

// MirrorUpper copies the strict upper triangle into the lower one in place,
// so that m[j,i] = m[i,j] for all i<j. The diagonal is untouched.
// Complexity: O(n²).
func MirrorUpper(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.data[j*n+i] = m.data[i*n+j]
		}
	}

	return nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
func Diagonal(m *Dense) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+i]
	}

	return out, nil
}

// Normalize returns a new square matrix N with N[i,j] = m[i,j]/sqrt(m[i,i]·m[j,j]).
// Implementation:
//   - Stage 1: extract the diagonal (ValidateSquare).
//   - Stage 2: delegate to NormalizeCross with the same diagonal on both sides.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonPositiveDiagonal.
// Complexity: O(n²).
func Normalize(m *Dense) (*Dense, error) {
	diag, err := Diagonal(m)
	if err != nil {
		return nil, err
	}

	return NormalizeCross(m, diag, diag)
}

// NormalizeCross normalizes a rectangular r×c grid whose row i has self-similarity
// rowDiag[i] and column j has colDiag[j]: out[i,j] = m[i,j]/sqrt(rowDiag[i]·colDiag[j]).
// Implementation:
//   - Stage 1: validate lengths against the shape (ErrDimensionMismatch).
//   - Stage 2: validate every diagonal value is finite and > 0.
//   - Stage 3: write the ratios into a fresh matrix.
//
// Complexity: O(r·c).
func NormalizeCross(m *Dense, rowDiag, colDiag []float64) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(rowDiag) != m.r || len(colDiag) != m.c {
		return nil, fmt.Errorf("NormalizeCross: diag %d/%d vs shape %dx%d: %w",
			len(rowDiag), len(colDiag), m.r, m.c, ErrDimensionMismatch)
	}
	if err := checkPositive("row", rowDiag); err != nil {
		return nil, err
	}
	if err := checkPositive("col", colDiag); err != nil {
		return nil, err
	}

	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[i*m.c+j] = m.data[i*m.c+j] / math.Sqrt(rowDiag[i]*colDiag[j])
		}
	}

	return out, nil
}

func checkPositive(side string, diag []float64) error {
	for i, v := range diag {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("NormalizeCross: %s diag[%d]=%g: %w", side, i, v, ErrNonPositiveDiagonal)
		}
	}

	return nil
}
