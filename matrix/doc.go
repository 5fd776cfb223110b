// SPDX-License-Identifier: MIT

// Package matrix provides the row-major Dense container used for kernel
// matrices and stacked clique embeddings, plus the few whole-matrix helpers the
// kernel engine needs.
//
// Surface:
//   - Dense: NewDense, At, Set, Rows, Cols, Shape, Row, Clone, String.
//   - Validators: ValidateSquare, ValidateSymmetric.
//   - Kernel helpers: MirrorUpper (copy strict upper triangle into the lower),
//     Diagonal, Normalize (K[i,j]/sqrt(K[i,i]·K[j,j])) and NormalizeCross for
//     rectangular target×basis grids with externally supplied diagonals.
//
// Numeric policy: Set rejects NaN/±Inf with ErrNaNInf. All index errors are
// ErrOutOfRange wrapped with the method name and coordinates.
package matrix
