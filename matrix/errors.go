// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Callers match with errors.Is; methods wrap with call-site context.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested order is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeWeight signals a negative cost written into a weight cell.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
