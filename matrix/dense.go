// Package matrix provides the dense, square effective-weight matrix that the
// shortest-path engine reads. Dense stores int64 costs in a flat row-major
// slice; the value Infinity marks a pair with no usable edge (absent or down).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Infinity is the cost stored for a pair that cannot be traversed.
const Infinity int64 = math.MaxInt64

// Dense is an n×n row-major matrix of int64 costs.
// A freshly allocated Dense holds Infinity everywhere except the diagonal,
// which is zero.
type Dense struct {
	n    int     // order (rows == cols)
	data []int64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense with every off-diagonal cell set to Infinity.
// Stage 1 (Validate): n must be ≥ 0; an empty matrix is allowed.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): fill with Infinity, zero the diagonal.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	// Validate order
	if n < 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}

	// Allocate and fill
	data := make([]int64, n*n)
	for i := range data {
		data[i] = Infinity
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}

	return &Dense{n: n, data: data}, nil
}

// Order returns the number of rows (and columns).
// Complexity: O(1).
func (m *Dense) Order() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the cost at (row, col). Infinity means "no usable edge".
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns cost w at (row, col). Negative costs are rejected.
// Complexity: O(1).
func (m *Dense) Set(row, col int, w int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if w < 0 {
		return denseErrorf("Set", row, col, ErrNegativeWeight)
	}
	m.data[idx] = w

	return nil
}

// SetSymmetric assigns w at both (u, v) and (v, u).
// Complexity: O(1).
func (m *Dense) SetSymmetric(u, v int, w int64) error {
	if err := m.Set(u, v, w); err != nil {
		return err
	}

	return m.Set(v, u, w)
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// CheckSymmetric returns ErrAsymmetry (wrapped with the first offending cell)
// if At(i,j) != At(j,i) for any pair.
// Complexity: O(n²).
func (m *Dense) CheckSymmetric() error {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return denseErrorf("CheckSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// String implements fmt.Stringer. Infinity prints as "∞".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if w := m.data[i*m.n+j]; w == Infinity {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%d", w)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
