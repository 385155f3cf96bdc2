// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) over a weight Dense.
//   - Used as an independent oracle for single-source queries.
//
// Contract:
//   - Infinity means "no path"; diagonal is 0 (NewDense guarantees it).

package matrix

// AllPairs returns a new Dense holding the shortest distance between every
// pair of vertices in m. m is left untouched.
//
// Loop order is fixed (k → i → j) and relaxation is strict, so the result is
// deterministic. Sums never overflow: Infinity operands are skipped.
// Complexity: Time O(n³), extra space O(n²) for the copy.
func (m *Dense) AllPairs() *Dense {
	d := m.Clone()
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Infinity {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Infinity {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return d
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}
