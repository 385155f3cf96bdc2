package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/matrix"
)

func TestAllPairs_Path(t *testing.T) {
	// 0—1 (2), 1—2 (3), 0—2 (10), 3 isolated.
	m, err := matrix.NewDense(4)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 1, 2))
	require.NoError(t, m.SetSymmetric(1, 2, 3))
	require.NoError(t, m.SetSymmetric(0, 2, 10))

	d := m.AllPairs()

	row, err := d.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2, 5, matrix.Infinity}, row)

	row, err = d.Row(3)
	require.NoError(t, err)
	require.Equal(t, []int64{matrix.Infinity, matrix.Infinity, matrix.Infinity, 0}, row)

	require.NoError(t, d.CheckSymmetric())

	// Source matrix is untouched.
	w, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(10), w)
}

func TestAllPairs_ZeroWeight(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 1, 0))
	require.NoError(t, m.SetSymmetric(1, 2, 4))

	row, err := m.AllPairs().Row(2)
	require.NoError(t, err)
	require.Equal(t, []int64{4, 4, 0}, row)
}

func TestRow_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
