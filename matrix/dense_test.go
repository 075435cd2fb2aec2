// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/secretsanta/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewSquare(-1, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias still matches

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.FillCol(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the numeric policy on writes.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.FillRow(0, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Fill(math.NaN()), matrix.ErrNaNInf)

	_, err = matrix.NewSquare(2, math.NaN(), 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewSquare checks the diagonal/off-diagonal seeding.
func TestNewSquare(t *testing.T) {
	m, err := matrix.NewSquare(3, 0, 1)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Zero(t, v, "diagonal (%d,%d)", i, j)
				continue
			}
			require.Equal(t, 1.0, v, "off-diagonal (%d,%d)", i, j)
		}
	}
}

// TestRowAliasesStorage verifies that Row returns a live view, not a copy.
func TestRowAliasesStorage(t *testing.T) {
	m, err := matrix.NewSquare(3, 0, 1)
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 1}, row)

	row[2] = 0.25
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0.25, v)

	// Capacity is clipped so append cannot spill into the next row.
	row = append(row, 9)
	v, err = m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestRowSumAndFills covers the sweep helpers.
func TestRowSumAndFills(t *testing.T) {
	m, err := matrix.NewSquare(4, 0, 1)
	require.NoError(t, err)

	s, err := m.RowSum(0)
	require.NoError(t, err)
	require.Equal(t, 3.0, s)

	require.NoError(t, m.FillCol(1, 0))
	s, err = m.RowSum(0)
	require.NoError(t, err)
	require.Equal(t, 2.0, s)

	require.NoError(t, m.FillRow(2, 0))
	s, err = m.RowSum(2)
	require.NoError(t, err)
	require.Zero(t, s)

	require.NoError(t, m.Fill(0.5))
	s, err = m.RowSum(3)
	require.NoError(t, err)
	require.Equal(t, 2.0, s)
}

// TestCloneIndependence ensures Clone produces a deep copy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewSquare(2, 0, 1)
	require.NoError(t, err)

	cp := m.CloneDense()
	require.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(0, 1, 0))
	require.False(t, m.Equal(cp))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	var iface matrix.Matrix = m
	require.Equal(t, m.Rows(), iface.Clone().Rows())
}

// TestString checks the debug representation.
func TestString(t *testing.T) {
	m, err := matrix.NewSquare(2, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "[0, 1]\n[1, 0]\n", m.String())
}
