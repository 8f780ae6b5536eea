// SPDX-License-Identifier: MIT

// Package genotype_test verifies ternary matrix construction contracts,
// accessor bounds, and copy independence.
package genotype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plastic-phy/plastic/genotype"
)

// TestFromInts_Basic checks construction and accessors on a small matrix.
func TestFromInts_Basic(t *testing.T) {
	m, err := genotype.FromInts([][]int{
		{1, 0, 2},
		{0, 1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Cells())
	assert.Equal(t, 3, m.Mutations())

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, genotype.Present, v)

	v, err = m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, genotype.Missing, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, genotype.Absent, v)
}

// TestFromInts_RejectsBadValues ensures entries outside {0,1,2} error.
func TestFromInts_RejectsBadValues(t *testing.T) {
	_, err := genotype.FromInts([][]int{{0, 3}})
	assert.ErrorIs(t, err, genotype.ErrBadEntry)

	_, err = genotype.FromInts([][]int{{-1}})
	assert.ErrorIs(t, err, genotype.ErrBadEntry)
}

// TestFromInts_RejectsRaggedRows ensures uneven rows error.
func TestFromInts_RejectsRaggedRows(t *testing.T) {
	_, err := genotype.FromInts([][]int{
		{0, 1},
		{0},
	})
	assert.ErrorIs(t, err, genotype.ErrRaggedRows)
}

// TestNew_Dimensions covers degenerate and invalid shapes.
func TestNew_Dimensions(t *testing.T) {
	// Zero rows and zero columns are legal degenerate inputs.
	m, err := genotype.New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Cells())
	assert.Equal(t, 0, m.Mutations())

	_, err = genotype.New(-1, 2)
	assert.ErrorIs(t, err, genotype.ErrNegativeDimensions)
}

// TestAtSet_Bounds checks index validation on both accessors.
func TestAtSet_Bounds(t *testing.T) {
	m, err := genotype.New(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, genotype.ErrIndexOutOfBounds)

	err = m.Set(0, -1, genotype.Present)
	assert.ErrorIs(t, err, genotype.ErrIndexOutOfBounds)

	err = m.Set(0, 0, genotype.Entry(7))
	assert.ErrorIs(t, err, genotype.ErrBadEntry)
}

// TestClone_Independence ensures a clone does not alias the original.
func TestClone_Independence(t *testing.T) {
	m, err := genotype.FromInts([][]int{{0, 1}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, m.Set(0, 0, genotype.Present))

	v, err := cp.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, genotype.Absent, v, "clone must not observe writes to the original")
}

// TestInts_RoundTrip ensures the integer rendering matches construction input.
func TestInts_RoundTrip(t *testing.T) {
	rows := [][]int{
		{1, 2, 0},
		{0, 0, 1},
	}
	m, err := genotype.FromInts(rows)
	require.NoError(t, err)

	assert.Equal(t, rows, m.Ints())
}

// TestRowView_SharesStorage documents the zero-copy contract.
func TestRowView_SharesStorage(t *testing.T) {
	m, err := genotype.FromInts([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)

	row, err := m.RowView(1)
	require.NoError(t, err)
	assert.Equal(t, []genotype.Entry{genotype.Present, genotype.Absent}, row)

	_, err = m.RowView(2)
	assert.ErrorIs(t, err, genotype.ErrIndexOutOfBounds)
}
