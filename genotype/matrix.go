// SPDX-License-Identifier: MIT

// Package genotype: dense ternary matrix storage.
// This file defines Entry, Matrix, constructors and accessors.
package genotype

import "errors"

// Sentinel errors for matrix construction and access.
var (
	// ErrNegativeDimensions indicates a negative row or column count.
	ErrNegativeDimensions = errors.New("genotype: dimensions must be >= 0")

	// ErrRaggedRows indicates that input rows differ in length.
	ErrRaggedRows = errors.New("genotype: rows must all have the same length")

	// ErrBadEntry indicates a value outside {Absent, Present, Missing}.
	ErrBadEntry = errors.New("genotype: entry must be 0 (absent), 1 (present) or 2 (missing)")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("genotype: index out of bounds")
)

// Entry is one observed matrix state.
type Entry int8

const (
	// Absent marks a mutation not observed in a cell.
	Absent Entry = 0

	// Present marks a mutation observed in a cell.
	Present Entry = 1

	// Missing marks an unmeasured entry; the scorer ignores it.
	Missing Entry = 2
)

// valid reports whether e is one of the three ternary states.
func (e Entry) valid() bool {
	return e == Absent || e == Present || e == Missing
}

// Matrix is a row-major N×M ternary mutation matrix.
// Zero rows or zero columns are legal: the model is still well-defined
// on degenerate input, so construction must not reject it.
type Matrix struct {
	n, m int     // cells × mutations
	data []Entry // flat backing storage, length n*m
}

// New creates an n×m Matrix with every entry Absent.
//
// Complexity: O(n·m).
func New(cells, mutations int) (*Matrix, error) {
	if cells < 0 || mutations < 0 {
		return nil, ErrNegativeDimensions
	}

	return &Matrix{n: cells, m: mutations, data: make([]Entry, cells*mutations)}, nil
}

// FromInts builds a Matrix from host-side integer rows using the
// conventional markers 0=absent, 1=present, 2=missing.
//
// Errors: ErrRaggedRows on uneven rows, ErrBadEntry on any other value.
//
// Complexity: O(n·m).
func FromInts(rows [][]int) (*Matrix, error) {
	n := len(rows)
	m := 0
	if n > 0 {
		m = len(rows[0])
	}

	out, err := New(n, m)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    int
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != m {
			return nil, ErrRaggedRows
		}
		for j = 0; j < m; j++ {
			v = rows[i][j]
			if !Entry(v).valid() {
				return nil, ErrBadEntry
			}
			out.data[i*m+j] = Entry(v)
		}
	}

	return out, nil
}

// Cells returns the number of rows (cells, N).
func (g *Matrix) Cells() int { return g.n }

// Mutations returns the number of columns (mutations, M).
func (g *Matrix) Mutations() int { return g.m }

// At returns the entry for cell i, mutation j.
//
// Complexity: O(1).
func (g *Matrix) At(i, j int) (Entry, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.m {
		return Absent, ErrIndexOutOfBounds
	}

	return g.data[i*g.m+j], nil
}

// Set stores v at cell i, mutation j.
//
// Errors: ErrIndexOutOfBounds, ErrBadEntry.
//
// Complexity: O(1).
func (g *Matrix) Set(i, j int, v Entry) error {
	if i < 0 || i >= g.n || j < 0 || j >= g.m {
		return ErrIndexOutOfBounds
	}
	if !v.valid() {
		return ErrBadEntry
	}
	g.data[i*g.m+j] = v

	return nil
}

// RowView returns the backing slice for cell i without copying.
// The slice aliases Matrix storage: callers must treat it as read-only.
// Intended for hot scoring loops where per-entry At calls would cost
// a bounds check and an error allocation pattern per element.
//
// Complexity: O(1).
func (g *Matrix) RowView(i int) ([]Entry, error) {
	if i < 0 || i >= g.n {
		return nil, ErrIndexOutOfBounds
	}

	return g.data[i*g.m : (i+1)*g.m], nil
}

// Clone returns a deep, independent copy of the matrix.
//
// Complexity: O(n·m).
func (g *Matrix) Clone() *Matrix {
	cp := &Matrix{n: g.n, m: g.m, data: make([]Entry, len(g.data))}
	copy(cp.data, g.data)

	return cp
}

// Ints renders the matrix back to integer rows, the shape hosts expect
// when persisting an expected-genotype matrix.
//
// Complexity: O(n·m).
func (g *Matrix) Ints() [][]int {
	out := make([][]int, g.n)

	var i, j int
	for i = 0; i < g.n; i++ {
		out[i] = make([]int, g.m)
		for j = 0; j < g.m; j++ {
			out[i][j] = int(g.data[i*g.m+j])
		}
	}

	return out
}
