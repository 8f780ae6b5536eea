// SPDX-License-Identifier: MIT

// Package sasc_test: greedy attachment scoring against hand-computed
// likelihoods.
package sasc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plastic-phy/plastic/genotype"
	"github.com/plastic-phy/plastic/sasc"
	"github.com/plastic-phy/plastic/tree"
)

// scoreFixture builds the linear tree root -> m1 -> m2 together with a
// neutral error model (α=0.1, β=0.05, γ=1).
func scoreFixture(t *testing.T) (*tree.Tree, *sasc.ErrorModel) {
	t.Helper()

	tr, err := tree.New(2)
	require.NoError(t, err)
	a, err := tr.AddChild(tr.Root(), 0, false, "m1")
	require.NoError(t, err)
	_, err = tr.AddChild(a, 1, false, "m2")
	require.NoError(t, err)

	em, err := sasc.NewErrorModel(2, []float64{0.1}, 0.05, []float64{1}, 0, 0, 0, nil)
	require.NoError(t, err)

	return tr, em
}

// TestScore_HandComputed pins the attachment vector and the total
// log-likelihood of a four-cell input against values computed by hand.
//
// Node profiles: root=[0,0] (id 0), m1=[1,0] (id 1), m2=[1,1] (id 2).
func TestScore_HandComputed(t *testing.T) {
	tr, em := scoreFixture(t)

	gm, err := genotype.FromInts([][]int{
		{0, 0}, // best at the germline root
		{1, 0}, // best below the first gain
		{1, 1}, // best below both gains
		{2, 1}, // missing entry carries no evidence
	})
	require.NoError(t, err)

	score, sigma, err := sasc.Score(tr, gm, em, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 2}, sigma)

	want := 2*math.Log(0.95) + // cell 0 at root: two true negatives
		math.Log(0.9) + math.Log(0.95) + // cell 1 at m1
		2*math.Log(0.9) + // cell 2 at m2
		math.Log(0.9) // cell 3 at m2, first column skipped
	assert.InDelta(t, want, score, 1e-12)
}

// TestScore_TieBreaksLowestID pins the argmax policy: a cell with no
// evidence scores identically everywhere and must land on the root.
func TestScore_TieBreaksLowestID(t *testing.T) {
	tr, em := scoreFixture(t)

	gm, err := genotype.FromInts([][]int{{2, 2}})
	require.NoError(t, err)

	score, sigma, err := sasc.Score(tr, gm, em, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, sigma)
	assert.Zero(t, score)
}

// TestScore_LossPrior checks that each loss node contributes exactly
// log(γ_j) on top of the attachment sum.
func TestScore_LossPrior(t *testing.T) {
	tr, err := tree.New(2)
	require.NoError(t, err)
	a, err := tr.AddChild(tr.Root(), 0, false, "m1")
	require.NoError(t, err)
	b, err := tr.AddChild(a, 1, false, "m2")
	require.NoError(t, err)

	gm, err := genotype.FromInts([][]int{
		{0, 0},
		{1, 0},
		{1, 1},
		{2, 1},
	})
	require.NoError(t, err)

	em, err := sasc.NewErrorModel(2, []float64{0.1}, 0.05, []float64{0.2}, 0, 0, 0, nil)
	require.NoError(t, err)

	base, _, err := sasc.Score(tr, gm, em, 1)
	require.NoError(t, err)

	// A back-mutation of m1 below m2: no cell prefers its profile, so
	// only the prior term moves.
	_, err = tr.AddChild(b, 0, true, "m1-")
	require.NoError(t, err)

	withLoss, sigma, err := sasc.Score(tr, gm, em, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 2}, sigma)
	assert.InDelta(t, base+math.Log(0.2), withLoss, 1e-12)
}

// TestScore_CoresEquivalent verifies the parallel scan is a pure
// speedup: identical σ and score for any worker count.
func TestScore_CoresEquivalent(t *testing.T) {
	tr, em := scoreFixture(t)

	rows := [][]int{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 2}, {1, 2}, {2, 0}, {0, 2},
	}
	gm, err := genotype.FromInts(rows)
	require.NoError(t, err)

	s1, sig1, err := sasc.Score(tr, gm, em, 1)
	require.NoError(t, err)
	s4, sig4, err := sasc.Score(tr, gm, em, 4)
	require.NoError(t, err)

	assert.Equal(t, sig1, sig4)
	assert.InDelta(t, s1, s4, 0)
}

// TestScore_RecomputeLaw re-derives the total from the returned σ: the
// sum over cells of the assigned node's row likelihood, plus the loss
// prior, must reproduce Score's result exactly.
func TestScore_RecomputeLaw(t *testing.T) {
	tr, em := scoreFixture(t)

	gm, err := genotype.FromInts([][]int{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {1, 2},
	})
	require.NoError(t, err)

	score, sigma, err := sasc.Score(tr, gm, em, 2)
	require.NoError(t, err)

	alphas, beta, _ := em.Rates()
	total := 0.0
	for cell, id := range sigma {
		p, perr := tr.Profile(id)
		require.NoError(t, perr)
		for j := 0; j < gm.Mutations(); j++ {
			v, aerr := gm.At(cell, j)
			require.NoError(t, aerr)
			switch {
			case v == genotype.Missing:
			case v == genotype.Present && p[j]:
				total += math.Log(1 - alphas[j])
			case v == genotype.Present:
				total += math.Log(beta)
			case p[j]: // observed absent under a present profile
				total += math.Log(alphas[j])
			default:
				total += math.Log(1 - beta)
			}
		}
	}
	assert.InDelta(t, total, score, 1e-12)
}

// TestScore_NilMatrix pins the guard.
func TestScore_NilMatrix(t *testing.T) {
	tr, em := scoreFixture(t)

	_, _, err := sasc.Score(tr, nil, em, 1)
	assert.ErrorIs(t, err, sasc.ErrNilMatrix)
}
