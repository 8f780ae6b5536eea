// Package sasc: greedy per-cell attachment and tree log-likelihood.
package sasc

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/plastic-phy/plastic/genotype"
	"github.com/plastic-phy/plastic/tree"
)

// Score computes, for a fixed tree, the maximum-likelihood attachment
// σ of every cell and the resulting total log-likelihood.
//
// Per cell i and candidate node v the observed row is compared against
// v's genotype profile: where the profile says present, an observed 1
// contributes log(1−α_j) and an observed 0 contributes log(α_j)
// (false negative); where the profile says absent, an observed 0
// contributes log(1−β) and an observed 1 contributes log(β) (false
// positive); missing entries contribute nothing. The cell attaches to
// the node maximizing its total, ties broken by lowest node id, and
// the per-cell maxima sum to the score. A tree-level prior of
// log(γ_j) per loss node of mutation j is added once, so trees paying
// the loss budget are weighed against the supplied loss priors.
//
// The per-cell scan has no cross-cell dependency and runs on a bounded
// worker group of `cores` goroutines, each writing only its own σ and
// score slot.
//
// The returned score always equals the sum of the per-cell maxima plus
// the loss prior: recomputing each cell against its assigned node's
// profile reproduces the total exactly.
//
// Complexity: O(nodes·M) profile folding + O(N·nodes·M / cores) scan.
func Score(t *tree.Tree, gm *genotype.Matrix, em *ErrorModel, cores int) (float64, []int, error) {
	if gm == nil {
		return 0, nil, ErrNilMatrix
	}
	if cores < 1 {
		cores = 1
	}

	var (
		n = gm.Cells()
		m = gm.Mutations()
	)

	// Candidate nodes in ascending id order so the per-cell argmax
	// tie-breaks deterministically on the lowest id.
	ids := t.DFS()
	sort.Ints(ids)

	profiles := make([][]bool, len(ids))
	var (
		i   int
		err error
	)
	for i = range ids {
		if profiles[i], err = t.Profile(ids[i]); err != nil {
			return 0, nil, err
		}
	}

	// Per-mutation log tables; computed once per call because the
	// error model may have been perturbed since the last score.
	alphas, beta, gammas := em.Rates()
	var (
		logA  = make([]float64, m)
		log1A = make([]float64, m)
		logB  = math.Log(beta)
		log1B = math.Log(1 - beta)
	)
	var j int
	for j = 0; j < m; j++ {
		logA[j] = math.Log(alphas[j])
		log1A[j] = math.Log(1 - alphas[j])
	}

	// Loss prior: each loss node of mutation j costs log(γ_j).
	prior := 0.0
	for j, c := range t.LossCounts() {
		if c > 0 {
			prior += float64(c) * math.Log(gammas[j])
		}
	}

	var (
		sigma      = make([]int, n)
		cellScores = make([]float64, n)
		grp        errgroup.Group
	)
	grp.SetLimit(cores)

	for i = 0; i < n; i++ {
		cell := i
		grp.Go(func() error {
			row, rerr := gm.RowView(cell)
			if rerr != nil {
				return rerr
			}

			var (
				best   = math.Inf(-1)
				bestID = t.Root()
				sum    float64
				v, c   int
				p      []bool
			)
			for v = range ids {
				p = profiles[v]
				sum = 0
				for c = 0; c < m; c++ {
					switch row[c] {
					case genotype.Missing:
						// Unobserved entries carry no evidence.
					case genotype.Present:
						if p[c] {
							sum += log1A[c]
						} else {
							sum += logB
						}
					default: // genotype.Absent
						if p[c] {
							sum += logA[c]
						} else {
							sum += log1B
						}
					}
				}
				if sum > best {
					best = sum
					bestID = ids[v]
				}
			}

			sigma[cell] = bestID
			cellScores[cell] = best

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return 0, nil, err
	}

	return floats.Sum(cellScores) + prior, sigma, nil
}
