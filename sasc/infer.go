// Package sasc: the multi-restart driver and public entry point.
package sasc

import (
	randv2 "math/rand/v2"
	"strconv"

	"go.uber.org/zap"

	"github.com/plastic-phy/plastic/genotype"
)

// Infer runs the full inference: `repetitions` independent annealing
// restarts over the N×M genotype matrix under the k-Dollo model, each
// from a fresh random tree, a fresh RNG substream and error rates
// re-seeded from the supplied priors. The single best-scoring tree
// across restarts (ties keep the first found) is re-scored once more
// to produce the attachment σ, the expected genotype matrix and the
// reported log-likelihood.
//
// alphas (false-negative) and gammas (prior loss) accept either one
// scalar, broadcast to all M mutations, or one value per mutation;
// beta is the single false-positive rate. Ranges and integrality are
// the host's contract — only shape and range violations cheap enough
// to re-check come back as sentinel errors (ErrNilMatrix, ErrBadK,
// ErrRateLength, ErrBadRate, ErrLabelLength).
//
// Degenerate input is well-defined: M==0 yields the germline-only tree
// with every cell attached to it, N==0 yields empty σ and expected
// matrix; neither errors.
//
// Allocation failure while growing trees or score buffers is fatal to
// the whole computation (Go runtime abort); no partial tree is ever
// returned.
func Infer(gm *genotype.Matrix, k int, alphas []float64, beta float64, gammas []float64, opts ...Option) (*Result, error) {
	if gm == nil {
		return nil, ErrNilMatrix
	}
	if k < 0 {
		return nil, ErrBadK
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := gm.Mutations()
	labels := o.MutationLabels
	if labels == nil {
		labels = defaultLabels(m)
	} else if len(labels) != m {
		return nil, ErrLabelLength
	}

	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	base := rngFromSeed(o.Seed)

	var (
		best     runResult
		haveBest bool
	)
	for r := 0; r < o.Repetitions; r++ {
		// Independent substream per repetition; the learning walk gets
		// its own derived source so tree draws and rate draws stay
		// decorrelated.
		stream := deriveRNG(base, uint64(r))
		walkSrc := randv2.NewPCG(uint64(deriveSeed(stream.Int63(), 1)), uint64(r)+1)

		em, err := NewErrorModel(m, alphas, beta, gammas,
			o.AlphaVariance, o.BetaVariance, o.GammaVariance, walkSrc)
		if err != nil {
			return nil, err
		}

		start, err := randomTree(m, labels, o.Monoclonal, stream)
		if err != nil {
			return nil, err
		}

		a := &annealer{
			gm:           gm,
			em:           em,
			k:            k,
			maxDeletions: o.MaxDeletions,
			monoclonal:   o.Monoclonal,
			cores:        o.Cores,
			schedule:     o,
			labels:       labels,
			rng:          stream,
		}
		res, err := a.run(start)
		if err != nil {
			return nil, err
		}

		// Re-score the run's best under its own learned rates; this is
		// the number repetitions compete on.
		score, _, err := rescore(res, gm, o.Cores)
		if err != nil {
			return nil, err
		}
		res.score = score

		logger.Info("repetition complete",
			zap.Int("repetition", r+1),
			zap.Int("repetitions", o.Repetitions),
			zap.Float64("log_likelihood", score),
			zap.Int("losses", res.tree.Losses()),
		)

		if !haveBest || score > best.score {
			best = res
			haveBest = true
		}
	}

	// One final pass over the winner to emit σ and the expected matrix.
	finalScore, sigma, err := rescore(best, gm, o.Cores)
	if err != nil {
		return nil, err
	}

	expected, err := expectedMatrix(best, sigma, gm.Cells())
	if err != nil {
		return nil, err
	}

	return &Result{
		Tree:          best.tree,
		LogLikelihood: finalScore,
		Sigma:         sigma,
		Expected:      expected,
		Alphas:        append([]float64(nil), best.rates.alphas...),
		Beta:          best.rates.beta,
		Gammas:        append([]float64(nil), best.rates.gammas...),
	}, nil
}

// rescore evaluates a run's best tree under that run's learned rates
// with learning pinned off, so the comparison across repetitions and
// the reported outputs are free of walk state.
func rescore(res runResult, gm *genotype.Matrix, cores int) (float64, []int, error) {
	em, err := NewErrorModel(gm.Mutations(), res.rates.alphas, res.rates.beta, res.rates.gammas, 0, 0, 0, nil)
	if err != nil {
		return 0, nil, err
	}

	return Score(res.tree, gm, em, cores)
}

// expectedMatrix reconstructs the N×M expected genotype matrix: row i
// is the genotype profile of the node cell i attaches to.
func expectedMatrix(res runResult, sigma []int, cells int) (*genotype.Matrix, error) {
	out, err := genotype.New(cells, res.tree.Mutations())
	if err != nil {
		return nil, err
	}

	var (
		profile []bool
		i, j    int
	)
	for i = range sigma {
		if profile, err = res.tree.Profile(sigma[i]); err != nil {
			return nil, err
		}
		for j = range profile {
			if profile[j] {
				if err = out.Set(i, j, genotype.Present); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// defaultLabels names mutation columns "1".."M", the SASC convention
// for matrices that arrive without labels.
func defaultLabels(m int) []string {
	out := make([]string, m)
	for j := range out {
		out[j] = strconv.Itoa(j + 1)
	}

	return out
}
