// Package sasc: the sequencing-error model and its learning walk.
package sasc

import (
	"math"
	randv2 "math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// rateFloor keeps perturbed rates strictly inside (0, 1) so their logs
// stay finite.
const rateFloor = 1e-9

// ErrorModel holds the sequencing-error parameters consumed by the
// scorer: per-mutation false-negative rates α, one false-positive rate
// β, and per-mutation prior loss probabilities γ.
//
// When error learning is enabled (any variance > 0) the model carries,
// per parameter, a current value and the externally supplied prior it
// was seeded from, and proposes zero-mean Gaussian random-walk steps
// on the current values. Proposals share the annealer's Metropolis
// gate; a rejected proposal is rolled back via snapshot/restore. The
// model lives for one repetition and is re-seeded from the priors at
// the start of the next.
type ErrorModel struct {
	alphas []float64 // current false-negative rate per mutation
	beta   float64   // current false-positive rate
	gammas []float64 // current prior loss probability per mutation

	alphaMu []float64 // priors the repetition was seeded from
	betaMu  float64
	gammaMu []float64

	alphaVar float64
	betaVar  float64
	gammaVar float64

	// A scalar prior broadcasts to M but stays a single learned value:
	// one walk offset moves every entry together.
	singleAlpha bool
	singleGamma bool

	rnd *randv2.Rand // drives the walk; never shared with tree moves
}

// rateSnapshot captures the current parameter values so a rejected
// perturbation can be rolled back exactly.
type rateSnapshot struct {
	alphas []float64
	beta   float64
	gammas []float64
}

// NewErrorModel builds an error model for M mutations.
//
// alphas and gammas may hold a single scalar (broadcast to M) or one
// value per mutation; anything else is ErrRateLength. All rates must
// lie in [0, 1] (ErrBadRate). The variances control the learning walk;
// all zero disables learning. src seeds the walk; nil falls back to a
// fixed deterministic source.
func NewErrorModel(mutations int, alphas []float64, beta float64, gammas []float64,
	alphaVar, betaVar, gammaVar float64, src randv2.Source) (*ErrorModel, error) {
	a, singleAlpha, err := broadcastRates(alphas, mutations)
	if err != nil {
		return nil, err
	}
	g, singleGamma, err := broadcastRates(gammas, mutations)
	if err != nil {
		return nil, err
	}
	if beta < 0 || beta > 1 {
		return nil, ErrBadRate
	}

	if src == nil {
		src = randv2.NewPCG(uint64(defaultRNGSeed), uint64(defaultRNGSeed))
	}

	return &ErrorModel{
		alphas:      a,
		beta:        beta,
		gammas:      g,
		alphaMu:     append([]float64(nil), a...),
		betaMu:      beta,
		gammaMu:     append([]float64(nil), g...),
		alphaVar:    alphaVar,
		betaVar:     betaVar,
		gammaVar:    gammaVar,
		singleAlpha: singleAlpha,
		singleGamma: singleGamma,
		rnd:         randv2.New(src),
	}, nil
}

// broadcastRates expands a length-1 rate vector to m entries, keeps a
// length-m vector as-is, and rejects every other shape.
func broadcastRates(rates []float64, m int) ([]float64, bool, error) {
	single := len(rates) == 1

	var out []float64
	switch {
	case single:
		if rates[0] < 0 || rates[0] > 1 {
			return nil, false, ErrBadRate
		}
		out = make([]float64, m)
		for j := range out {
			out[j] = rates[0]
		}
	case len(rates) == m:
		out = make([]float64, m)
		for j, r := range rates {
			if r < 0 || r > 1 {
				return nil, false, ErrBadRate
			}
			out[j] = r
		}
	default:
		return nil, false, ErrRateLength
	}

	return out, single, nil
}

// Learning reports whether any parameter carries a positive variance.
func (em *ErrorModel) Learning() bool {
	return em.alphaVar > 0 || em.betaVar > 0 || em.gammaVar > 0
}

// Rates returns independent copies of the current α, β and γ values.
func (em *ErrorModel) Rates() (alphas []float64, beta float64, gammas []float64) {
	return append([]float64(nil), em.alphas...), em.beta, append([]float64(nil), em.gammas...)
}

// snapshot captures the current values for rollback or best-so-far
// bookkeeping.
func (em *ErrorModel) snapshot() rateSnapshot {
	return rateSnapshot{
		alphas: append([]float64(nil), em.alphas...),
		beta:   em.beta,
		gammas: append([]float64(nil), em.gammas...),
	}
}

// restore rolls the current values back to a snapshot.
func (em *ErrorModel) restore(s rateSnapshot) {
	copy(em.alphas, s.alphas)
	em.beta = s.beta
	copy(em.gammas, s.gammas)
}

// perturb proposes a random-walk step on one learnable parameter and
// returns the pre-move snapshot so the annealer can roll back a
// rejected proposal. Exactly one parameter kind (α, β or γ) moves per
// call, drawn uniformly among the kinds with positive variance.
func (em *ErrorModel) perturb() rateSnapshot {
	before := em.snapshot()

	kinds := make([]int, 0, 3)
	if em.alphaVar > 0 && len(em.alphas) > 0 {
		kinds = append(kinds, 0)
	}
	if em.betaVar > 0 {
		kinds = append(kinds, 1)
	}
	if em.gammaVar > 0 && len(em.gammas) > 0 {
		kinds = append(kinds, 2)
	}
	if len(kinds) == 0 {
		return before
	}

	switch kinds[em.rnd.IntN(len(kinds))] {
	case 0:
		step := em.gaussStep(em.alphaVar)
		if em.singleAlpha {
			for j := range em.alphas {
				em.alphas[j] = reflectRate(em.alphas[j] + step)
			}
		} else {
			j := em.rnd.IntN(len(em.alphas))
			em.alphas[j] = reflectRate(em.alphas[j] + step)
		}
	case 1:
		em.beta = reflectRate(em.beta + em.gaussStep(em.betaVar))
	default:
		step := em.gaussStep(em.gammaVar)
		if em.singleGamma {
			for j := range em.gammas {
				em.gammas[j] = reflectRate(em.gammas[j] + step)
			}
		} else {
			j := em.rnd.IntN(len(em.gammas))
			em.gammas[j] = reflectRate(em.gammas[j] + step)
		}
	}

	return before
}

// gaussStep draws a zero-mean Gaussian offset whose magnitude is
// controlled by the parameter's variance.
func (em *ErrorModel) gaussStep(variance float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: math.Sqrt(variance), Src: em.rnd}.Rand()
}

// reflectRate folds v back into the open unit interval: excursions
// past 0 or 1 reflect off the boundary, then the value is pinned away
// from the exact endpoints so log terms stay finite.
func reflectRate(v float64) float64 {
	for v < 0 || v > 1 {
		if v < 0 {
			v = -v
		}
		if v > 1 {
			v = 2 - v
		}
	}
	if v < rateFloor {
		v = rateFloor
	}
	if v > 1-rateFloor {
		v = 1 - rateFloor
	}

	return v
}
