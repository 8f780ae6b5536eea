// Package sasc: result type, sentinel errors, move-kind definitions.
package sasc

import (
	"errors"

	"github.com/plastic-phy/plastic/genotype"
	"github.com/plastic-phy/plastic/tree"
)

// Sentinel errors for the entry contract. Deeper input validation is
// the host's job before the core is invoked; these only guard
// contracts that are cheap to re-check.
var (
	// ErrNilMatrix indicates a nil genotype matrix.
	ErrNilMatrix = errors.New("sasc: genotype matrix is nil")

	// ErrBadK indicates a negative k.
	ErrBadK = errors.New("sasc: k must be >= 0")

	// ErrRateLength indicates an α or γ vector that is neither a single
	// scalar to broadcast nor one value per mutation.
	ErrRateLength = errors.New("sasc: rate vector length must be 1 or M")

	// ErrBadRate indicates an error rate outside [0, 1].
	ErrBadRate = errors.New("sasc: error rates must lie in [0, 1]")

	// ErrLabelLength indicates a mutation-label vector not of length M.
	ErrLabelLength = errors.New("sasc: mutation label count must equal M")
)

// Result is the outcome of a full multi-restart inference.
type Result struct {
	// Tree is the best-scoring mutation tree across all repetitions.
	Tree *tree.Tree

	// LogLikelihood is Tree's total log-likelihood under the learned
	// error rates, recomputed once after the last repetition.
	LogLikelihood float64

	// Sigma maps each cell index to the id of the tree node it attaches
	// to (ties broken by lowest node id).
	Sigma []int

	// Expected is the N×M expected genotype matrix: row i is the
	// genotype profile of the node cell i attaches to.
	Expected *genotype.Matrix

	// Alphas, Beta and Gammas are the error rates associated with the
	// best run: the learned values when error learning was enabled,
	// the supplied priors otherwise. Alphas and Gammas have length M.
	Alphas []float64
	Beta   float64
	Gammas []float64
}

// moveKind tags one annealing proposal variant. Tree edits and error-
// parameter perturbations share a single Metropolis accept/reject gate.
type moveKind int

const (
	moveRelocate moveKind = iota
	moveInsertLoss
	moveRemoveLoss
	movePerturbRates
	numMoveKinds
)

// MoveWeights is the relative distribution over annealing move kinds.
// SASC does not publish its move ratios, so the distribution is
// configurable; weights for structurally
// impossible kinds (loss moves with k==0 or a zero deletion budget,
// perturbation with all learning variances zero) are ignored.
type MoveWeights struct {
	Relocate     float64
	InsertLoss   float64
	RemoveLoss   float64
	PerturbRates float64
}

// DefaultMoveWeights favors topology rearrangement, with a steady
// trickle of loss-budget and error-rate exploration.
func DefaultMoveWeights() MoveWeights {
	return MoveWeights{
		Relocate:     0.55,
		InsertLoss:   0.20,
		RemoveLoss:   0.15,
		PerturbRates: 0.10,
	}
}
