// Package sasc: the Metropolis search over trees and error rates.
package sasc

import (
	"math"
	"math/rand"

	"github.com/plastic-phy/plastic/genotype"
	"github.com/plastic-phy/plastic/tree"
)

// proposalTries bounds how many proposals one annealing step draws
// before giving the step up: invalid moves are expected and frequent
// (they are discarded and redrawn, never treated as failures), but on
// tiny instances no valid move may exist at all.
const proposalTries = 24

// annealer drives one simulated-annealing run. The working tree and
// the error model belong exclusively to the run; only the scorer fans
// out, and it reads them without mutation.
type annealer struct {
	gm           *genotype.Matrix
	em           *ErrorModel
	k            int
	maxDeletions int
	monoclonal   bool
	cores        int
	schedule     Options // temperatures, step budget, move weights
	labels       []string
	rng          *rand.Rand
}

// runResult is the best state observed during one run, deep-copied out
// before the working tree keeps mutating.
type runResult struct {
	tree  *tree.Tree
	score float64
	rates rateSnapshot
}

// run anneals from the given initial tree until the temperature floor
// (or the optional step budget) is reached and returns the best tree,
// score and error-rate snapshot seen along the way. Simulated
// annealing is not monotonic, so the final state may be worse than the
// tracked best; the best is what survives.
func (a *annealer) run(start *tree.Tree) (runResult, error) {
	cur := start
	curScore, _, err := Score(cur, a.gm, a.em, a.cores)
	if err != nil {
		return runResult{}, err
	}

	best := runResult{tree: cur.Clone(), score: curScore, rates: a.em.snapshot()}

	var (
		temp     = a.schedule.StartTemp
		steps    = 0
		newScore float64
	)
	for temp > a.schedule.MinTemp && (a.schedule.MaxSteps == 0 || steps < a.schedule.MaxSteps) {
		kind, cand, snap, ok := a.propose(cur)
		if ok {
			if kind == movePerturbRates {
				// The model already carries the perturbed rates; score the
				// unchanged tree under them and roll back on rejection.
				if newScore, _, err = Score(cur, a.gm, a.em, a.cores); err != nil {
					return runResult{}, err
				}
				if a.accept(newScore, curScore, temp) {
					curScore = newScore
				} else {
					a.em.restore(snap)
				}
			} else {
				if newScore, _, err = Score(cand, a.gm, a.em, a.cores); err != nil {
					return runResult{}, err
				}
				if a.accept(newScore, curScore, temp) {
					cur = cand
					curScore = newScore
				}
			}

			if curScore > best.score {
				best = runResult{tree: cur.Clone(), score: curScore, rates: a.em.snapshot()}
			}
		}

		temp *= 1 - a.schedule.CoolingRate
		steps++
	}

	return best, nil
}

// accept applies the Metropolis criterion: an improvement is always
// taken; a worsening is taken with probability exp(Δ/T).
func (a *annealer) accept(newScore, oldScore, temp float64) bool {
	if newScore > oldScore {
		return true
	}

	return a.rng.Float64() < math.Exp((newScore-oldScore)/temp)
}

// propose draws one move from the weighted kind distribution and
// builds its candidate state. Tree moves come back as a mutated clone
// of cur; a rate perturbation mutates the error model in place and
// returns the rollback snapshot. A proposal that would violate the
// k-Dollo caps, the deletion budget, acyclicity or monoclonality is
// discarded and another is drawn, up to proposalTries per step.
func (a *annealer) propose(cur *tree.Tree) (moveKind, *tree.Tree, rateSnapshot, bool) {
	var (
		w     [numMoveKinds]float64
		total float64
	)

	// Zero out structurally impossible kinds before drawing.
	if cur.Len() >= 3 {
		w[moveRelocate] = a.schedule.Moves.Relocate
	}
	if a.k > 0 && a.maxDeletions > 0 && cur.Mutations() > 0 && cur.Losses() < a.maxDeletions {
		w[moveInsertLoss] = a.schedule.Moves.InsertLoss
	}
	if cur.Losses() > 0 {
		w[moveRemoveLoss] = a.schedule.Moves.RemoveLoss
	}
	if a.em.Learning() {
		w[movePerturbRates] = a.schedule.Moves.PerturbRates
	}
	for _, x := range w {
		total += x
	}
	if total == 0 {
		return 0, nil, rateSnapshot{}, false
	}

	var (
		kind moveKind
		cand *tree.Tree
	)
	for try := 0; try < proposalTries; try++ {
		kind = a.drawKind(w, total)

		switch kind {
		case movePerturbRates:
			return kind, nil, a.em.perturb(), true
		case moveRelocate:
			cand = a.proposeRelocate(cur)
		case moveInsertLoss:
			cand = a.proposeInsertLoss(cur)
		default:
			cand = a.proposeRemoveLoss(cur)
		}
		if cand != nil {
			return kind, cand, rateSnapshot{}, true
		}
	}

	return 0, nil, rateSnapshot{}, false
}

// drawKind samples a move kind proportionally to the masked weights.
func (a *annealer) drawKind(w [numMoveKinds]float64, total float64) moveKind {
	r := a.rng.Float64() * total
	for kind := moveRelocate; kind < numMoveKinds; kind++ {
		r -= w[kind]
		if r < 0 {
			return kind
		}
	}

	return movePerturbRates
}

// proposeRelocate prunes a random non-root subtree and regrafts it
// under a random node outside that subtree (and away from its current
// parent, which would be a no-op). Returns nil when no legal target
// exists or the relocation breaks a k-Dollo invariant — loss nodes
// inside the moved subtree may lose their gain ancestor, or losses of
// one mutation may stack past k on the new path.
func (a *annealer) proposeRelocate(cur *tree.Tree) *tree.Tree {
	ids := cur.DFS()
	if len(ids) < 3 {
		return nil
	}

	x := ids[1+a.rng.Intn(len(ids)-1)]
	xn, err := cur.Node(x)
	if err != nil {
		return nil
	}

	targets := make([]int, 0, len(ids))
	for _, id := range ids {
		if id == xn.Parent || cur.Descendant(x, id) {
			continue
		}
		if a.monoclonal && id == cur.Root() {
			continue
		}
		targets = append(targets, id)
	}
	if len(targets) == 0 {
		return nil
	}

	cand := cur.Clone()
	if err = cand.Reattach(x, targets[a.rng.Intn(len(targets))]); err != nil {
		return nil
	}
	if cand.Check(a.k, a.maxDeletions) != nil {
		return nil
	}

	return cand
}

// proposeInsertLoss appends a loss node for some mutation j under a
// random non-root node whose profile still carries j, provided the
// tree-wide loss count for j stays below k (the global budget was
// gated before the draw). Valid by construction: the gain is a strict
// ancestor and j is present just above the new node.
func (a *annealer) proposeInsertLoss(cur *tree.Tree) *tree.Tree {
	ids := cur.DFS()
	if len(ids) < 2 {
		return nil
	}

	p := ids[1+a.rng.Intn(len(ids)-1)]
	profile, err := cur.Profile(p)
	if err != nil {
		return nil
	}

	var (
		counts = cur.LossCounts()
		js     = make([]int, 0, len(profile))
	)
	for j, present := range profile {
		if present && counts[j] < a.k {
			js = append(js, j)
		}
	}
	if len(js) == 0 {
		return nil
	}
	j := js[a.rng.Intn(len(js))]

	cand := cur.Clone()
	if _, err = cand.AddChild(p, j, true, a.labels[j]+"-"); err != nil {
		return nil
	}

	return cand
}

// proposeRemoveLoss deletes a random loss node, splicing its children
// onto its parent. Removing a loss can only restore presence, so the
// result is always valid.
func (a *annealer) proposeRemoveLoss(cur *tree.Tree) *tree.Tree {
	var losses []int
	for _, id := range cur.DFS() {
		if n, err := cur.Node(id); err == nil && n.Loss {
			losses = append(losses, id)
		}
	}
	if len(losses) == 0 {
		return nil
	}

	cand := cur.Clone()
	if err := cand.Remove(losses[a.rng.Intn(len(losses))]); err != nil {
		return nil
	}

	return cand
}
