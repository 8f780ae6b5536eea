// Package sasc infers a cell-lineage tree (a mutation phylogeny) from
// a noisy, partially observed binary mutation matrix produced by
// single-cell sequencing.
//
// The engine searches the space of mutation trees under a k-Dollo
// evolutionary model — each mutation is gained exactly once but may be
// independently lost up to k times in different lineages — using
// simulated annealing scored by a probabilistic model of sequencing
// error (per-mutation false-negative rates α, one false-positive rate
// β, per-mutation loss priors γ).
//
// Pipeline, per repetition:
//
//  1. Build a random valid initial tree (shuffled mutations inserted
//     pairwise under the germline; a single founding clone when the
//     monoclonal constraint is set).
//  2. Score it: every cell independently attaches to the tree node
//     whose genotype profile maximizes the cell's log-likelihood, and
//     the per-cell maxima (plus the loss prior) sum to the tree score.
//     The per-cell scan is parallelized across a bounded worker group.
//  3. Anneal: propose one random move — relocate a subtree, insert a
//     loss node, remove a loss node, or (when error learning is
//     enabled) perturb an error parameter — re-score, and accept by
//     the Metropolis criterion under the current temperature. Moves
//     that would violate the k-Dollo caps, the global deletion budget,
//     acyclicity, or monoclonality are discarded before scoring.
//     Temperature decays geometrically until it reaches the floor.
//  4. Keep the best tree, score, and error-parameter snapshot seen
//     during the run; they are deep copies, so the working tree may
//     keep mutating.
//
// Infer runs the annealing process `repetitions` times from
// independent random restarts (independent RNG substreams, error
// parameters re-seeded from the supplied priors) and retains the
// single best-scoring result, which is re-scored once more to produce
// the per-cell attachment σ, the expected genotype matrix, and the
// learned error rates.
//
// Determinism: all randomness flows from one seed (seed 0 selects a
// fixed default stream), with per-repetition SplitMix64 substreams, so
// runs are reproducible. Byte-level reproduction of any particular
// generator is out of scope.
//
// Input validation (probability ranges, vector lengths, integrality)
// is the host's responsibility; this package only guards the cheap
// structural contracts and treats deeper violations as programmer
// error. Degenerate inputs (no cells, no mutations) return an empty
// but well-formed result rather than failing.
package sasc
