// Package plastic infers tumor phylogenies from single-cell mutation
// profiles under the k-Dollo evolutionary model: every mutation is
// gained exactly once and may be lost up to k times, with an optional
// tree-wide cap on the number of losses.
//
// 🚀 What does plastic do?
//
//	Given a ternary N×M genotype matrix (cells × mutations, with 0/1
//	observations and 2 for missing data) and the sequencing error
//	rates of the experiment, it searches mutation-tree space by
//	simulated annealing and returns:
//		• the best-scoring mutation tree (gains and losses),
//		• the maximum-likelihood attachment of every cell,
//		• the error-corrected expected genotype matrix,
//		• the learned error rates, when error learning is enabled.
//
// ✨ Why choose plastic?
//
//   - Deterministic – every run is reproducible from a single seed
//   - Honest scoring – the likelihood model mirrors false negatives,
//     false positives and loss priors explicitly
//   - Parallel where it pays – the per-cell scan fans out over a
//     bounded worker pool; everything else stays single-threaded
//
// Everything is organized under three subpackages:
//
//	genotype/ — the ternary observation matrix and its accessors
//	tree/     — arena-backed mutation trees: edits, profiles, k-Dollo checks
//	sasc/     — scoring, the annealing engine and the Infer entry point
//
// Quick ASCII example:
//
//	    germline
//	       │
//	       a          a gained first
//	      ┌┴┐
//	      b c         b and c arise in separate clones
//	      │
//	      a-          a lost again below b (k ≥ 1)
//
// See examples/ for a complete end-to-end run.
//
//	go get github.com/plastic-phy/plastic
package plastic
