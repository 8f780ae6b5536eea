// Package tree implements the mutation tree searched by the annealing
// engine: a rooted, ordered tree of gain and loss events over M
// mutation columns, with a distinguished germline root representing
// the unmutated ancestral state.
//
// Storage is an arena of nodes addressed by stable integer id
// (monotonically increasing, never reused). Parent and children links
// are ids, not pointers, which removes dangling-reference risk from
// prune-and-regraft edits and makes deep copies a plain slice copy.
//
// Structural operations:
//   - AddChild    — append a gain or loss node under a parent,
//   - Reattach    — prune a subtree and regraft it under a new parent
//     (rejected with ErrWouldCycle when the target lies inside the
//     moved subtree),
//   - Remove      — delete a node, splicing its children onto its
//     parent in place,
//   - Clone       — deep, fully independent copy preserving ids.
//
// Profile folds the gain/loss events along the root-to-node path into
// the node's present/absent genotype vector: default absent, a gain
// sets present, a subsequent loss on the same path sets absent again.
// It is a pure function of the path and independent of traversal order.
//
// The package enforces structure only (ids, links, acyclicity).
// Evolutionary-model constraints — the k-Dollo loss caps, the global
// deletion budget, monoclonality — are gated by the search layer, with
// Check available to audit a whole tree against them.
//
// Errors are strict sentinels; no operation leaves the tree corrupted
// after returning one.
package tree
