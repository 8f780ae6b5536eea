// Package tree: genotype-profile folding and k-Dollo auditing.
package tree

// Profile folds the gain/loss events along the root-to-node path into
// the node's genotype vector over all M mutations: default absent, a
// gain sets present, a later loss on the same path sets absent again.
// The result is a pure function of the path.
//
// Complexity: O(depth + M).
func (t *Tree) Profile(id int) ([]bool, error) {
	if _, err := t.Node(id); err != nil {
		return nil, err
	}

	// Collect the path root→id by following parent links, then fold it
	// in root-first order so losses override earlier gains.
	path := make([]int, 0, 16)
	cur := id
	for cur != none {
		path = append(path, cur)
		cur = t.nodes[cur].Parent
	}

	out := make([]bool, t.m)
	var (
		i int
		n *Node
	)
	for i = len(path) - 1; i >= 0; i-- {
		n = t.nodes[path[i]]
		if n.Mutation == Germline {
			continue
		}
		out[n.Mutation] = !n.Loss
	}

	return out, nil
}

// Losses returns the total number of loss nodes in the tree.
//
// Complexity: O(nodes).
func (t *Tree) Losses() int {
	total := 0
	var n *Node
	for _, n = range t.nodes {
		if n != nil && n.Loss {
			total++
		}
	}

	return total
}

// LossCounts returns the tree-wide loss-node count per mutation.
//
// Complexity: O(nodes + M).
func (t *Tree) LossCounts() []int {
	out := make([]int, t.m)
	var n *Node
	for _, n = range t.nodes {
		if n != nil && n.Loss {
			out[n.Mutation]++
		}
	}

	return out
}

// Check audits the whole tree against the k-Dollo constraints:
//
//   - every loss node's mutation is present just above it (the gain is
//     a strict ancestor and not already lost on that path),
//   - no root-to-node path carries more than k loss nodes for any one
//     mutation,
//   - the tree-wide loss count stays within maxDeletions (negative
//     maxDeletions means unbounded).
//
// The first violated rule is reported as its sentinel error.
//
// Complexity: O(nodes · 1) walk with O(M) state.
func (t *Tree) Check(k int, maxDeletions int) error {
	if maxDeletions >= 0 && t.Losses() > maxDeletions {
		return ErrDeletionBudget
	}

	state := make([]bool, t.m)   // folded present/absent along the current path
	perPath := make([]int, t.m)  // loss count per mutation along the current path

	return t.checkWalk(t.root, k, state, perPath)
}

// checkWalk verifies the subtree under id, mutating and restoring the
// shared path state on the way down and back up.
func (t *Tree) checkWalk(id, k int, state []bool, perPath []int) error {
	n := t.nodes[id]

	var prev bool
	if n.Mutation != Germline {
		if n.Loss {
			if !state[n.Mutation] {
				return ErrLossBeforeGain
			}
			perPath[n.Mutation]++
			if perPath[n.Mutation] > k {
				return ErrTooManyLosses
			}
		}
		prev = state[n.Mutation]
		state[n.Mutation] = !n.Loss
	}

	var c int
	for _, c = range n.Children {
		if err := t.checkWalk(c, k, state, perPath); err != nil {
			return err
		}
	}

	// Backtrack path state.
	if n.Mutation != Germline {
		state[n.Mutation] = prev
		if n.Loss {
			perPath[n.Mutation]--
		}
	}

	return nil
}
