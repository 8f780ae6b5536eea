// Package sasc: random initial topology per repetition.
package sasc

import (
	"math/rand"

	"github.com/plastic-phy/plastic/tree"
)

// randomTree builds the initial tree of one repetition: the M mutation
// columns, shuffled, inserted as gain nodes in pairs so every node in
// creation order receives up to two children. The result is a balanced
// random binary topology under the germline, the construction SASC
// uses. With the monoclonal constraint the first
// shuffled mutation becomes the single founding clone and the pairwise
// fill starts beneath it, keeping the root at exactly one child.
//
// Loss nodes are never inserted here; the annealer introduces them
// within the k-Dollo and deletion-budget caps.
//
// Complexity: O(M).
func randomTree(m int, labels []string, monoclonal bool, rng *rand.Rand) (*tree.Tree, error) {
	t, err := tree.New(m)
	if err != nil {
		return nil, err
	}
	if m == 0 {
		return t, nil
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	shuffleInts(order, rng)

	// created lists node ids in creation order; created[next] is the
	// parent currently being filled with (up to) two children.
	created := make([]int, 0, m+1)
	created = append(created, t.Root())

	next := 0
	i := 0
	if monoclonal {
		clone, aerr := t.AddChild(t.Root(), order[0], false, labels[order[0]])
		if aerr != nil {
			return nil, aerr
		}
		created = append(created, clone)
		next = 1
		i = 1
	}

	var id int
	for i < m {
		if id, err = t.AddChild(created[next], order[i], false, labels[order[i]]); err != nil {
			return nil, err
		}
		created = append(created, id)
		i++

		if i < m {
			if id, err = t.AddChild(created[next], order[i], false, labels[order[i]]); err != nil {
				return nil, err
			}
			created = append(created, id)
			i++
		}
		next++
	}

	return t, nil
}
