// Package tree: structural edit and traversal methods.
package tree

// AddChild appends a new gain or loss node for the given mutation
// under parent and returns its id. Ids grow monotonically; child order
// is append order.
//
// Errors: ErrNodeNotFound on a dead parent id, ErrMutationOutOfRange
// on a column outside [0, M).
//
// Complexity: O(1) amortized.
func (t *Tree) AddChild(parent, mutation int, loss bool, label string) (int, error) {
	p, err := t.Node(parent)
	if err != nil {
		return 0, err
	}
	if mutation < 0 || mutation >= t.m {
		return 0, ErrMutationOutOfRange
	}

	id := len(t.nodes)
	t.nodes = append(t.nodes, &Node{
		ID:       id,
		Mutation: mutation,
		Loss:     loss,
		Label:    label,
		Parent:   p.ID,
	})
	p.Children = append(p.Children, id)
	t.alive++

	return id, nil
}

// Reattach prunes the subtree rooted at id and regrafts it as the last
// child of newParent (prune-and-regraft).
//
// Errors:
//   - ErrRootImmovable when id is the germline root,
//   - ErrNodeNotFound on dead ids,
//   - ErrWouldCycle when newParent lies inside the moved subtree
//     (id itself included); the tree is left untouched.
//
// Complexity: O(subtree) for the cycle check, O(children) to splice.
func (t *Tree) Reattach(id, newParent int) error {
	if id == t.root {
		return ErrRootImmovable
	}
	n, err := t.Node(id)
	if err != nil {
		return err
	}
	np, err := t.Node(newParent)
	if err != nil {
		return err
	}
	if t.Descendant(id, newParent) {
		return ErrWouldCycle
	}

	t.detachChild(n.Parent, id)
	n.Parent = np.ID
	np.Children = append(np.Children, id)

	return nil
}

// Remove deletes the node with the given id, splicing its children
// onto its parent in the removed node's position so sibling order
// stays deterministic. The id is retired, never reused.
//
// Errors: ErrRootImmovable for the root, ErrNodeNotFound on dead ids.
//
// Complexity: O(children of parent + children of id).
func (t *Tree) Remove(id int) error {
	if id == t.root {
		return ErrRootImmovable
	}
	n, err := t.Node(id)
	if err != nil {
		return err
	}
	p := t.nodes[n.Parent]

	// Replace id in the parent's child list with id's children, in place.
	spliced := make([]int, 0, len(p.Children)+len(n.Children)-1)
	var c int
	for _, c = range p.Children {
		if c == id {
			spliced = append(spliced, n.Children...)

			continue
		}
		spliced = append(spliced, c)
	}
	p.Children = spliced

	for _, c = range n.Children {
		t.nodes[c].Parent = p.ID
	}

	t.nodes[id] = nil
	t.alive--

	return nil
}

// Descendant reports whether id lies in the subtree rooted at anc,
// anc itself included. Dead ids are never descendants.
//
// Complexity: O(depth of id).
func (t *Tree) Descendant(anc, id int) bool {
	if anc < 0 || anc >= len(t.nodes) || t.nodes[anc] == nil {
		return false
	}
	cur := id
	for cur != none {
		if cur < 0 || cur >= len(t.nodes) || t.nodes[cur] == nil {
			return false
		}
		if cur == anc {
			return true
		}
		cur = t.nodes[cur].Parent
	}

	return false
}

// Clone returns a deep, fully independent copy of the tree. Node ids
// are preserved, so attachments computed against the original remain
// meaningful on the copy.
//
// Complexity: O(nodes + links).
func (t *Tree) Clone() *Tree {
	cp := &Tree{
		nodes: make([]*Node, len(t.nodes)),
		root:  t.root,
		m:     t.m,
		alive: t.alive,
	}

	var (
		i int
		n *Node
	)
	for i, n = range t.nodes {
		if n == nil {
			continue
		}
		nn := *n
		nn.Children = append([]int(nil), n.Children...)
		cp.nodes[i] = &nn
	}

	return cp
}

// DFS returns the ids of all live nodes in deterministic depth-first
// preorder from the root.
//
// Complexity: O(nodes).
func (t *Tree) DFS() []int {
	out := make([]int, 0, t.alive)
	stack := []int{t.root}

	var (
		id int
		i  int
		ch []int
	)
	for len(stack) > 0 {
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, id)

		// Push children in reverse so the first child is visited first.
		ch = t.nodes[id].Children
		for i = len(ch) - 1; i >= 0; i-- {
			stack = append(stack, ch[i])
		}
	}

	return out
}

// detachChild removes id from parent's child list, preserving the
// order of the remaining siblings.
func (t *Tree) detachChild(parent, id int) {
	ch := t.nodes[parent].Children
	var i int
	for i = range ch {
		if ch[i] == id {
			t.nodes[parent].Children = append(ch[:i], ch[i+1:]...)

			return
		}
	}
}
