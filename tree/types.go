// Package tree: node and tree types, sentinel errors, constructor.
package tree

import "errors"

// Sentinel errors for tree operations.
var (
	// ErrNegativeMutations indicates a negative mutation-column count.
	ErrNegativeMutations = errors.New("tree: mutation count must be >= 0")

	// ErrNodeNotFound indicates an id that is not a live node of this tree.
	ErrNodeNotFound = errors.New("tree: node not found")

	// ErrMutationOutOfRange indicates a mutation index outside [0, M).
	ErrMutationOutOfRange = errors.New("tree: mutation index out of range")

	// ErrRootImmovable indicates an attempt to reattach or remove the germline root.
	ErrRootImmovable = errors.New("tree: germline root cannot be moved or removed")

	// ErrWouldCycle indicates a reattachment target inside the moved subtree.
	ErrWouldCycle = errors.New("tree: reattachment would create a cycle")

	// ErrLossBeforeGain indicates a loss event with no gained ancestor state.
	ErrLossBeforeGain = errors.New("tree: mutation lost before it was gained")

	// ErrTooManyLosses indicates a per-mutation loss count above k.
	ErrTooManyLosses = errors.New("tree: per-mutation loss count exceeds k")

	// ErrDeletionBudget indicates a global loss count above max_deletions.
	ErrDeletionBudget = errors.New("tree: total loss count exceeds deletion budget")
)

// Germline is the sentinel mutation index carried by the root node.
const Germline = -1

// none marks an absent parent link.
const none = -1

// Node is one gain or loss event in the mutation tree.
//
// ID is unique within the owning tree, assigned at creation and never
// reused. Mutation is the matrix column the node represents, or
// Germline for the root. Loss marks the node as a loss event rather
// than a gain. Children order is the append order, giving every
// traversal a deterministic depth-first sequence.
type Node struct {
	ID       int
	Mutation int
	Loss     bool
	Label    string
	Parent   int
	Children []int
}

// Tree is an arena-backed rooted mutation tree.
// nodes is indexed by id; removed slots stay nil so ids are stable.
type Tree struct {
	nodes []*Node
	root  int
	m     int // number of mutation columns the profiles span
	alive int
}

// New creates a tree holding only the germline root for a model of
// the given mutation-column count.
//
// Complexity: O(1).
func New(mutations int) (*Tree, error) {
	if mutations < 0 {
		return nil, ErrNegativeMutations
	}

	root := &Node{ID: 0, Mutation: Germline, Label: "germline", Parent: none}

	return &Tree{nodes: []*Node{root}, root: 0, m: mutations, alive: 1}, nil
}

// Root returns the id of the germline root.
func (t *Tree) Root() int { return t.root }

// Mutations returns the number of mutation columns profiles span.
func (t *Tree) Mutations() int { return t.m }

// Len returns the number of live nodes, root included.
func (t *Tree) Len() int { return t.alive }

// Node returns the live node with the given id.
//
// The returned pointer aliases tree storage; callers outside this
// module must treat it as read-only and use the structural methods
// for edits.
func (t *Tree) Node(id int) (*Node, error) {
	if id < 0 || id >= len(t.nodes) || t.nodes[id] == nil {
		return nil, ErrNodeNotFound
	}

	return t.nodes[id], nil
}
