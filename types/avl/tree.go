package avl

import (
	"fmt"
	"slices"

	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) for comparable Go types,
// implemented as an AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing BST.
// This guarantees O(log n) operations on insertion, searching, and deletion.
// The unbalanced variant shares the same engine but never rotates on its own.
//
// Nodes are kept in an arena owned by the tree and addressed by NodeID.
// Tree is not safe for concurrent use.
type Tree[K comparable] struct {
	compare func(a, b K) int
	variant Variant
	handler Handler
	alloc   allocator[K]
	root    NodeID
	size    int
}

////////////////////////////////////////////////////////////////

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered]() *Tree[K] {
	return NewTree[K](typ.Compare[K])
}

// NewOrderedTreeWithVariant creates a new tree of given variant using a default
// comparator function for any ordered type.
func NewOrderedTreeWithVariant[K typ.Ordered](variant Variant) *Tree[K] {
	return NewTreeWithVariant[K](typ.Compare[K], variant)
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[K comparable](compare func(a, b K) int) *Tree[K] {
	return NewTreeWithVariant(compare, VariantSelfBalancing)
}

// NewTreeWithVariant creates a new tree of given variant using a comparator function.
// Zero variant means VariantSelfBalancing.
func NewTreeWithVariant[K comparable](compare func(a, b K) int, variant Variant) *Tree[K] {
	if variant == 0 {
		variant = VariantSelfBalancing
	}
	return &Tree[K]{
		compare: compare,
		variant: variant,
		handler: nopHandler{},
		alloc:   newAllocator[K](defaultReservedNodeSlots),
	}
}

// New creates a tree of given variant holding a single root node with given key.
func New[K typ.Ordered](key K, variant Variant) *Tree[K] {
	t := NewOrderedTreeWithVariant[K](variant)
	t.root = t.alloc.alloc(key)
	t.size = 1
	return t
}

// SetHandler installs handler notified about structural changes of the tree.
// Nil handler disables notifications.
func (t *Tree[K]) SetHandler(handler Handler) {
	if handler == nil {
		handler = nopHandler{}
	}
	t.handler = handler
}

// Variant returns balancing variant of the tree.
func (t *Tree[K]) Variant() Variant {
	return t.variant
}

////////////////////////////////////////////////////////////////

// Size returns the amount of nodes in the tree.
func (t *Tree[K]) Size() int {
	return t.size
}

// Height returns height of the tree, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	return t.height(t.root)
}

// Root returns root node of the tree or an invalid handle for an empty tree.
func (t *Tree[K]) Root() Node[K] {
	return t.node(t.root)
}

// Contains checks if node with given key exists in the tree by iterating the binary search tree.
func (t *Tree[K]) Contains(key K) bool {
	_, ok := t.find(key)
	return ok
}

// Search finds the node with given key in the tree by iterating the binary search tree.
func (t *Tree[K]) Search(key K) (Node[K], error) {
	id, ok := t.find(key)
	if !ok {
		return Node[K]{}, ErrorTreeNodeNotFound
	}
	return t.node(id), nil
}

// Leftmost returns the node with the lowest key.
func (t *Tree[K]) Leftmost() Node[K] {
	if !t.root.Valid() {
		return Node[K]{}
	}
	return t.node(t.leftmost(t.root))
}

// Rightmost returns the node with the highest key.
func (t *Tree[K]) Rightmost() Node[K] {
	if !t.root.Valid() {
		return Node[K]{}
	}
	return t.node(t.rightmost(t.root))
}

func (t *Tree[K]) find(key K) (NodeID, bool) {
	if !t.root.Valid() {
		return 0, false
	}
	id := t.search(t.root, key)
	return id, t.compare(t.alloc.get(id).key, key) == 0
}

////////////////////////////////////////////////////////////////

// Insert adds a node with given key to the tree.
// Duplicate keys are not allowed so error will be returned on duplicate.
func (t *Tree[K]) Insert(key K) (Node[K], error) {
	if !t.root.Valid() {
		t.root = t.alloc.alloc(key)
		t.size++
		t.handler.OnInsert(t.root)
		return t.node(t.root), nil
	}
	parent := t.search(t.root, key)
	if t.compare(t.alloc.get(parent).key, key) == 0 {
		return Node[K]{}, ErrorTreeNodeDuplicate
	}
	id := t.alloc.alloc(key)
	place := t.connectToParent(id, parent)
	t.size++
	t.handler.OnInsert(id)
	t.updateBFOnIncrease(parent, place, false)
	return t.node(id), nil
}

// Delete removes the node with given key from the tree.
// The last node of the tree can't be removed, use Clear instead.
func (t *Tree[K]) Delete(key K) error {
	id, ok := t.find(key)
	if !ok {
		return ErrorTreeNodeNotFound
	}
	return t.deleteNode(id)
}

// deleteNode unlinks the node. A node with two children and the root keep
// their slot: the closest key of a descendant is moved into them and the
// descendant is removed instead.
func (t *Tree[K]) deleteNode(id NodeID) error {
	n := t.alloc.get(id)
	if (n.left.Valid() && n.right.Valid()) || id == t.root {
		var successor NodeID
		switch {
		case n.left.Valid():
			successor = t.rightmost(n.left)
		case n.right.Valid():
			successor = t.leftmost(n.right)
		default:
			return ErrorTreeEmptyRemoval
		}
		key := t.alloc.get(successor).key
		if err := t.deleteNode(successor); err != nil {
			return err
		}
		t.alloc.get(id).key = key
		return nil
	}

	parent := n.parent
	child := n.left
	if !child.Valid() {
		child = n.right
	}
	place := t.childPlace(parent, id)
	if child.Valid() {
		t.connectToParent(child, parent)
	} else {
		t.disconnect(parent, id)
	}
	t.handler.OnDelete(id)
	t.alloc.release(id)
	t.size--
	t.updateBFOnDecrease(parent, -place, false)
	return nil
}

// Clear will reset this tree to an empty tree.
// All node handles of the tree become invalid.
// Handler is notified about every released node.
func (t *Tree[K]) Clear() {
	t.releaseAll()
	t.alloc.reset()
	t.root = 0
	t.size = 0
}

////////////////////////////////////////////////////////////////

// FromList replaces contents of the tree with keys inserted one by one in
// given order. On error the tree is left unmodified and handler receives no
// events. On success handler is notified about deletion of every replaced
// node and then about insertions, rotations and rebalances of the new ones.
func (t *Tree[K]) FromList(keys []K) error {
	if err := t.checkUnique(keys); err != nil {
		return err
	}
	t.releaseAll()
	fresh := t.fresh(len(keys))
	for _, key := range keys {
		if _, err := fresh.Insert(key); err != nil {
			return err
		}
	}
	*t = *fresh
	return nil
}

// FromListRaw replaces contents of the tree with the exact structure of given
// snapshot and recomputes balance factors from subtree heights. Snapshot must
// be a binary search tree, and for the self-balancing variant every node must
// be balanced. So a self-balancing tree left unbalanced by manual rotations
// can't be restored from its own ToList. On error the tree is left
// unmodified and handler receives no events. On success handler is notified
// about deletion of every replaced node and then about insertion of every
// snapshot node in pre-order.
func (t *Tree[K]) FromListRaw(snapshot *Triple[K]) error {
	fresh := t.fresh(defaultReservedNodeSlots)
	if snapshot != nil {
		root, _, err := fresh.buildRaw(snapshot, 0, nil, nil)
		if err != nil {
			return err
		}
		fresh.root = root
	}
	t.releaseAll()
	fresh.notifyInserted(fresh.root)
	*t = *fresh
	return nil
}

// checkUnique fails with ErrorTreeNodeDuplicate if keys contain equal items.
func (t *Tree[K]) checkUnique(keys []K) error {
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, t.compare)
	for i := 1; i < len(sorted); i++ {
		if t.compare(sorted[i-1], sorted[i]) == 0 {
			return fmt.Errorf("%w: key %v", ErrorTreeNodeDuplicate, sorted[i])
		}
	}
	return nil
}

// releaseAll notifies handler about every node of the tree in post-order.
// Slots themselves are left to the caller.
func (t *Tree[K]) releaseAll() {
	if _, ok := t.handler.(nopHandler); ok {
		return
	}
	t.notifyDeleted(t.root)
}

func (t *Tree[K]) notifyDeleted(id NodeID) {
	if !id.Valid() {
		return
	}
	n := t.alloc.get(id)
	t.notifyDeleted(n.left)
	t.notifyDeleted(n.right)
	t.handler.OnDelete(id)
}

func (t *Tree[K]) notifyInserted(id NodeID) {
	if !id.Valid() {
		return
	}
	n := t.alloc.get(id)
	t.handler.OnInsert(id)
	t.notifyInserted(n.left)
	t.notifyInserted(n.right)
}

func (t *Tree[K]) fresh(reserved int) *Tree[K] {
	return &Tree[K]{
		compare: t.compare,
		variant: t.variant,
		handler: t.handler,
		alloc:   newAllocator[K](reserved),
	}
}

// buildRaw creates the subtree described by s and returns its root and height.
// Keys of the subtree must lie strictly between lower and upper when given.
func (t *Tree[K]) buildRaw(s *Triple[K], parent NodeID, lower, upper *K) (NodeID, int, error) {
	if lower != nil && t.compare(s.Key, *lower) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v is not greater than %v", ErrorTreeInvalidSnapshot, s.Key, *lower)
	}
	if upper != nil && t.compare(s.Key, *upper) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v is not less than %v", ErrorTreeInvalidSnapshot, s.Key, *upper)
	}
	id := t.alloc.alloc(s.Key)
	t.alloc.get(id).parent = parent
	t.size++

	var left, right NodeID
	var leftHeight, rightHeight int
	var err error
	if s.Left != nil {
		if left, leftHeight, err = t.buildRaw(s.Left, id, lower, &s.Key); err != nil {
			return 0, 0, err
		}
	}
	if s.Right != nil {
		if right, rightHeight, err = t.buildRaw(s.Right, id, &s.Key, upper); err != nil {
			return 0, 0, err
		}
	}

	n := t.alloc.get(id)
	n.left, n.right = left, right
	n.bf = leftHeight - rightHeight
	if t.variant == VariantSelfBalancing && abs(n.bf) > balanceLimit {
		return 0, 0, fmt.Errorf("%w: key %v has balance factor %d", ErrorTreeInvalidSnapshot, s.Key, n.bf)
	}
	return id, 1 + max(leftHeight, rightHeight), nil
}
