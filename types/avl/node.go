package avl

// Node is a handle to a single tree node. It stays bound to the same key
// while the tree is rotated and rebalanced, and becomes invalid once the
// node is released by deletion or Clear. FromList and FromListRaw replace
// the whole arena: handles taken before them keep reporting Valid while
// they refer to unrelated nodes of the new contents. A released slot is
// reused by later insertions, so a stale handle may end up referring to
// another node.
type Node[K comparable] struct {
	tree *Tree[K]
	id   NodeID
}

// ID returns arena index of the node.
func (n Node[K]) ID() NodeID {
	return n.id
}

// Valid reports whether the handle refers to a live node.
func (n Node[K]) Valid() bool {
	return n.tree != nil && n.tree.alloc.alive(n.id)
}

// Key returns key of the tree node.
func (n Node[K]) Key() K {
	if !n.Valid() {
		var empty K
		return empty
	}
	return n.tree.alloc.get(n.id).key
}

// BF returns the incrementally maintained balance factor of the node.
func (n Node[K]) BF() int {
	if !n.Valid() {
		return 0
	}
	return n.tree.alloc.get(n.id).bf
}

// Left returns left child of the node or an invalid handle.
func (n Node[K]) Left() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.node(n.tree.alloc.get(n.id).left)
}

// Right returns right child of the node or an invalid handle.
func (n Node[K]) Right() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.node(n.tree.alloc.get(n.id).right)
}

// Parent returns parent of the node or an invalid handle for the root.
func (n Node[K]) Parent() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.node(n.tree.alloc.get(n.id).parent)
}

// Leftmost returns the node with the lowest key in the subtree.
func (n Node[K]) Leftmost() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.node(n.tree.leftmost(n.id))
}

// Rightmost returns the node with the highest key in the subtree.
func (n Node[K]) Rightmost() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.node(n.tree.rightmost(n.id))
}

// Next returns the node with the next highest key or an invalid handle.
func (n Node[K]) Next() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	a := &n.tree.alloc
	if right := a.get(n.id).right; right.Valid() {
		return n.tree.node(n.tree.leftmost(right))
	}
	child, parent := n.id, a.get(n.id).parent
	for parent.Valid() && a.get(parent).right == child {
		child, parent = parent, a.get(parent).parent
	}
	return n.tree.node(parent)
}

// Prev returns the node with the next lowest key or an invalid handle.
func (n Node[K]) Prev() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	a := &n.tree.alloc
	if left := a.get(n.id).left; left.Valid() {
		return n.tree.node(n.tree.rightmost(left))
	}
	child, parent := n.id, a.get(n.id).parent
	for parent.Valid() && a.get(parent).left == child {
		child, parent = parent, a.get(parent).parent
	}
	return n.tree.node(parent)
}

// Depth returns the number of edges between the node and the root.
func (n Node[K]) Depth() int {
	if !n.Valid() {
		return 0
	}
	depth := 0
	for parent := n.tree.alloc.get(n.id).parent; parent.Valid(); parent = n.tree.alloc.get(parent).parent {
		depth++
	}
	return depth
}

// Height returns the height of the subtree rooted at the node, computed
// from scratch. A leaf has height 1.
func (n Node[K]) Height() int {
	if !n.Valid() {
		return 0
	}
	return n.tree.height(n.id)
}

// CalcBF computes the balance factor of the node from subtree heights.
func (n Node[K]) CalcBF() int {
	if !n.Valid() {
		return 0
	}
	return n.tree.calcBF(n.id)
}

// Search looks for key in the subtree rooted at the node.
func (n Node[K]) Search(key K) (Node[K], error) {
	if !n.Valid() {
		return Node[K]{}, ErrorTreeNodeNotFound
	}
	found := n.tree.search(n.id, key)
	if n.tree.compare(n.tree.alloc.get(found).key, key) != 0 {
		return Node[K]{}, ErrorTreeNodeNotFound
	}
	return n.tree.node(found), nil
}

// RotateCW rotates the node clockwise around its parent. The node must be
// the left child of its parent.
func (n Node[K]) RotateCW() error {
	if !n.Valid() {
		return ErrorTreeNodeNotFound
	}
	return n.tree.rotateCW(n.id)
}

// RotateCCW rotates the node counter-clockwise around its parent. The node
// must be the right child of its parent.
func (n Node[K]) RotateCCW() error {
	if !n.Valid() {
		return ErrorTreeNodeNotFound
	}
	return n.tree.rotateCCW(n.id)
}

// ToList returns the subtree rooted at the node as nested triples.
func (n Node[K]) ToList() *Triple[K] {
	if !n.Valid() {
		return nil
	}
	return n.tree.toList(n.id)
}

// Traverse visits the subtree rooted at the node in pre-order.
func (n Node[K]) Traverse(visit func(node Node[K], args ...any), args ...any) error {
	if visit == nil {
		return ErrorTreeInvalidCallback
	}
	if !n.Valid() {
		return nil
	}
	n.tree.traverse(n.id, visit, args)
	return nil
}

////////////////////////////////////////////////////////////////
// Node primitives
////////////////////////////////////////////////////////////////

// node wraps id into a handle, empty links give an invalid handle.
func (t *Tree[K]) node(id NodeID) Node[K] {
	if !id.Valid() {
		return Node[K]{}
	}
	return Node[K]{tree: t, id: id}
}

// search descends from the given node and returns the node holding key,
// or the last visited node (the parent for a new leaf with key).
func (t *Tree[K]) search(from NodeID, key K) NodeID {
	current := from
	for {
		n := t.alloc.get(current)
		cmp := t.compare(key, n.key)
		switch {
		case cmp < 0 && n.left.Valid():
			current = n.left
		case cmp > 0 && n.right.Valid():
			current = n.right
		default:
			return current
		}
	}
}

// childPlace returns +1 if child belongs to the left subtree of parent,
// -1 if it belongs to the right one and 0 for equal keys.
func (t *Tree[K]) childPlace(parent, child NodeID) int {
	return sign(t.compare(t.alloc.get(parent).key, t.alloc.get(child).key))
}

// connect attaches child to the side of parent its key belongs to,
// overwriting the previous occupant of that slot.
func (t *Tree[K]) connect(parent, child NodeID) int {
	place := t.childPlace(parent, child)
	if place > 0 {
		t.alloc.get(parent).left = child
	} else {
		t.alloc.get(parent).right = child
	}
	return place
}

// connectToParent links child and parent in both directions.
func (t *Tree[K]) connectToParent(child, parent NodeID) int {
	t.alloc.get(child).parent = parent
	return t.connect(parent, child)
}

// disconnect clears the slot of parent holding child.
func (t *Tree[K]) disconnect(parent, child NodeID) {
	p := t.alloc.get(parent)
	switch child {
	case p.left:
		p.left = 0
	case p.right:
		p.right = 0
	}
}

func (t *Tree[K]) leftmost(id NodeID) NodeID {
	for left := t.alloc.get(id).left; left.Valid(); left = t.alloc.get(id).left {
		id = left
	}
	return id
}

func (t *Tree[K]) rightmost(id NodeID) NodeID {
	for right := t.alloc.get(id).right; right.Valid(); right = t.alloc.get(id).right {
		id = right
	}
	return id
}

func (t *Tree[K]) height(id NodeID) int {
	if !id.Valid() {
		return 0
	}
	n := t.alloc.get(id)
	return 1 + max(t.height(n.left), t.height(n.right))
}

func (t *Tree[K]) calcBF(id NodeID) int {
	n := t.alloc.get(id)
	return t.height(n.left) - t.height(n.right)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
