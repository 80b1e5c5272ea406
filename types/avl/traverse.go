package avl

// Traverse visits every node of the tree in pre-order: the node itself,
// then its left branch, and then its right branch. Extra args are passed to
// every call of visit. Visit must not modify the tree.
func (t *Tree[K]) Traverse(visit func(node Node[K], args ...any), args ...any) error {
	if visit == nil {
		return ErrorTreeInvalidCallback
	}
	if !t.root.Valid() {
		return nil
	}
	t.traverse(t.root, visit, args)
	return nil
}

func (t *Tree[K]) traverse(id NodeID, visit func(node Node[K], args ...any), args []any) {
	visit(t.node(id), args...)
	if left := t.alloc.get(id).left; left.Valid() {
		t.traverse(left, visit, args)
	}
	if right := t.alloc.get(id).right; right.Valid() {
		t.traverse(right, visit, args)
	}
}

// IteratePreOrder will iterate all keys in this tree by first visiting each
// node's key, followed by the its left branch, and then its right branch.
// Iteration stops once f returns true.
//
// This is useful when copying binary search trees, as inserting back in this
// order will guarantee the clone will have the exact same layout.
func (t *Tree[K]) IteratePreOrder(f func(key K) bool) {
	t.iteratePreOrder(t.root, f)
}

// IterateInOrder will iterate all keys in this tree by first visiting each
// node's left branch, followed by the its own key, and then its right branch.
// Iteration stops once f returns true.
//
// This is useful when reading a tree's keys in order, as this guarantees
// iterating them in a sorted order.
func (t *Tree[K]) IterateInOrder(f func(key K) bool) {
	t.iterateInOrder(t.root, f)
}

// IteratePostOrder will iterate all keys in this tree by first visiting each
// node's left branch, followed by the its right branch, and then its own key.
// Iteration stops once f returns true.
//
// This is useful when deleting keys from a tree, as this guarantees to always
// delete leaf nodes.
func (t *Tree[K]) IteratePostOrder(f func(key K) bool) {
	t.iteratePostOrder(t.root, f)
}

func (t *Tree[K]) iteratePreOrder(id NodeID, f func(key K) bool) bool {
	if !id.Valid() {
		return false
	}
	n := t.alloc.get(id)
	if f(n.key) {
		return true
	}
	return t.iteratePreOrder(n.left, f) || t.iteratePreOrder(n.right, f)
}

func (t *Tree[K]) iterateInOrder(id NodeID, f func(key K) bool) bool {
	if !id.Valid() {
		return false
	}
	n := t.alloc.get(id)
	if t.iterateInOrder(n.left, f) {
		return true
	}
	if f(n.key) {
		return true
	}
	return t.iterateInOrder(n.right, f)
}

func (t *Tree[K]) iteratePostOrder(id NodeID, f func(key K) bool) bool {
	if !id.Valid() {
		return false
	}
	n := t.alloc.get(id)
	if t.iteratePostOrder(n.left, f) || t.iteratePostOrder(n.right, f) {
		return true
	}
	return f(n.key)
}
