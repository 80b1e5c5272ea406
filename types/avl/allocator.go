package avl

// NodeID addresses a node slot inside the arena of a tree.
// The zero NodeID is never allocated and marks an empty link.
type NodeID uint32

// Valid reports whether id refers to a node slot (it may still be released).
func (id NodeID) Valid() bool {
	return id != 0
}

// node is a single arena slot. Links are arena indices: parent is a
// non-owning back reference, left and right are owned by this slot.
type node[K comparable] struct {
	key    K
	parent NodeID
	left   NodeID
	right  NodeID
	bf     int
	used   bool
}

// allocator keeps tree nodes in a contiguous slice and recycles
// released slots through a free list.
type allocator[K comparable] struct {
	nodes []node[K]
	free  []NodeID
}

func newAllocator[K comparable](reserved int) allocator[K] {
	a := allocator[K]{
		nodes: make([]node[K], 1, reserved+1),
	}
	return a
}

// alloc returns a detached leaf holding key.
func (a *allocator[K]) alloc(key K) NodeID {
	var id NodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[K]{})
		id = NodeID(len(a.nodes) - 1)
	}
	a.nodes[id] = node[K]{key: key, used: true}
	return id
}

// release clears the slot and puts it back to the free list.
func (a *allocator[K]) release(id NodeID) {
	// Clean up released node to avoid holding the key
	a.nodes[id] = node[K]{}
	a.free = append(a.free, id)
}

// alive reports whether id refers to an allocated slot.
func (a *allocator[K]) alive(id NodeID) bool {
	return id.Valid() && int(id) < len(a.nodes) && a.nodes[id].used
}

// reset releases all nodes at once keeping the reserved capacity.
func (a *allocator[K]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:1]
	a.free = a.free[:0]
}

// get returns the slot for id. The caller guarantees id is alive.
func (a *allocator[K]) get(id NodeID) *node[K] {
	return &a.nodes[id]
}
