package avl

// Direction is an enumeration of tree rotation directions.
type Direction uint8

const (
	// DirectionClockwise lifts a left child above its parent.
	DirectionClockwise Direction = iota + 1
	// DirectionCounterClockwise lifts a right child above its parent.
	DirectionCounterClockwise
)

func (d Direction) String() string {
	switch d {
	case DirectionClockwise:
		return "cw"
	case DirectionCounterClockwise:
		return "ccw"
	default:
		return "unknown"
	}
}

// Rotate rotates the node with given id around its parent.
// On a self-balancing tree a manual rotation may leave nodes with balance
// factor outside of [-1, 1]. Any later mutation of such a tree, including
// Rotate itself, may panic with ErrorTreeBalanceInconsistency and leave the
// tree partially rotated.
func (t *Tree[K]) Rotate(id NodeID, direction Direction) error {
	if !t.alloc.alive(id) {
		return ErrorTreeNodeNotFound
	}
	switch direction {
	case DirectionClockwise:
		return t.rotateCW(id)
	case DirectionCounterClockwise:
		return t.rotateCCW(id)
	default:
		return ErrorTreeInvalidRotation
	}
}

// rotateCW lifts pivot (left child of its parent) one level up.
//
//	     GRAND                 GRAND
//	       |                     |
//	     PARENT                PIVOT
//	     /    \                /   \
//	 PIVOT     C      =>      A    PARENT
//	 /   \                         /    \
//	A     B                       B      C
func (t *Tree[K]) rotateCW(pivot NodeID) error {
	parent := t.alloc.get(pivot).parent
	if !parent.Valid() || t.alloc.get(parent).left != pivot {
		return ErrorTreeInvalidRotation
	}
	grand := t.alloc.get(parent).parent
	oldBF := t.alloc.get(parent).bf

	// Connect B to PARENT
	b := t.alloc.get(pivot).right
	t.alloc.get(parent).left = b
	if b.Valid() {
		t.alloc.get(b).parent = parent
	}
	// Connect PARENT to PIVOT
	t.alloc.get(pivot).right = parent
	t.alloc.get(parent).parent = pivot
	// Connect PIVOT to GRAND
	t.replaceChild(grand, pivot)

	// PARENT lost PIVOT on the left, and A with it if A was the taller side
	p, x := t.alloc.get(parent), t.alloc.get(pivot)
	p.bf = oldBF - 1
	if x.bf > 0 {
		p.bf -= x.bf
	}
	// PIVOT gained PARENT on the right, C defines its height if C is taller than B
	x.bf--
	if p.bf < 0 {
		x.bf += p.bf
	}
	change := 1 + max(p.bf, 0) + max(x.bf, 0) - max(oldBF, 0)

	t.handler.OnRotate(pivot, DirectionClockwise)
	t.updateBFOnHeightChange(grand, pivot, change)
	return nil
}

// rotateCCW lifts pivot (right child of its parent) one level up.
//
//	 GRAND                   GRAND
//	   |                       |
//	 PARENT                  PIVOT
//	 /    \                  /   \
//	C    PIVOT      =>   PARENT   A
//	     /   \           /    \
//	    B     A         C      B
func (t *Tree[K]) rotateCCW(pivot NodeID) error {
	parent := t.alloc.get(pivot).parent
	if !parent.Valid() || t.alloc.get(parent).right != pivot {
		return ErrorTreeInvalidRotation
	}
	grand := t.alloc.get(parent).parent
	oldBF := t.alloc.get(parent).bf

	// Connect B to PARENT
	b := t.alloc.get(pivot).left
	t.alloc.get(parent).right = b
	if b.Valid() {
		t.alloc.get(b).parent = parent
	}
	// Connect PARENT to PIVOT
	t.alloc.get(pivot).left = parent
	t.alloc.get(parent).parent = pivot
	// Connect PIVOT to GRAND
	t.replaceChild(grand, pivot)

	// PARENT lost PIVOT on the right, and A with it if A was the taller side
	p, x := t.alloc.get(parent), t.alloc.get(pivot)
	p.bf = oldBF + 1
	if x.bf < 0 {
		p.bf -= x.bf
	}
	// PIVOT gained PARENT on the left, C defines its height if C is taller than B
	x.bf++
	if p.bf > 0 {
		x.bf += p.bf
	}
	change := 1 + max(-p.bf, 0) + max(-x.bf, 0) - max(-oldBF, 0)

	t.handler.OnRotate(pivot, DirectionCounterClockwise)
	t.updateBFOnHeightChange(grand, pivot, change)
	return nil
}

// replaceChild puts child to the slot its former parent held under grand,
// or makes it the root.
func (t *Tree[K]) replaceChild(grand, child NodeID) {
	if !grand.Valid() {
		t.alloc.get(child).parent = 0
		t.root = child
		return
	}
	t.connectToParent(child, grand)
}
