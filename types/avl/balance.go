package avl

// updateBFOnIncrease applies delta to the balance factor of the node after
// one of its subtrees has grown, and walks up while the node's own height
// grows too. Ancestors of a node that needs rotation are told to skip their
// own rebalancing: the rotation below restores their height afterwards.
func (t *Tree[K]) updateBFOnIncrease(id NodeID, delta int, suppress bool) {
	n := t.alloc.get(id)
	n.bf += delta
	bf := n.bf

	if bf != 0 && sign(bf) == sign(delta) {
		// Subtree height increased
		if parent := n.parent; parent.Valid() {
			t.updateBFOnIncrease(parent, t.childPlace(parent, id), suppress || abs(bf) > balanceLimit)
		}
	}
	if abs(bf) > balanceLimit && !suppress {
		t.rebalance(id)
	}
}

// updateBFOnDecrease applies delta to the balance factor of the node after
// one of its subtrees has shrunk, and walks up while the node's own height
// shrinks too.
func (t *Tree[K]) updateBFOnDecrease(id NodeID, delta int, suppress bool) {
	n := t.alloc.get(id)
	n.bf += delta
	bf := n.bf

	if bf == 0 || sign(bf) != sign(delta) {
		// Subtree height decreased
		if parent := n.parent; parent.Valid() {
			t.updateBFOnDecrease(parent, -t.childPlace(parent, id), suppress || abs(bf) > balanceLimit)
		}
	}
	if abs(bf) > balanceLimit && !suppress {
		t.rebalance(id)
	}
}

// updateBFOnHeightChange reports a height change of the subtree rooted at
// child to its parent.
func (t *Tree[K]) updateBFOnHeightChange(parent, child NodeID, change int) {
	if !parent.Valid() || change == 0 {
		return
	}
	place := t.childPlace(parent, child)
	if change > 0 {
		t.updateBFOnIncrease(parent, place, false)
	} else {
		t.updateBFOnDecrease(parent, -place, false)
	}
}
