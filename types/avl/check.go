package avl

import "fmt"

// Check verifies structure of the whole tree: parent links, binary search
// tree order, balance factors matching subtree heights, node count and, for
// the self-balancing variant, balance factors within [-1, 1].
// It returns error wrapping ErrorTreeInconsistent on the first violation.
func (t *Tree[K]) Check() error {
	if !t.root.Valid() {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrorTreeInconsistent, t.size)
		}
		return nil
	}
	if parent := t.alloc.get(t.root).parent; parent.Valid() {
		return fmt.Errorf("%w: root has parent %d", ErrorTreeInconsistent, parent)
	}
	count, _, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrorTreeInconsistent, count, t.size)
	}
	return nil
}

// check verifies the subtree and returns its node count and height.
func (t *Tree[K]) check(id NodeID, lower, upper *K) (int, int, error) {
	if !t.alloc.alive(id) {
		return 0, 0, fmt.Errorf("%w: link to released node %d", ErrorTreeInconsistent, id)
	}
	n := t.alloc.get(id)
	if lower != nil && t.compare(n.key, *lower) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v is not greater than %v", ErrorTreeInconsistent, n.key, *lower)
	}
	if upper != nil && t.compare(n.key, *upper) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v is not less than %v", ErrorTreeInconsistent, n.key, *upper)
	}

	count := 1
	var leftHeight, rightHeight int
	if n.left.Valid() {
		if t.alloc.alive(n.left) && t.alloc.get(n.left).parent != id {
			return 0, 0, fmt.Errorf("%w: left child of %v has wrong parent", ErrorTreeInconsistent, n.key)
		}
		c, h, err := t.check(n.left, lower, &n.key)
		if err != nil {
			return 0, 0, err
		}
		count, leftHeight = count+c, h
	}
	if n.right.Valid() {
		if t.alloc.alive(n.right) && t.alloc.get(n.right).parent != id {
			return 0, 0, fmt.Errorf("%w: right child of %v has wrong parent", ErrorTreeInconsistent, n.key)
		}
		c, h, err := t.check(n.right, &n.key, upper)
		if err != nil {
			return 0, 0, err
		}
		count, rightHeight = count+c, h
	}

	if bf := leftHeight - rightHeight; n.bf != bf {
		return 0, 0, fmt.Errorf("%w: key %v has balance factor %d, calculated %d", ErrorTreeInconsistent, n.key, n.bf, bf)
	}
	if t.variant == VariantSelfBalancing && abs(n.bf) > balanceLimit {
		return 0, 0, fmt.Errorf("%w: key %v is unbalanced with balance factor %d", ErrorTreeInconsistent, n.key, n.bf)
	}
	return count, 1 + max(leftHeight, rightHeight), nil
}
