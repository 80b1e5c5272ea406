package avl

import "fmt"

// Variant is an enumeration of tree balancing behaviours.
type Variant uint8

const (
	// VariantSelfBalancing keeps balance factor of every node within [-1, 1]
	// by rotating after insertion and deletion.
	VariantSelfBalancing Variant = iota + 1
	// VariantUnbalanced maintains balance factors but never rotates on its own.
	VariantUnbalanced
)

func (v Variant) String() string {
	switch v {
	case VariantSelfBalancing:
		return "avl"
	case VariantUnbalanced:
		return "plain"
	default:
		return "unknown"
	}
}

// ParseVariant returns variant by its name as printed by Variant.String.
func ParseVariant(name string) (Variant, error) {
	for _, v := range []Variant{VariantSelfBalancing, VariantUnbalanced} {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrorTreeInvalidVariant, name)
}

// rebalance restores balance of the node whose balance factor reached 2 or -2.
func (t *Tree[K]) rebalance(id NodeID) {
	if t.variant != VariantSelfBalancing {
		return
	}
	n := t.alloc.get(id)
	bf := n.bf
	t.handler.OnRebalance(id, bf)

	switch bf {
	case 2:
		left := n.left
		if t.alloc.get(left).bf >= 0 {
			// Left-left case
			t.mustRotate(t.rotateCW(left))
		} else {
			// Left-right case
			t.mustRotate(t.rotateCCW(t.alloc.get(left).right))
			t.mustRotate(t.rotateCW(t.alloc.get(id).left))
		}
	case -2:
		right := n.right
		if t.alloc.get(right).bf <= 0 {
			// Right-right case
			t.mustRotate(t.rotateCCW(right))
		} else {
			// Right-left case
			t.mustRotate(t.rotateCW(t.alloc.get(right).left))
			t.mustRotate(t.rotateCCW(t.alloc.get(id).right))
		}
	default:
		panic(fmt.Errorf("%w: node %d has balance factor %d", ErrorTreeBalanceInconsistency, id, bf))
	}
}

func (t *Tree[K]) mustRotate(err error) {
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrorTreeBalanceInconsistency, err))
	}
}
