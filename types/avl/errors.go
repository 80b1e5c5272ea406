package avl

import (
	"errors"
)

var (
	ErrorTreeNodeDuplicate        = errors.New("tree node is duplicated")
	ErrorTreeNodeNotFound         = errors.New("tree node is not found")
	ErrorTreeInvalidRotation      = errors.New("tree node can't be rotated in this direction")
	ErrorTreeEmptyRemoval         = errors.New("can't remove the last tree node")
	ErrorTreeBalanceInconsistency = errors.New("unable to balance tree node")
	ErrorTreeInvalidCallback      = errors.New("tree traversal callback is nil")
	ErrorTreeInvalidSnapshot      = errors.New("tree snapshot is invalid")
	ErrorTreeInconsistent         = errors.New("tree is inconsistent")
	ErrorTreeInvalidVariant       = errors.New("tree variant is unknown")
)
