package avl

const (
	// defaultReservedNodeSlots specifies initial capacity of the node arena of a new tree.
	defaultReservedNodeSlots = 64

	// balanceLimit is the largest balance factor magnitude a self-balancing tree keeps between operations.
	balanceLimit = 1
)
