package avl

//go:generate mockgen -destination=mocks/handler.go -package=mockavl . Handler
type Handler interface {

	// Node handlers
	// NOTE: OnInsert is called after the node is linked but BEFORE balance factors are updated.
	// Nodes restored from a snapshot are reported once the whole snapshot is linked.
	OnInsert(id NodeID)
	// NOTE: OnDelete is called right before the node slot is released.
	// Clear and successful FromList/FromListRaw report every replaced node.
	OnDelete(id NodeID)

	// Balancing handlers
	OnRotate(pivot NodeID, direction Direction)
	// NOTE: OnRebalance is called BEFORE rotations restoring the balance.
	OnRebalance(id NodeID, bf int)
}

// nopHandler is used when no handler is installed.
type nopHandler struct{}

func (nopHandler) OnInsert(NodeID)            {}
func (nopHandler) OnDelete(NodeID)            {}
func (nopHandler) OnRotate(NodeID, Direction) {}
func (nopHandler) OnRebalance(NodeID, int)    {}
