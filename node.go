package arbor

// Node is implemented by every object tracked in an [Octree]. The octree
// does not own the object or its geometry; it only reads the bounding box,
// flags, and layer mask, and delegates exact ray intersection back to the
// object. Implementations must embed a [NodeBase], which supplies the
// octree's per-node bookkeeping.
type Node interface {
	// WorldBoundingBox returns the object's current bounds in world space.
	WorldBoundingBox() Box3

	// Flags reports the object's capability flags. A query matches only
	// when every flag it requests is set.
	Flags() NodeFlags

	// LayerMask reports the object's layer bits. A query matches when the
	// masks share at least one bit.
	LayerMask() uint32

	// OnRaycast performs the object's exact intersection test against ray,
	// appending zero or more hits closer than maxDistance to results.
	OnRaycast(ray Ray, maxDistance float32, results *[]RaycastResult)

	// base is provided by the embedded NodeBase.
	base() *nodeState
}

// NodeBase holds the octree's per-node bookkeeping: the back-reference to
// the octant currently containing the node and the pending-update flag.
// Embed it in every tracked type:
//
//	type Ship struct {
//		arbor.NodeBase
//		// ...
//	}
//
// All fields are written exclusively by the owning [Octree]; treat the
// accessors as read-only state.
type NodeBase struct {
	state nodeState
}

type nodeState struct {
	octant          *Octant
	queued          bool
	lastUpdateFrame uint16
	id              uint32
}

func (b *NodeBase) base() *nodeState {
	return &b.state
}

// Octant returns the octant currently containing the node, or nil while the
// node is not in a tree.
func (b *NodeBase) Octant() *Octant {
	return b.state.octant
}

// UpdateQueued reports whether a reinsertion is pending for the node.
func (b *NodeBase) UpdateQueued() bool {
	return b.state.queued
}

// LastUpdateFrame returns the frame number stamped when the node was last
// processed by [Octree.Update].
func (b *NodeBase) LastUpdateFrame() uint16 {
	return b.state.lastUpdateFrame
}

// nodeIDCounter is a plain counter (no atomic — the octree is
// single-threaded). IDs provide the stable sort order for octant node
// lists; 0 means not yet assigned.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}
