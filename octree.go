package arbor

import "sort"

// Octree is a dynamic spatial index over [Node] objects. Movement is cheap:
// objects call [Octree.QueueUpdate] whenever their bounds change and the
// queue is resolved in one batch per frame by [Octree.Update], so an object
// that moves several times between frames is reinserted once, at its final
// position. Queries ([Octree.Raycast], [Octree.RaycastSingle],
// [Octree.FindNodes], [Octree.FindNodesIn]) are read-only tree walks.
//
// The octree is single-threaded by design: all methods must be called from
// the owning goroutine, and results of a query issued concurrently with a
// mutation are undefined.
type Octree struct {
	root  Octant
	alloc allocator[Octant]

	// updateQueue holds nodes awaiting reinsertion. Cancelled entries are
	// tombstoned with nil instead of erased, so cancellation never shifts
	// indices that an in-progress drain may hold.
	updateQueue []Node

	// sortDirtyOctants lists octants whose node order must be restored
	// before the next traversal that depends on it.
	sortDirtyOctants []*Octant

	// Raycast scratch, reused across calls.
	initialRes []rayCandidate
	finalRes   []RaycastResult
}

// NewOctree creates an octree with the default extents
// ([-DefaultOctreeSize, DefaultOctreeSize] on every axis) and
// DefaultOctreeLevels subdivision levels. Use [Octree.Resize] for different
// bounds.
func NewOctree() *Octree {
	o := &Octree{}
	o.root.initialize(nil, Box3Uniform(DefaultOctreeSize), DefaultOctreeLevels)
	return o
}

// Root returns the root octant. It always exists and is never freed;
// objects too large or too far out of bounds reside directly in it.
func (o *Octree) Root() *Octant {
	return &o.root
}

// QueueUpdate schedules node for (re)insertion during the next [Octree.Update].
// Call it whenever the node's world bounding box changes; redundant calls
// before the next Update are harmless.
func (o *Octree) QueueUpdate(node Node) {
	s := node.base()
	if s.id == 0 {
		s.id = nextNodeID()
	}
	o.updateQueue = append(o.updateQueue, node)
	s.queued = true
}

// CancelUpdate removes any pending reinsertion for node. Queue entries are
// tombstoned, not erased. Calling it for a node with no pending update is a
// no-op.
func (o *Octree) CancelUpdate(node Node) {
	s := node.base()
	if !s.queued {
		return
	}
	// Clear every occurrence: QueueUpdate may have appended duplicates.
	for i, queued := range o.updateQueue {
		if queued == node {
			o.updateQueue[i] = nil
		}
	}
	s.queued = false
}

// RemoveNode takes node out of the octree: it is removed from its octant
// (pruning any branch this empties), any pending queue entry is tombstoned,
// and the node's octant back-reference is cleared.
func (o *Octree) RemoveNode(node Node) {
	s := node.base()
	o.removeFromOctant(node, s.octant)
	if s.queued {
		o.CancelUpdate(node)
	}
	s.octant = nil
}

// Update drains the pending queue, reinserting each queued node at the
// octant its current bounds call for, then restores the node order of every
// octant that changed. frameNumber is stamped on each processed node. Call
// once per frame.
func (o *Octree) Update(frameNumber uint16) {
	for _, node := range o.updateQueue {
		// A node removed before the update could happen leaves a nil
		// tombstone in its place.
		if node == nil {
			continue
		}

		s := node.base()
		s.queued = false
		s.lastUpdateFrame = frameNumber

		// Do nothing if the node still fits its current octant.
		box := node.WorldBoundingBox()
		boxSize := box.Size()
		oldOctant := s.octant
		if oldOctant != nil &&
			oldOctant.cullingBox.ContainsBox(box) == Inside &&
			oldOctant.fitBoundingBox(box, boxSize) {
			continue
		}

		// Reinsert: descend from the root to the level the box calls for.
		newOctant := &o.root
		boxCenter := box.Center()
		for {
			var insertHere bool
			if newOctant == &o.root {
				// A node that does not fit fully inside the root octant must
				// remain in it.
				insertHere = o.root.cullingBox.ContainsBox(box) != Inside ||
					o.root.fitBoundingBox(box, boxSize)
			} else {
				insertHere = newOctant.fitBoundingBox(box, boxSize)
			}

			if insertHere {
				if newOctant != oldOctant {
					// Add first, then remove: the node count reaching zero
					// prunes the branch in question, and the new octant may
					// live inside it.
					o.addToOctant(node, newOctant)
					if oldOctant != nil {
						o.removeFromOctant(node, oldOctant)
					}
				}
				break
			}
			newOctant = o.createChildOctant(newOctant, newOctant.childIndex(boxCenter))
		}
	}
	o.updateQueue = o.updateQueue[:0]

	for _, octant := range o.sortDirtyOctants {
		nodes := octant.nodes
		sort.Slice(nodes, func(i, j int) bool {
			return nodes[i].base().id < nodes[j].base().id
		})
		octant.sortDirty = false
	}
	o.sortDirtyOctants = o.sortDirtyOctants[:0]
}

// Resize rebuilds the octree over new bounds. Every tracked node is
// collected, all child octants are freed and the allocator reset, the root
// is reinitialized with numLevels clamped to [1, 256], and the collected
// nodes are re-queued for forced reinsertion on the next [Octree.Update].
// No node is lost or duplicated.
func (o *Octree) Resize(box Box3, numLevels int) {
	for _, node := range o.updateQueue {
		if node != nil {
			node.base().queued = false
		}
	}
	o.updateQueue = o.updateQueue[:0]
	o.updateQueue = collectNodes(o.updateQueue, &o.root)
	o.deleteChildOctants(&o.root)
	o.alloc.reset()
	o.sortDirtyOctants = o.sortDirtyOctants[:0]
	o.root.initialize(nil, box, clampLevels(numLevels))

	// Nodes are reinserted on the next update.
	for _, node := range o.updateQueue {
		node.base().queued = true
	}
}

// Dispose detaches every tracked node: back-references and queued flags are
// cleared, the queue is dropped, and all child octants are freed. The
// octree itself remains usable afterward, empty.
func (o *Octree) Dispose() {
	for _, node := range o.updateQueue {
		if node != nil {
			node.base().queued = false
		}
	}
	o.updateQueue = o.updateQueue[:0]
	o.deleteChildOctants(&o.root)
	o.alloc.reset()
	o.sortDirtyOctants = o.sortDirtyOctants[:0]
}

// Nodes appends every tracked node to dst and returns the extended slice.
func (o *Octree) Nodes(dst []Node) []Node {
	return collectNodes(dst, &o.root)
}

// FindNodes appends every node matching flags and layerMask to dst and
// returns the extended slice.
func (o *Octree) FindNodes(dst []Node, flags NodeFlags, layerMask uint32) []Node {
	return collectNodesMatching(dst, &o.root, flags, layerMask)
}

// FindNodesIn appends every node matching flags and layerMask whose world
// box touches volume to dst and returns the extended slice. Octants fully
// inside the volume are collected without further geometric tests.
func (o *Octree) FindNodesIn(dst []Node, volume Volume, flags NodeFlags, layerMask uint32) []Node {
	return collectNodesInVolume(dst, &o.root, volume, flags, layerMask)
}

// addToOctant places node in octant, incrementing the node count along the
// whole parent branch and marking the octant's node order dirty.
func (o *Octree) addToOctant(node Node, octant *Octant) {
	octant.nodes = append(octant.nodes, node)
	node.base().octant = octant

	if !octant.sortDirty {
		octant.sortDirty = true
		o.sortDirtyOctants = append(o.sortDirtyOctants, octant)
	}

	for walk := octant; walk != nil; walk = walk.parent {
		walk.numNodes++
	}
}

// removeFromOctant takes node out of octant, decrementing the node count
// along the parent branch and freeing every octant this empties. The node's
// own octant pointer is left alone: during reinsertion it already refers to
// the new octant.
func (o *Octree) removeFromOctant(node Node, octant *Octant) {
	if octant == nil {
		return
	}
	for i, held := range octant.nodes {
		if held != node {
			continue
		}
		octant.nodes = append(octant.nodes[:i], octant.nodes[i+1:]...)

		for walk := octant; walk != nil; {
			walk.numNodes--
			parent := walk.parent
			if walk.numNodes == 0 && parent != nil {
				o.deleteChildOctant(parent, parent.childIndex(walk.center))
			}
			walk = parent
		}
		return
	}
}

// createChildOctant returns octant's child at index, allocating and
// initializing it on demand.
func (o *Octree) createChildOctant(octant *Octant, index int) *Octant {
	if child := octant.children[index]; child != nil {
		return child
	}
	child := o.alloc.allocate()
	child.initialize(octant, octant.childBox(index), octant.level-1)
	octant.children[index] = child
	return child
}

// deleteChildOctant frees one child octant back to the pool.
func (o *Octree) deleteChildOctant(octant *Octant, index int) {
	o.alloc.release(octant.children[index])
	octant.children[index] = nil
}

// deleteChildOctants detaches the nodes held by octant and frees its whole
// child hierarchy. The octant records themselves are reclaimed by the
// allocator reset that follows every call.
func (o *Octree) deleteChildOctants(octant *Octant) {
	for _, node := range octant.nodes {
		s := node.base()
		s.octant = nil
		s.queued = false
	}
	octant.nodes = nil
	octant.numNodes = 0

	for i, child := range octant.children {
		if child != nil {
			o.deleteChildOctants(child)
			octant.children[i] = nil
		}
	}
}

// collectNodes appends the nodes of octant and all its descendants to dst.
func collectNodes(dst []Node, octant *Octant) []Node {
	dst = append(dst, octant.nodes...)
	for _, child := range octant.children {
		if child != nil {
			dst = collectNodes(dst, child)
		}
	}
	return dst
}

// collectNodesMatching appends the nodes of octant and all its descendants
// that match flags and layerMask to dst.
func collectNodesMatching(dst []Node, octant *Octant, flags NodeFlags, layerMask uint32) []Node {
	for _, node := range octant.nodes {
		if node.Flags()&flags == flags && node.LayerMask()&layerMask != 0 {
			dst = append(dst, node)
		}
	}
	for _, child := range octant.children {
		if child != nil {
			dst = collectNodesMatching(dst, child, flags, layerMask)
		}
	}
	return dst
}

// collectNodesInVolume appends matching nodes touching volume to dst,
// pruning octants whose culling box lies outside it and collecting fully
// contained octants without per-node geometric tests.
func collectNodesInVolume(dst []Node, octant *Octant, volume Volume, flags NodeFlags, layerMask uint32) []Node {
	switch volume.ContainsBox(octant.cullingBox) {
	case Outside:
		return dst
	case Inside:
		return collectNodesMatching(dst, octant, flags, layerMask)
	}

	for _, node := range octant.nodes {
		if node.Flags()&flags == flags && node.LayerMask()&layerMask != 0 &&
			volume.ContainsBox(node.WorldBoundingBox()) != Outside {
			dst = append(dst, node)
		}
	}
	for _, child := range octant.children {
		if child != nil {
			dst = collectNodesInVolume(dst, child, volume, flags, layerMask)
		}
	}
	return dst
}

func clampLevels(numLevels int) int {
	if numLevels < 1 {
		return 1
	}
	if numLevels > maxOctreeLevels {
		return maxOctreeLevels
	}
	return numLevels
}
