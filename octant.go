package arbor

// numOctants is the number of children per octant: one per combination of
// above/below the center on each axis.
const numOctants = 8

// Octant is one cuboid cell of an [Octree]. It holds the objects that fit at
// its subdivision level and up to eight child octants covering its halves
// along each axis. Octants are allocated from the octree's pool and pruned
// as soon as their subtree empties; external code must only read them.
type Octant struct {
	nodes      []Node
	sortDirty  bool
	cullingBox Box3
	worldBox   Box3
	center     Vec3
	halfSize   Vec3
	level      int
	children   [numOctants]*Octant
	parent     *Octant
	numNodes   int
}

func (o *Octant) initialize(parent *Octant, box Box3, level int) {
	o.worldBox = box
	o.center = box.Center()
	o.halfSize = box.HalfSize()
	o.cullingBox = box.Expand(o.halfSize)
	o.level = level
	o.parent = parent
}

// WorldBoundingBox returns the exact region the octant covers.
func (o *Octant) WorldBoundingBox() Box3 {
	return o.worldBox
}

// CullingBox returns the octant's loose bounds: the world box expanded by
// half its size on every axis. Objects assigned to the octant always fit
// inside it, so queries test it instead of the exact region.
func (o *Octant) CullingBox() Box3 {
	return o.cullingBox
}

// Level returns the octant's subdivision level. The root carries the
// octree's configured level count; 1 is the finest subdivision.
func (o *Octant) Level() int {
	return o.level
}

// Parent returns the containing octant, or nil at the root.
func (o *Octant) Parent() *Octant {
	return o.parent
}

// Child returns the child octant at index (0-7), or nil where none exists.
func (o *Octant) Child(index int) *Octant {
	return o.children[index]
}

// Nodes returns the objects held directly by this octant, excluding
// descendants. The returned slice is the octant's own storage and must not
// be modified.
func (o *Octant) Nodes() []Node {
	return o.nodes
}

// NumNodes returns the number of objects in this octant and all its
// descendants combined.
func (o *Octant) NumNodes() int {
	return o.numNodes
}

// fitBoundingBox decides whether an object belongs at this level rather than
// in a child octant.
func (o *Octant) fitBoundingBox(box Box3, boxSize Vec3) bool {
	// At the last split level the size is always OK; otherwise the box must
	// be at least half the octant's size to stay here.
	if o.level <= 1 ||
		boxSize.X >= o.halfSize.X || boxSize.Y >= o.halfSize.Y || boxSize.Z >= o.halfSize.Z {
		return true
	}
	// A smaller box that cannot fit inside a child's culling box must also
	// insert here. The half-halfSize margin keeps objects near a seam from
	// oscillating between adjacent children.
	if box.Min.X <= o.worldBox.Min.X-0.5*o.halfSize.X ||
		box.Min.Y <= o.worldBox.Min.Y-0.5*o.halfSize.Y ||
		box.Min.Z <= o.worldBox.Min.Z-0.5*o.halfSize.Z ||
		box.Max.X >= o.worldBox.Max.X+0.5*o.halfSize.X ||
		box.Max.Y >= o.worldBox.Max.Y+0.5*o.halfSize.Y ||
		box.Max.Z >= o.worldBox.Max.Z+0.5*o.halfSize.Z {
		return true
	}

	// Small enough: a child octant should be created.
	return false
}

// childIndex returns the 3-bit child slot for a position, one bit per axis
// from the sign of (position - center).
func (o *Octant) childIndex(p Vec3) int {
	index := 0
	if p.X >= o.center.X {
		index = 1
	}
	if p.Y >= o.center.Y {
		index += 2
	}
	if p.Z >= o.center.Z {
		index += 4
	}
	return index
}

// childBox returns the world box of the child at index.
func (o *Octant) childBox(index int) Box3 {
	box := o.worldBox
	if index&1 != 0 {
		box.Min.X = o.center.X
	} else {
		box.Max.X = o.center.X
	}
	if index&2 != 0 {
		box.Min.Y = o.center.Y
	} else {
		box.Max.Y = o.center.Y
	}
	if index&4 != 0 {
		box.Min.Z = o.center.Z
	} else {
		box.Max.Z = o.center.Z
	}
	return box
}
