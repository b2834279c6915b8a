package arbor

// Intersection classifies how a query volume relates to a bounding box.
type Intersection uint8

const (
	Outside    Intersection = iota // fully outside the volume
	Intersects                     // partially inside the volume
	Inside                         // fully inside the volume
)

// NodeFlags is a bitmask describing a tracked node's capabilities. Queries
// match a node iff every requested flag is set on it.
type NodeFlags uint16

const (
	FlagEnabled     NodeFlags = 1 << iota // participates in queries
	FlagGeometry                          // renderable geometry
	FlagLight                             // light source
	FlagCastShadows                       // casts shadows
	FlagStatic                            // not expected to move
)

// LayerMaskAll matches every layer. A query matches a node when the node's
// layer mask and the query's layer mask share at least one bit.
const LayerMaskAll uint32 = 0xffffffff

// Default octree extents and subdivision depth, used by [NewOctree].
const (
	DefaultOctreeSize   float32 = 1000
	DefaultOctreeLevels         = 8
)

// maxOctreeLevels caps the subdivision depth accepted by Resize.
const maxOctreeLevels = 256
