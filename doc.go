// Package arbor is a dynamic octree spatial index for real-time rendering.
//
// Arbor answers "which objects are near region R" and "what does this ray
// hit" each frame without rescanning the scene. The tree is loose (every
// cell is queried through a culling box expanded by half its size, so
// objects straddling a cell boundary are found from either side) and
// incremental: moving objects queue themselves and are reinserted in one
// batch per frame.
//
// # Quick start
//
// Embed [NodeBase] in the type you want to track and implement [Node]:
//
//	type Ship struct {
//		arbor.NodeBase
//		bounds arbor.Box3
//	}
//
//	func (s *Ship) WorldBoundingBox() arbor.Box3 { return s.bounds }
//	func (s *Ship) Flags() arbor.NodeFlags       { return arbor.FlagEnabled | arbor.FlagGeometry }
//	func (s *Ship) LayerMask() uint32            { return arbor.LayerMaskAll }
//	func (s *Ship) OnRaycast(ray arbor.Ray, maxDistance float32, results *[]arbor.RaycastResult) {
//		// exact geometry test, appending hits
//	}
//
// Then drive the tree from the frame loop:
//
//	tree := arbor.NewOctree()
//	tree.QueueUpdate(ship) // whenever ship moves
//	tree.Update(frame)     // once per frame
//
//	hit := tree.RaycastSingle(ray, arbor.FlagGeometry, math32.Inf(1), arbor.LayerMaskAll)
//
// # Design
//
// Octants are allocated from an internal pool and pruned the moment their
// subtree empties, so the tree only ever covers occupied space. Objects too
// large for any child, or outside the world bounds entirely, live at the
// root. [Octree.RaycastSingle] is two-phase: candidates are ranked by their
// bounding-box hit distance (a lower bound on the true distance) and exact
// per-object tests stop as soon as that bound can no longer beat the best
// hit found.
//
// Arbor does not own geometry, render anything, or lock: all methods belong
// to one owning goroutine. The rendering pipeline consumes it purely
// through the query API; see demos/octview for a runnable visualization.
package arbor
