package arbor

import (
	"sort"

	"github.com/chewxy/math32"
)

// RaycastResult describes one fine-grained ray hit reported by a node's
// OnRaycast callback.
type RaycastResult struct {
	// Position is the hit position in world space.
	Position Vec3
	// Normal is the hit surface normal in world space.
	Normal Vec3
	// Distance is the hit distance along the ray.
	Distance float32
	// Node is the node that was hit, nil for the miss sentinel.
	Node Node
	// SubObject identifies the geometry or other node-specific subpart
	// that was hit.
	SubObject int
}

// rayCandidate pairs a node with its bounding-box hit distance, the coarse
// phase of RaycastSingle.
type rayCandidate struct {
	node     Node
	distance float32
}

// Raycast collects every fine-grained hit along ray from nodes matching
// flags and layerMask, closer than maxDistance, sorted ascending by
// distance. dst's capacity is reused; its previous contents are discarded.
func (o *Octree) Raycast(dst []RaycastResult, ray Ray, flags NodeFlags, maxDistance float32, layerMask uint32) []RaycastResult {
	dst = dst[:0]
	dst = collectRayHits(dst, &o.root, ray, flags, maxDistance, layerMask)
	sort.Slice(dst, func(i, j int) bool {
		return dst[i].Distance < dst[j].Distance
	})
	return dst
}

// RaycastSingle returns the closest fine-grained hit along ray from nodes
// matching flags and layerMask within maxDistance, or a miss sentinel
// (+Inf distance, nil node) when nothing is hit.
//
// It runs in two phases: first candidates are gathered with only their
// bounding-box hit distance, a guaranteed lower bound on any exact hit, and
// sorted by that bound; then exact callbacks run in bound order, stopping
// as soon as a candidate's bound can no longer beat the best exact hit.
func (o *Octree) RaycastSingle(ray Ray, flags NodeFlags, maxDistance float32, layerMask uint32) RaycastResult {
	// Coarse phase: potential hits by bounding-box distance.
	o.initialRes = o.initialRes[:0]
	o.initialRes = collectRayCandidates(o.initialRes, &o.root, ray, flags, maxDistance, layerMask)
	sort.Slice(o.initialRes, func(i, j int) bool {
		return o.initialRes[i].distance < o.initialRes[j].distance
	})

	// Exact phase: per-node tests in bound order with early out.
	o.finalRes = o.finalRes[:0]
	closestHit := math32.Inf(1)
	for _, candidate := range o.initialRes {
		if candidate.distance >= min(closestHit, maxDistance) {
			// The bound only grows from here: no remaining candidate can
			// improve on the best exact hit.
			break
		}
		oldLen := len(o.finalRes)
		candidate.node.OnRaycast(ray, maxDistance, &o.finalRes)
		for _, hit := range o.finalRes[oldLen:] {
			closestHit = min(closestHit, hit.Distance)
		}
	}

	if len(o.finalRes) == 0 {
		return RaycastResult{Distance: math32.Inf(1)}
	}
	sort.Slice(o.finalRes, func(i, j int) bool {
		return o.finalRes[i].Distance < o.finalRes[j].Distance
	})
	return o.finalRes[0]
}

// collectRayHits invokes the exact raycast callback of every matching node
// in octants whose culling box the ray enters within maxDistance.
func collectRayHits(dst []RaycastResult, octant *Octant, ray Ray, flags NodeFlags, maxDistance float32, layerMask uint32) []RaycastResult {
	if ray.HitDistance(octant.cullingBox) >= maxDistance {
		return dst
	}

	for _, node := range octant.nodes {
		if node.Flags()&flags == flags && node.LayerMask()&layerMask != 0 {
			node.OnRaycast(ray, maxDistance, &dst)
		}
	}
	for _, child := range octant.children {
		if child != nil {
			dst = collectRayHits(dst, child, ray, flags, maxDistance, layerMask)
		}
	}
	return dst
}

// collectRayCandidates gathers matching nodes with their bounding-box hit
// distance, pruning octants exactly like collectRayHits.
func collectRayCandidates(dst []rayCandidate, octant *Octant, ray Ray, flags NodeFlags, maxDistance float32, layerMask uint32) []rayCandidate {
	if ray.HitDistance(octant.cullingBox) >= maxDistance {
		return dst
	}

	for _, node := range octant.nodes {
		if node.Flags()&flags == flags && node.LayerMask()&layerMask != 0 {
			distance := ray.HitDistance(node.WorldBoundingBox())
			if distance < maxDistance {
				dst = append(dst, rayCandidate{node: node, distance: distance})
			}
		}
	}
	for _, child := range octant.children {
		if child != nil {
			dst = collectRayCandidates(dst, child, ray, flags, maxDistance, layerMask)
		}
	}
	return dst
}
