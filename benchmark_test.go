package arbor

import (
	"testing"

	"github.com/chewxy/math32"
)

// setupBenchTree builds an octree with n small nodes scattered on a grid.
func setupBenchTree(n int) (*Octree, []*testNode) {
	tree := NewOctree()
	nodes := make([]*testNode, n)
	for i := range nodes {
		nodes[i] = newTestNode(Vec3{
			X: float32(i%100)*19 - 950,
			Y: float32((i/100)%100)*19 - 950,
			Z: float32(i/10000)*19 - 950,
		}, 2)
		tree.QueueUpdate(nodes[i])
	}
	tree.Update(1)
	return tree, nodes
}

func BenchmarkUpdate_10000Static(b *testing.B) {
	tree, nodes := setupBenchTree(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, n := range nodes {
			tree.QueueUpdate(n)
		}
		tree.Update(uint16(i))
	}
}

func BenchmarkUpdate_10000Moving(b *testing.B) {
	tree, nodes := setupBenchTree(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dx := float32(i%2)*38 - 19
		for _, n := range nodes {
			n.moveTo(n.box.Center().Add(Vec3{X: dx}))
			tree.QueueUpdate(n)
		}
		tree.Update(uint16(i))
	}
}

func BenchmarkRaycast_10000(b *testing.B) {
	tree, _ := setupBenchTree(10000)
	ray := NewRay(Vec3{X: -1100, Y: 1, Z: 1}, Vec3{X: 1})
	var hits []RaycastResult

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		hits = tree.Raycast(hits, ray, FlagGeometry, math32.Inf(1), LayerMaskAll)
	}
}

func BenchmarkRaycastSingle_10000(b *testing.B) {
	tree, _ := setupBenchTree(10000)
	ray := NewRay(Vec3{X: -1100, Y: 1, Z: 1}, Vec3{X: 1})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tree.RaycastSingle(ray, FlagGeometry, math32.Inf(1), LayerMaskAll)
	}
}

func BenchmarkFindNodesIn_Sphere(b *testing.B) {
	tree, _ := setupBenchTree(10000)
	volume := Sphere{Center: Vec3{}, Radius: 250}
	var found []Node

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		found = tree.FindNodesIn(found[:0], volume, FlagGeometry, LayerMaskAll)
	}
}
