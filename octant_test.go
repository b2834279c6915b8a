package arbor

import "testing"

func newRootOctant(halfExtent float32, level int) *Octant {
	oct := &Octant{}
	oct.initialize(nil, Box3Uniform(halfExtent), level)
	return oct
}

func TestOctantInitializeDerivedGeometry(t *testing.T) {
	oct := newRootOctant(100, 4)

	if oct.center != (Vec3{}) {
		t.Errorf("center = %v, want origin", oct.center)
	}
	if oct.halfSize != (Vec3{100, 100, 100}) {
		t.Errorf("halfSize = %v, want (100,100,100)", oct.halfSize)
	}
	want := Box3Uniform(200)
	if oct.cullingBox != want {
		t.Errorf("cullingBox = %v, want world box expanded by halfSize", oct.cullingBox)
	}
}

func TestFitAtMinimumLevel(t *testing.T) {
	oct := newRootOctant(100, 1)
	tiny := Box3Uniform(0.001)
	if !oct.fitBoundingBox(tiny, tiny.Size()) {
		t.Error("any box fits at the minimum subdivision level")
	}
}

func TestFitLargeBox(t *testing.T) {
	oct := newRootOctant(100, 4)

	// Extent >= half size on one axis is enough to stay here.
	wide := Box3{Min: Vec3{-60, -1, -1}, Max: Vec3{60, 1, 1}}
	if !oct.fitBoundingBox(wide, wide.Size()) {
		t.Error("box wider than halfSize should fit at this level")
	}

	small := Box3Uniform(10)
	if oct.fitBoundingBox(small, small.Size()) {
		t.Error("small centered box should descend to a child")
	}
}

func TestFitBoundaryTolerance(t *testing.T) {
	oct := newRootOctant(100, 4)

	// A small box hanging past the world bounds by more than half the
	// half-size margin cannot fit any child and must stay here.
	straddling := Box3{Min: Vec3{-151, -1, -1}, Max: Vec3{-141, 1, 1}}
	if !oct.fitBoundingBox(straddling, straddling.Size()) {
		t.Error("box outside the child tolerance margin should stay at this level")
	}

	// Just inside the margin: still allowed to descend.
	nearSeam := Box3{Min: Vec3{-149, -1, -1}, Max: Vec3{-141, 1, 1}}
	if oct.fitBoundingBox(nearSeam, nearSeam.Size()) {
		t.Error("box within the child tolerance margin should descend")
	}
}

func TestChildIndex(t *testing.T) {
	oct := newRootOctant(100, 4)
	cases := []struct {
		p    Vec3
		want int
	}{
		{Vec3{-1, -1, -1}, 0},
		{Vec3{1, -1, -1}, 1},
		{Vec3{-1, 1, -1}, 2},
		{Vec3{1, 1, -1}, 3},
		{Vec3{-1, -1, 1}, 4},
		{Vec3{1, -1, 1}, 5},
		{Vec3{-1, 1, 1}, 6},
		{Vec3{1, 1, 1}, 7},
	}
	for _, c := range cases {
		if got := oct.childIndex(c.p); got != c.want {
			t.Errorf("childIndex(%v) = %d, want %d", c.p, got, c.want)
		}
	}
}

func TestChildBoxCoversParentExactly(t *testing.T) {
	oct := newRootOctant(100, 4)
	for i := 0; i < numOctants; i++ {
		box := oct.childBox(i)
		if size := box.Size(); size != (Vec3{100, 100, 100}) {
			t.Errorf("child %d size = %v, want half the parent on every axis", i, size)
		}
		if oct.worldBox.ContainsBox(box) != Inside {
			t.Errorf("child %d box %v escapes the parent", i, box)
		}
		if got := oct.childIndex(box.Center()); got != i {
			t.Errorf("childIndex of child %d center = %d", i, got)
		}
	}
}
