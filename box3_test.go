package arbor

import "testing"

func TestBox3DerivedGeometry(t *testing.T) {
	box := Box3{Min: Vec3{-10, 0, 2}, Max: Vec3{10, 4, 6}}

	if got := box.Center(); got != (Vec3{0, 2, 4}) {
		t.Errorf("Center = %v, want (0,2,4)", got)
	}
	if got := box.Size(); got != (Vec3{20, 4, 4}) {
		t.Errorf("Size = %v, want (20,4,4)", got)
	}
	if got := box.HalfSize(); got != (Vec3{10, 2, 2}) {
		t.Errorf("HalfSize = %v, want (10,2,2)", got)
	}
	want := Box3{Min: Vec3{-11, -1, 1}, Max: Vec3{11, 5, 7}}
	if got := box.Expand(Vec3{1, 1, 1}); got != want {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestBox3ContainsPoint(t *testing.T) {
	box := Box3Uniform(10)
	if !box.ContainsPoint(Vec3{}) {
		t.Error("center should be inside")
	}
	if !box.ContainsPoint(Vec3{10, 10, 10}) {
		t.Error("corner should count as inside")
	}
	if box.ContainsPoint(Vec3{10.01, 0, 0}) {
		t.Error("point past a face should be outside")
	}
}

func TestBox3ContainsBox(t *testing.T) {
	box := Box3Uniform(10)

	if got := box.ContainsBox(Box3Uniform(5)); got != Inside {
		t.Errorf("nested box = %v, want Inside", got)
	}
	if got := box.ContainsBox(Box3Uniform(10)); got != Inside {
		t.Errorf("identical box = %v, want Inside", got)
	}
	overlapping := Box3{Min: Vec3{5, 5, 5}, Max: Vec3{15, 15, 15}}
	if got := box.ContainsBox(overlapping); got != Intersects {
		t.Errorf("overlapping box = %v, want Intersects", got)
	}
	disjoint := Box3{Min: Vec3{20, 0, 0}, Max: Vec3{30, 1, 1}}
	if got := box.ContainsBox(disjoint); got != Outside {
		t.Errorf("disjoint box = %v, want Outside", got)
	}
}
