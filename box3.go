package arbor

// Box3 is an axis-aligned box in world space, stored as its minimum and
// maximum corners.
type Box3 struct {
	Min, Max Vec3
}

// Box3Uniform returns a cube centered on the origin spanning
// [-halfExtent, halfExtent] on every axis.
func Box3Uniform(halfExtent float32) Box3 {
	return Box3{
		Min: Vec3{-halfExtent, -halfExtent, -halfExtent},
		Max: Vec3{halfExtent, halfExtent, halfExtent},
	}
}

// Center returns the box's center point.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box's extent along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfSize returns half the box's extent along each axis.
func (b Box3) HalfSize() Vec3 {
	return b.Size().Scale(0.5)
}

// Expand returns the box grown outward by the given amount on every axis.
func (b Box3) Expand(by Vec3) Box3 {
	return Box3{Min: b.Min.Sub(by), Max: b.Max.Add(by)}
}

// ContainsPoint reports whether p lies inside the box. Points on a face are
// considered inside.
func (b Box3) ContainsPoint(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsBox classifies o against b: Inside when o is fully contained,
// Outside when the boxes are disjoint, Intersects otherwise.
func (b Box3) ContainsBox(o Box3) Intersection {
	if o.Max.X < b.Min.X || o.Min.X > b.Max.X ||
		o.Max.Y < b.Min.Y || o.Min.Y > b.Max.Y ||
		o.Max.Z < b.Min.Z || o.Min.Z > b.Max.Z {
		return Outside
	}
	if o.Min.X >= b.Min.X && o.Max.X <= b.Max.X &&
		o.Min.Y >= b.Min.Y && o.Max.Y <= b.Max.Y &&
		o.Min.Z >= b.Min.Z && o.Max.Z <= b.Max.Z {
		return Inside
	}
	return Intersects
}

// IntersectsBox reports whether b and o overlap. Boxes sharing only a face
// are considered intersecting.
func (b Box3) IntersectsBox(o Box3) bool {
	return b.ContainsBox(o) != Outside
}
