package arbor

import "github.com/chewxy/math32"

// Volume is a convex query region. Implementations classify an axis-aligned
// box as fully inside, fully outside, or straddling the volume's surface.
// [Sphere] and [Frustum] are provided; any convex shape with a conservative
// box test works.
type Volume interface {
	ContainsBox(box Box3) Intersection
}

// Sphere is a center-and-radius query volume.
type Sphere struct {
	Center Vec3
	Radius float32
}

// ContainsBox classifies box against the sphere.
func (s Sphere) ContainsBox(box Box3) Intersection {
	r2 := s.Radius * s.Radius

	// Squared distance from the center to the nearest point of the box.
	var near float32
	// Squared distance from the center to the farthest corner of the box.
	var far float32
	for _, axis := range [3][3]float32{
		{s.Center.X, box.Min.X, box.Max.X},
		{s.Center.Y, box.Min.Y, box.Max.Y},
		{s.Center.Z, box.Min.Z, box.Max.Z},
	} {
		c, lo, hi := axis[0], axis[1], axis[2]
		if c < lo {
			d := lo - c
			near += d * d
		} else if c > hi {
			d := c - hi
			near += d * d
		}
		f := math32.Max(math32.Abs(c-lo), math32.Abs(hi-c))
		far += f * f
	}

	if near > r2 {
		return Outside
	}
	if far <= r2 {
		return Inside
	}
	return Intersects
}

// Plane is the set of points p with Normal·p + D == 0. The normal points
// toward the plane's positive half-space.
type Plane struct {
	Normal Vec3
	D      float32
}

// Distance returns the signed distance from p to the plane, positive on the
// normal's side.
func (pl Plane) Distance(p Vec3) float32 {
	return pl.Normal.Dot(p) + pl.D
}

// planeFrom builds a plane with the given normal passing through point.
func planeFrom(normal, point Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, D: -n.Dot(point)}
}

// Frustum is a six-plane convex volume, typically a camera's view frustum.
// All plane normals point inward.
type Frustum struct {
	Planes [6]Plane
}

// NewPerspectiveFrustum builds the view frustum of a perspective camera at
// pos looking along dir. fovY is the vertical field of view in radians,
// aspect the width/height ratio, near and far the clip distances.
func NewPerspectiveFrustum(pos, dir, up Vec3, fovY, aspect, near, far float32) Frustum {
	d := dir.Normalize()
	right := d.Cross(up).Normalize()
	u := right.Cross(d)

	nearCenter := pos.Add(d.Scale(near))
	farCenter := pos.Add(d.Scale(far))
	hNear := math32.Tan(fovY/2) * near
	wNear := hNear * aspect

	// Side planes pass through the camera position and the near-plane edges.
	rightEdge := nearCenter.Add(right.Scale(wNear)).Sub(pos).Normalize()
	leftEdge := nearCenter.Sub(right.Scale(wNear)).Sub(pos).Normalize()
	topEdge := nearCenter.Add(u.Scale(hNear)).Sub(pos).Normalize()
	bottomEdge := nearCenter.Sub(u.Scale(hNear)).Sub(pos).Normalize()

	return Frustum{Planes: [6]Plane{
		planeFrom(d, nearCenter),
		planeFrom(d.Scale(-1), farCenter),
		planeFrom(u.Cross(rightEdge), pos),
		planeFrom(leftEdge.Cross(u), pos),
		planeFrom(topEdge.Cross(right), pos),
		planeFrom(right.Cross(bottomEdge), pos),
	}}
}

// ContainsBox classifies box against the frustum using the positive/negative
// vertex test: for each plane only the corner farthest along the normal can
// prove containment, and only the opposite corner can prove exclusion.
func (f Frustum) ContainsBox(box Box3) Intersection {
	res := Inside
	for _, pl := range f.Planes {
		pv, nv := box.Min, box.Max
		if pl.Normal.X >= 0 {
			pv.X, nv.X = box.Max.X, box.Min.X
		}
		if pl.Normal.Y >= 0 {
			pv.Y, nv.Y = box.Max.Y, box.Min.Y
		}
		if pl.Normal.Z >= 0 {
			pv.Z, nv.Z = box.Max.Z, box.Min.Z
		}
		if pl.Distance(pv) < 0 {
			return Outside
		}
		if pl.Distance(nv) < 0 {
			res = Intersects
		}
	}
	return res
}
