package arbor

import "github.com/chewxy/math32"

// Ray is a half-line in world space with a normalized direction.
type Ray struct {
	Origin, Dir Vec3
}

// NewRay returns a ray from origin along dir. The direction is normalized.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// Point returns the position at parametric distance t along the ray.
func (r Ray) Point(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// HitDistance returns the distance at which the ray enters box, 0 if the
// origin is already inside, or +Inf on a miss. The result is a guaranteed
// lower bound on the hit distance of any geometry contained in the box.
func (r Ray) HitDistance(box Box3) float32 {
	if box.ContainsPoint(r.Origin) {
		return 0
	}

	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	// Slab test per axis. A ray parallel to an axis misses unless the origin
	// lies between that axis' slabs.
	if !hitSlab(r.Origin.X, r.Dir.X, box.Min.X, box.Max.X, &tmin, &tmax) ||
		!hitSlab(r.Origin.Y, r.Dir.Y, box.Min.Y, box.Max.Y, &tmin, &tmax) ||
		!hitSlab(r.Origin.Z, r.Dir.Z, box.Min.Z, box.Max.Z, &tmin, &tmax) {
		return math32.Inf(1)
	}
	if tmax < 0 {
		// Box is behind the ray.
		return math32.Inf(1)
	}
	return tmin
}

func hitSlab(origin, dir, lo, hi float32, tmin, tmax *float32) bool {
	if dir == 0 {
		return origin >= lo && origin <= hi
	}
	t1 := (lo - origin) / dir
	t2 := (hi - origin) / dir
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tmin {
		*tmin = t1
	}
	if t2 < *tmax {
		*tmax = t2
	}
	return *tmin <= *tmax
}

// HitDistanceSphere returns the distance at which the ray enters sphere, 0 if
// the origin is already inside, or +Inf on a miss.
func (r Ray) HitDistanceSphere(s Sphere) float32 {
	oc := s.Center.Sub(r.Origin)
	tca := oc.Dot(r.Dir)
	d2 := oc.Dot(oc) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return math32.Inf(1)
	}
	thc := math32.Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t1 < 0 {
		return math32.Inf(1)
	}
	if t0 < 0 {
		return 0
	}
	return t0
}
