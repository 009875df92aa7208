package octree

import "github.com/achilleasa/meshpick/types"

// Tolerance used when classifying a box hit point against the box faces.
const boxNormalEpsilon = 1e-6

// Intersect a ray with a box using the slab method.
//
// If the ray origin lies inside the box the test succeeds immediately with
// T = 0, Point = origin and Normal set to the ray direction. Otherwise the
// returned normal is a per-axis sign vector (-1, 0 or +1) classifying the hit
// point against the box widened by boxNormalEpsilon; it is not a unit vector.
//
// Zero direction components are not special-cased: the resulting infinities
// (and NaNs for an origin lying on a slab plane) fall through the min/max
// reductions and yield a miss.
func RayBox(origin, dir types.Vec3, box AABB) (HitTest, bool) {
	if box.Contains(origin) {
		return HitTest{T: 0, Point: origin, Normal: dir}, true
	}

	tMin := box.Min.Sub(origin).DivVec(dir)
	tMax := box.Max.Sub(origin).DivVec(dir)

	tNear := types.MinVec3(tMin, tMax).MaxComponent()
	tFar := types.MaxVec3(tMin, tMax).MinComponent()
	if !(tNear > 0 && tNear < tFar) {
		return NoHit(), false
	}

	point := origin.Add(dir.Mul(tNear))
	var normal types.Vec3
	for axis := 0; axis < 3; axis++ {
		switch {
		case point[axis] < box.Min[axis]-boxNormalEpsilon:
			normal[axis] = -1
		case point[axis] > box.Max[axis]+boxNormalEpsilon:
			normal[axis] = 1
		}
	}

	return HitTest{T: tNear, Point: point, Normal: normal}, true
}

// Intersect a ray with the triangle (a, b, c).
//
// Triangles whose geometric normal, cross(b-a, c-a), points along the ray
// direction are culled. Hits at or behind the ray origin are rejected.
// Degenerate triangles produce a NaN normal and never report a hit.
func RayTriangle(origin, dir, a, b, c types.Vec3) (HitTest, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	normal := ab.Cross(ac).Normalize()

	nDotDir := normal.Dot(dir)
	if nDotDir > 0 {
		return NoHit(), false
	}

	t := normal.Dot(a.Sub(origin)) / nDotDir
	if t <= 0 {
		return NoHit(), false
	}

	// Express the hit point relative to a as u*ac + v*ab
	point := origin.Add(dir.Mul(t))
	toHit := point.Sub(a)

	dotAcAc := ac.Dot(ac)
	dotAcAb := ac.Dot(ab)
	dotAcHit := ac.Dot(toHit)
	dotAbAb := ab.Dot(ab)
	dotAbHit := ab.Dot(toHit)

	denom := dotAcAc*dotAbAb - dotAcAb*dotAcAb
	u := (dotAbAb*dotAcHit - dotAcAb*dotAbHit) / denom
	v := (dotAcAc*dotAbHit - dotAcAb*dotAcHit) / denom

	if u >= 0 && v >= 0 && u+v <= 1 {
		return HitTest{T: t, Point: point, Normal: normal}, true
	}
	return NoHit(), false
}
