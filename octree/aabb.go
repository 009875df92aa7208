package octree

import (
	"math"

	"github.com/achilleasa/meshpick/types"
)

// AABB is an axis-aligned bounding box. Callers are expected to keep
// Min <= Max on every axis; this is not enforced.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// Compute the tight bounding box of a flat xyz point buffer. The buffer
// must contain at least one point; an empty buffer yields the inverted
// (+MaxFloat64, -MaxFloat64) seed box.
func ComputeAABB(points []float64) AABB {
	box := AABB{
		Min: types.Vec3{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		Max: types.Vec3{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}

	for offset := 0; offset+2 < len(points); offset += 3 {
		p := types.Vec3At(points, offset)
		box.Min = types.MinVec3(box.Min, p)
		box.Max = types.MaxVec3(box.Max, p)
	}
	return box
}

// Returns true if a is fully enclosed by b. Boundaries are inclusive.
func (a AABB) IsInside(b AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if a.Min[axis] < b.Min[axis] || a.Max[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// Returns true if p lies within the box. Boundaries are inclusive.
func (a AABB) Contains(p types.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < a.Min[axis] || p[axis] > a.Max[axis] {
			return false
		}
	}
	return true
}

// Grow the box by minMargin on the min side and maxMargin on the max side
// of every axis.
func (a AABB) Expand(minMargin, maxMargin float64) AABB {
	return AABB{
		Min: a.Min.Sub(types.Vec3{minMargin, minMargin, minMargin}),
		Max: a.Max.Add(types.Vec3{maxMargin, maxMargin, maxMargin}),
	}
}

// Get the box extent along each axis.
func (a AABB) Size() types.Vec3 {
	return a.Max.Sub(a.Min)
}
