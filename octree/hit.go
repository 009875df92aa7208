package octree

import (
	"math"

	"github.com/achilleasa/meshpick/types"
)

// HitTest describes a ray intersection. T is the ray parameter of the hit;
// a HitTest with T = +Inf means that nothing has been hit yet.
type HitTest struct {
	T      float64
	Point  types.Vec3
	Normal types.Vec3
}

// Create an empty hit accumulator.
func NoHit() HitTest {
	return HitTest{T: math.Inf(1)}
}

// Returns true if the hit holds an intersection.
func (h *HitTest) IsHit() bool {
	return !math.IsInf(h.T, 1)
}

// Replace the hit with candidate if candidate lies in front of the ray
// origin and is strictly closer. Ties keep the existing hit. Returns true
// if the hit was replaced.
func (h *HitTest) Merge(candidate HitTest) bool {
	if candidate.T > 0 && candidate.T < h.T {
		*h = candidate
		return true
	}
	return false
}
