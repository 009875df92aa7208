package octree

import (
	"testing"

	"github.com/achilleasa/meshpick/types"
	"github.com/stretchr/testify/require"
)

var unitBox = AABB{Min: types.Vec3{-1, -1, -1}, Max: types.Vec3{1, 1, 1}}

func TestRayBoxOriginInside(t *testing.T) {
	origin := types.Vec3{0.25, 0, 0}
	dir := types.Vec3{0, 0, -1}

	hit, ok := RayBox(origin, dir, unitBox)
	require.True(t, ok)
	require.Equal(t, 0.0, hit.T)
	require.Equal(t, origin, hit.Point)
	require.Equal(t, dir, hit.Normal, "expected normal to carry the ray direction")

	// Boundaries are inclusive
	_, ok = RayBox(types.Vec3{1, 1, 1}, dir, unitBox)
	require.True(t, ok)
}

func TestRayBoxHit(t *testing.T) {
	hit, ok := RayBox(types.Vec3{0, 0, 5}, types.Vec3{0, 0, -1}, unitBox)
	require.True(t, ok)
	require.Equal(t, 4.0, hit.T)
	require.Equal(t, types.Vec3{0, 0, 1}, hit.Point)

	// The hit point lies on the box surface, within the normal classification
	// tolerance on every axis.
	require.Equal(t, types.Vec3{}, hit.Normal)

	// Oblique ray entering through the -x face
	hit, ok = RayBox(types.Vec3{-3, 0, 0}, types.Vec3{1, 0.25, 0}, unitBox)
	require.True(t, ok)
	require.Equal(t, 2.0, hit.T)
	require.Equal(t, types.Vec3{-1, 0.5, 0}, hit.Point)
	require.Equal(t, types.Vec3{}, hit.Normal)
}

func TestRayBoxMiss(t *testing.T) {
	specs := []struct {
		descr  string
		origin types.Vec3
		dir    types.Vec3
	}{
		{"parallel ray outside slab", types.Vec3{5, 5, 5}, types.Vec3{0, 0, -1}},
		{"pointing away", types.Vec3{0, 0, 5}, types.Vec3{0, 0, 1}},
		{"passing beside", types.Vec3{-3, 3, 0}, types.Vec3{1, 0, 0}},
		{"zero direction", types.Vec3{0, 0, 5}, types.Vec3{0, 0, 0}},
		{"origin on a slab plane", types.Vec3{1, 3, 0}, types.Vec3{0, 0, -1}},
	}

	for _, spec := range specs {
		_, ok := RayBox(spec.origin, spec.dir, unitBox)
		require.False(t, ok, spec.descr)
	}
}

func TestRayTriangle(t *testing.T) {
	a := types.Vec3{-1, -1, 0}
	b := types.Vec3{1, -1, 0}
	c := types.Vec3{0, 1, 0}

	hit, ok := RayTriangle(types.Vec3{0, 0, 3}, types.Vec3{0, 0, -1}, a, b, c)
	require.True(t, ok)
	require.Equal(t, 3.0, hit.T)
	require.Equal(t, types.Vec3{0, 0, 0}, hit.Point)
	require.Equal(t, types.Vec3{0, 0, 1}, hit.Normal)

	// Hitting a vertex exactly counts as a hit
	hit, ok = RayTriangle(types.Vec3{-1, -1, 3}, types.Vec3{0, 0, -1}, a, b, c)
	require.True(t, ok)
	require.Equal(t, 3.0, hit.T)

	// Non-unit directions scale T
	hit, ok = RayTriangle(types.Vec3{0, 0, 3}, types.Vec3{0, 0, -2}, a, b, c)
	require.True(t, ok)
	require.Equal(t, 1.5, hit.T)
}

func TestRayTriangleMiss(t *testing.T) {
	a := types.Vec3{-1, -1, 0}
	b := types.Vec3{1, -1, 0}
	c := types.Vec3{0, 1, 0}

	specs := []struct {
		descr   string
		origin  types.Vec3
		dir     types.Vec3
		a, b, c types.Vec3
	}{
		{"normal along ray direction", types.Vec3{0, 0, -3}, types.Vec3{0, 0, 1}, a, b, c},
		{"triangle behind origin", types.Vec3{0, 0, -3}, types.Vec3{0, 0, -1}, a, b, c},
		{"outside triangle", types.Vec3{5, 5, 3}, types.Vec3{0, 0, -1}, a, b, c},
		{"outside along edge", types.Vec3{0.9, 0.9, 3}, types.Vec3{0, 0, -1}, a, b, c},
		{"ray in triangle plane", types.Vec3{-5, 0, 0}, types.Vec3{1, 0, 0}, a, b, c},
		{"degenerate triangle", types.Vec3{0, 0, 3}, types.Vec3{0, 0, -1}, a, a, c},
		{"reversed winding", types.Vec3{0, 0, 3}, types.Vec3{0, 0, -1}, a, c, b},
	}

	for _, spec := range specs {
		_, ok := RayTriangle(spec.origin, spec.dir, spec.a, spec.b, spec.c)
		require.False(t, ok, spec.descr)
	}
}
