package octree

import "github.com/achilleasa/meshpick/types"

// Unit cube centered at the origin with outward facing, counter-clockwise
// wound triangles.
func cubeMesh() ([]float64, []uint32) {
	const h = 0.5
	vertices := []float64{
		-h, -h, -h,
		h, -h, -h,
		h, h, -h,
		-h, h, -h,
		-h, -h, h,
		h, -h, h,
		h, h, h,
		-h, h, h,
	}
	indices := []uint32{
		4, 5, 6, 4, 6, 7, // +z
		0, 2, 1, 0, 3, 2, // -z
		1, 2, 6, 1, 6, 5, // +x
		0, 4, 7, 0, 7, 3, // -x
		3, 7, 6, 3, 6, 2, // +y
		0, 1, 5, 0, 5, 4, // -y
	}
	return vertices, indices
}

// Append an axis aligned quad facing +z, centered at (cx, cy, z), to a
// triangle soup.
func appendQuad(soup []float64, cx, cy, z, size float64) []float64 {
	h := size / 2
	a := types.Vec3{cx - h, cy - h, z}
	b := types.Vec3{cx + h, cy - h, z}
	c := types.Vec3{cx + h, cy + h, z}
	d := types.Vec3{cx - h, cy + h, z}
	for _, v := range []types.Vec3{a, b, c, a, c, d} {
		soup = append(soup, v[0], v[1], v[2])
	}
	return soup
}

// Build a triangle soup grid of cells x cells quads covering [0, extent]^2
// at height z.
func gridMesh(soup []float64, cells int, extent, z float64) []float64 {
	cellSize := extent / float64(cells)
	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			soup = appendQuad(soup, (float64(x)+0.5)*cellSize, (float64(y)+0.5)*cellSize, z, cellSize)
		}
	}
	return soup
}

// Collect all faces reachable from the root.
func collectFaces(tree *Octree) []Face {
	var faces []Face
	tree.Walk(func(node *Node, _ int) bool {
		faces = append(faces, node.Faces...)
		return true
	})
	return faces
}

// Find the nearest hit by testing every face of the tree.
func bruteForceCast(faces []Face, origin, dir types.Vec3) HitTest {
	best := NoHit()
	for index := range faces {
		face := &faces[index]
		if hit, ok := RayTriangle(origin, dir, face.Vertex(0), face.Vertex(1), face.Vertex(2)); ok {
			best.Merge(hit)
		}
	}
	return best
}
