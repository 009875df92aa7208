package mesh

// A Group is a named run of consecutive triangles, declared with the "o" or
// "g" wavefront statements.
type Group struct {
	Name string

	// Index of the first triangle and number of triangles in the group.
	FirstFace int
	FaceCount int
}

// A Mesh holds indexed triangle geometry in the flat layout expected by
// octree.Build.
type Mesh struct {
	// Vertex coordinates, 3 floats per vertex.
	Vertices []float64

	// Triangle vertex indices, 3 per triangle. Never nil for a parsed mesh;
	// octree.Build treats a nil index buffer as a triangle soup.
	Indices []uint32

	Groups []Group
}

// Get the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// Get the number of triangles.
func (m *Mesh) FaceCount() int {
	return len(m.Indices) / 3
}
