package octree

import "github.com/achilleasa/meshpick/types"

// A Face is a triangle stored as three xyz vertices. Faces are copied out
// of the source buffers when the tree is built and never alias them.
type Face [9]float64

// Get vertex 0, 1 or 2 of the face.
func (f *Face) Vertex(index int) types.Vec3 {
	return types.Vec3At(f[:], index*3)
}

// Get the face bounding box.
func (f *Face) AABB() AABB {
	return ComputeAABB(f[:])
}

// Assemble the face list for a mesh. If indices is nil, vertices is treated
// as a triangle soup where every 9 consecutive floats form one face.
// Otherwise each group of 3 indices selects the face vertices. Trailing
// values that do not form a complete face are ignored.
func assembleFaces(vertices []float64, indices []uint32) []Face {
	if indices == nil {
		faces := make([]Face, 0, len(vertices)/9)
		for offset := 0; offset+9 <= len(vertices); offset += 9 {
			var face Face
			copy(face[:], vertices[offset:offset+9])
			faces = append(faces, face)
		}
		return faces
	}

	faces := make([]Face, 0, len(indices)/3)
	for offset := 0; offset+3 <= len(indices); offset += 3 {
		var face Face
		for vIndex := 0; vIndex < 3; vIndex++ {
			src := int(indices[offset+vIndex]) * 3
			copy(face[vIndex*3:vIndex*3+3], vertices[src:src+3])
		}
		faces = append(faces, face)
	}
	return faces
}
