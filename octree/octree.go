package octree

import (
	"time"

	"github.com/achilleasa/meshpick/log"
)

var logger = log.New("octree")

// Octree is a static spatial index over a triangle mesh. It is built once
// by Build and is read-only afterwards, so a built tree may be queried from
// multiple goroutines.
type Octree struct {
	root  *Node
	opts  Options
	stats BuildStats
}

type builder struct {
	opts Options
}

// Build an octree from a flat vertex buffer (3 floats per vertex) and an
// optional index buffer (3 indices per triangle). When indices is nil the
// vertex buffer is treated as a triangle soup.
//
// The input is not validated. NaN coordinates propagate into the tree bounds
// and out-of-range indices panic. Face data is copied so the source buffers
// may be reused once Build returns.
func Build(vertices []float64, indices []uint32, opts ...Option) *Octree {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	start := time.Now()
	b := &builder{opts: options}

	root := &Node{
		Bounds: ComputeAABB(vertices).Expand(options.Margin, maxMarginScale*options.Margin),
	}

	faces := assembleFaces(vertices, indices)
	for _, face := range faces {
		b.insert(face, root, 0)
	}

	tree := &Octree{
		root: root,
		opts: options,
	}
	tree.stats = collectStats(tree, root.trim(), time.Since(start))

	logger.Debugf(
		"octree build time: %d ms, faces: %d, nodes: %d, leafs: %d, maxDepth: %d",
		tree.stats.BuildTime.Nanoseconds()/1e6,
		tree.stats.Faces, tree.stats.Nodes, tree.stats.Leafs, tree.stats.MaxDepth,
	)
	return tree
}

// Insert a face into the subtree rooted at node.
func (b *builder) insert(face Face, node *Node, depth int) {
	node.InsideCount++

	if !node.IsLeaf() {
		if !b.place(face, node, depth) {
			node.Faces = append(node.Faces, face)
		}
		return
	}

	node.Faces = append(node.Faces, face)
	if len(node.Faces) <= b.opts.MaxFacesPerNode || depth >= b.opts.MaxDepth {
		return
	}

	// Split the leaf and push its faces down to the new children. Faces
	// that do not fit inside a single child stay at this node.
	node.split()
	pending := node.Faces
	node.Faces = nil
	for _, pendingFace := range pending {
		if !b.place(pendingFace, node, depth) {
			node.Faces = append(node.Faces, pendingFace)
		}
	}
}

// Insert face into the first child of node that fully contains it. Returns
// false if no child can hold the face.
func (b *builder) place(face Face, node *Node, depth int) bool {
	faceBox := face.AABB()
	for _, child := range node.Children {
		if faceBox.IsInside(child.Bounds) {
			b.insert(face, child, depth+1)
			return true
		}
	}
	return false
}

// Get the root node bounds.
func (t *Octree) Bounds() AABB {
	if t == nil || t.root == nil {
		return AABB{}
	}
	return t.root.Bounds
}

// Get the options used to build the tree.
func (t *Octree) Options() Options {
	return t.opts
}

// Get the number of nodes in the trimmed tree.
func (t *Octree) NodeCount() int {
	return t.stats.Nodes
}

// Get the statistics collected while building the tree.
func (t *Octree) BuildStats() BuildStats {
	return t.stats
}

// Walk visits every node in pre-order, children in creation order. If fn
// returns false the children of the visited node are skipped.
func (t *Octree) Walk(fn func(node *Node, depth int) bool) {
	if t == nil || t.root == nil {
		return
	}
	walk(t.root, 0, fn)
}

func walk(node *Node, depth int, fn func(*Node, int) bool) {
	if !fn(node, depth) {
		return
	}
	for _, child := range node.Children {
		walk(child, depth+1, fn)
	}
}
