package octree

import "github.com/achilleasa/meshpick/types"

// Child octants are created in this order. The order is part of the tree
// contract: face placement picks the first containing child and traversal
// visits children in the same order.
var octantRefs = [8]types.Vec3{
	{0, 0, 0},
	{0, 0, 1},
	{0, 1, 0},
	{0, 1, 1},
	{1, 0, 0},
	{1, 0, 1},
	{1, 1, 0},
	{1, 1, 1},
}

// Node is an octree node. A node with no children is a leaf.
type Node struct {
	Bounds AABB

	// Child nodes in octant creation order. After trimming, only children
	// that received at least one face remain.
	Children []*Node

	// Faces stored at this level. For inner nodes these are the faces that
	// straddle child boundaries.
	Faces []Face

	// Number of faces inserted at or beneath this node.
	InsideCount uint32
}

// Returns true if this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Split the node bounds into 8 octants and attach an empty child for each.
func (n *Node) split() {
	half := n.Bounds.Size().Mul(0.5)

	n.Children = make([]*Node, len(octantRefs))
	for index, ref := range octantRefs {
		childMin := n.Bounds.Min.Add(half.MulVec(ref))
		n.Children[index] = &Node{
			Bounds: AABB{
				Min: childMin,
				Max: childMin.Add(half),
			},
		}
	}
}

// Drop child subtrees that never received a face and return the number of
// nodes left in this subtree. Inner nodes whose children are all dropped
// become leaves holding their residual faces.
func (n *Node) trim() int {
	if n.IsLeaf() {
		return 1
	}

	count := 1
	kept := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		childCount := child.trim()
		if child.InsideCount > 0 {
			kept = append(kept, child)
			count += childCount
		}
	}

	if len(kept) == 0 {
		n.Children = nil
	} else {
		n.Children = kept
	}
	return count
}
