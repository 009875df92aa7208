package octree

import "time"

// BuildStats summarizes the shape of a built tree.
type BuildStats struct {
	// Total number of faces stored in the tree.
	Faces int

	// Number of nodes left after trimming.
	Nodes int

	// Number of leaf nodes.
	Leafs int

	// Depth of the deepest node (the root is at depth 0).
	MaxDepth int

	// Faces stored per tree depth. Straddling faces are counted at the
	// depth of the node that keeps them.
	FacesPerDepth []int

	BuildTime time.Duration
}

// RayStats counts the primitive tests performed by a single ray query.
type RayStats struct {
	TestedBoxes     int
	TestedTriangles int
}

func collectStats(tree *Octree, nodeCount int, buildTime time.Duration) BuildStats {
	stats := BuildStats{
		Nodes:     nodeCount,
		BuildTime: buildTime,
	}

	tree.Walk(func(node *Node, depth int) bool {
		if node.IsLeaf() {
			stats.Leafs++
		}
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		for len(stats.FacesPerDepth) <= depth {
			stats.FacesPerDepth = append(stats.FacesPerDepth, 0)
		}
		stats.FacesPerDepth[depth] += len(node.Faces)
		stats.Faces += len(node.Faces)
		return true
	})

	return stats
}
