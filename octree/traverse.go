package octree

import "github.com/achilleasa/meshpick/types"

// Cast a ray and return the world-space point of the nearest hit. The
// boolean result is false if the ray misses the mesh.
func (t *Octree) TestRay(origin, dir types.Vec3) (types.Vec3, bool, error) {
	hit, _, err := t.CastRay(origin, dir)
	if err != nil || !hit.IsHit() {
		return types.Vec3{}, false, err
	}
	return origin.Add(dir.Mul(hit.T)), true, nil
}

// Cast a ray and return the nearest hit along with the number of box and
// triangle tests performed. A miss is reported as a HitTest whose IsHit
// method returns false.
//
// If the ray misses the root bounds no triangle is tested. Children are
// visited in creation order; a child is skipped when its entry distance is
// beyond the nearest hit found so far at the current node.
func (t *Octree) CastRay(origin, dir types.Vec3) (HitTest, RayStats, error) {
	var stats RayStats
	if t == nil || t.root == nil {
		return NoHit(), stats, ErrNotBuilt
	}

	stats.TestedBoxes++
	if _, ok := RayBox(origin, dir, t.root.Bounds); !ok {
		return NoHit(), stats, nil
	}

	return castInNode(t.root, origin, dir, &stats), stats, nil
}

// Recursion depth is bounded by Options.MaxDepth since nodes at that depth
// never split.
func castInNode(node *Node, origin, dir types.Vec3, stats *RayStats) HitTest {
	best := NoHit()

	for index := range node.Faces {
		face := &node.Faces[index]
		stats.TestedTriangles++
		if hit, ok := RayTriangle(origin, dir, face.Vertex(0), face.Vertex(1), face.Vertex(2)); ok {
			best.Merge(hit)
		}
	}

	for _, child := range node.Children {
		stats.TestedBoxes++
		boxHit, ok := RayBox(origin, dir, child.Bounds)
		if !ok {
			continue
		}
		if best.IsHit() && boxHit.T > best.T {
			continue
		}
		best.Merge(castInNode(child, origin, dir, stats))
	}

	return best
}
