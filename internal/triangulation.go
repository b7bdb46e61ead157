package internal

import "math"

// The distinct vertices of the triangulation, in order of first appearance.
func (tl Triangulation) Points() []Point {
	seen := make(PointSet)
	var points []Point
	for _, tri := range tl {
		for _, p := range tri.Vertices() {
			if seen.Contains(p) {
				continue
			}
			seen.Add(p)
			points = append(points, p)
		}
	}
	return points
}

// The distinct edges of the triangulation. Each edge shared by two triangles
// appears once, in the direction of the first triangle that has it.
func (tl Triangulation) Edges() []Edge {
	seen := make(map[EdgeKey]struct{})
	var edges []Edge
	for _, tri := range tl {
		for _, e := range tri.Edges() {
			key := e.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Edges that belong to exactly one triangle. For a complete triangulation this
// is the convex hull.
func (tl Triangulation) BoundaryEdges() []Edge {
	counts := make(map[EdgeKey]int)
	for _, tri := range tl {
		for _, e := range tri.Edges() {
			counts[e.Key()]++
		}
	}
	var edges []Edge
	for _, tri := range tl {
		for _, e := range tri.Edges() {
			if counts[e.Key()] == 1 {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

func (tl Triangulation) Keys() map[TriangleKey]struct{} {
	keys := make(map[TriangleKey]struct{}, len(tl))
	for _, tri := range tl {
		keys[tri.Key()] = struct{}{}
	}
	return keys
}

func (tl Triangulation) Area() float64 {
	var area float64
	for _, tri := range tl {
		area += tri.Area()
	}
	return area
}

func (tl Triangulation) Bounds() (PointBounds, error) {
	return GetPointBounds(tl.Points())
}

// The smallest distance by which any point sits inside a circumcircle of a
// triangle it is not a vertex of. Zero or positive means the Delaunay property
// holds for the given points. Negative values measure the worst violation.
func (tl Triangulation) DelaunayMargin(points []Point) float64 {
	margin := math.Inf(1)
	for _, tri := range tl {
		for _, p := range points {
			if tri.HasVertex(p) {
				continue
			}
			margin = math.Min(margin, p.Distance(tri.Circumcentre)-tri.Circumradius)
		}
	}
	return margin
}
