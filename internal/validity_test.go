package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of a point set is valid. The rules are:
// 1. Every vertex of every triangle is one of the input points.
// 2. No triangle appears twice, in any vertex order.
// 3. Every triangle is counterclockwise, so none has zero area.
// 4. Every edge belongs to at most two triangles.
// 5. No input point lies inside the circumcircle of a triangle it is not a
//    vertex of, up to a tolerance relative to the size of the point set.
func AssertValidDelaunay(t *testing.T, points []Point, triangles Triangulation) {
	t.Helper()
	require.NotEmpty(t, triangles, "triangulation is empty")

	inputPoints := NewPointSet(points...)
	for _, tri := range triangles {
		for _, p := range tri.Vertices() {
			require.True(t, inputPoints.Contains(p), "vertex %s of %s is not an input point", p, tri)
		}
	}

	assert.Len(t, triangles.Keys(), len(triangles), "triangulation has duplicate triangles")

	edgeCounts := make(map[EdgeKey]int)
	for _, tri := range triangles {
		require.True(t, tri.IsCCW(), "clockwise or flat triangle: %s", tri)
		for _, e := range tri.Edges() {
			edgeCounts[e.Key()]++
		}
	}
	for key, count := range edgeCounts {
		assert.LessOrEqual(t, count, 2, "edge %v is shared by %d triangles", key, count)
	}

	bounds, err := GetPointBounds(points)
	require.NoError(t, err)
	scale := math.Max(bounds.Width(), bounds.Height())
	assert.GreaterOrEqual(t, triangles.DelaunayMargin(points), -Epsilon*scale, "a point lies inside a circumcircle")
}

// For points in general position, a complete triangulation covers the convex
// hull, and has 2n - 2 - h triangles.
func AssertCoversHull(t *testing.T, points []Point, triangles Triangulation) {
	t.Helper()
	hull := convexHull(points)
	distinct := len(NewPointSet(points...))
	assert.Len(t, triangles, 2*distinct-2-len(hull), "triangle count for %d points with %d on the hull", distinct, len(hull))
	assert.InDelta(t, polygonArea(hull), triangles.Area(), Epsilon*polygonArea(hull))
	assert.Len(t, triangles.BoundaryEdges(), len(hull), "boundary should be the convex hull")
}

// Andrew's monotone chain. Collinear points on the hull are left out. The
// result is counterclockwise.
func convexHull(points []Point) []Point {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	var hull []Point
	for pass := 0; pass < 2; pass++ {
		start := len(hull)
		for _, p := range sorted {
			for len(hull) >= start+2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		// The last point of each chain is the first point of the next
		hull = hull[:len(hull)-1]
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return hull
}

// Fan from the first vertex, so that coordinates far from the origin don't
// cost precision.
func polygonArea(points []Point) float64 {
	var area float64
	for i := 1; i+1 < len(points); i++ {
		area += cross(points[0], points[i], points[i+1])
	}
	return math.Abs(area) / 2
}
