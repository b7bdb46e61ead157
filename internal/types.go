package internal

type Point struct {
	X float64
	Y float64
}

// Edges are unordered. Edge{a, b} and Edge{b, a} describe the same edge, and
// Key() gives the canonical form for use in maps.
type Edge struct {
	A, B Point
}

// The circumcircle is computed once, when the triangle is built with
// NewTriangle. Building a Triangle literal by hand leaves it zeroed.
type Triangle struct {
	A, B, C      Point
	Circumcentre Point
	Circumradius float64
}

type PointBounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// The order of triangles in a triangulation carries no meaning.
type Triangulation []Triangle

type PointSet map[Point]struct{}

// Canonical map keys. Vertices are sorted with Point.Less so that the same
// edge or triangle always produces the same key.
type EdgeKey [2]Point
type TriangleKey [3]Point
