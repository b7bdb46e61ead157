package internal

import "math"

const (
	DefaultMargin = 3
	// Roughly sqrt(3)/2. Places the two base vertices so that the triangle is
	// close to equilateral around the bounds centre.
	supraBaseFactor = 0.866
)

// Build the scaffolding triangle that encloses everything within the bounds.
// The vertices sit at distance dMax from the centre of the bounds, where dMax
// is the larger of width and height times the margin: bottom left, bottom
// right, and a top apex. The triangle is counterclockwise.
func GenerateSupraTriangle(bounds PointBounds) Triangle {
	return GenerateSupraTriangleWithMargin(bounds, DefaultMargin)
}

func GenerateSupraTriangleWithMargin(bounds PointBounds, margin float64) Triangle {
	dMax := math.Max(bounds.Width(), bounds.Height()) * margin
	centre := bounds.Centre()

	a := Point{centre.X - supraBaseFactor*dMax, centre.Y - 0.5*dMax}
	b := Point{centre.X + supraBaseFactor*dMax, centre.Y - 0.5*dMax}
	c := Point{centre.X, centre.Y + dMax}

	return NewTriangle(a, b, c)
}

// Strict point-in-triangle test for a counterclockwise triangle. Points on an
// edge are not inside.
func (t Triangle) Encloses(p Point) bool {
	return cross(t.A, t.B, p) > 0 && cross(t.B, t.C, p) > 0 && cross(t.C, t.A, p) > 0
}
