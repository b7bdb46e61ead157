package internal

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Find the axis-aligned bounding box of the points.
func GetPointBounds(points []Point) (PointBounds, error) {
	if len(points) == 0 {
		return PointBounds{}, errors.WithStack(ErrEmptyInput)
	}

	rect := r2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return PointBounds{
		MinX: rect.X.Lo,
		MinY: rect.Y.Lo,
		MaxX: rect.X.Hi,
		MaxY: rect.Y.Hi,
	}, nil
}

func (b PointBounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b PointBounds) Height() float64 {
	return b.MaxY - b.MinY
}

func (b PointBounds) Centre() Point {
	return Point{(b.MinX + b.MaxX) * 0.5, (b.MinY + b.MaxY) * 0.5}
}

func (b PointBounds) ContainsPoint(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

func (b PointBounds) Corners() [4]Point {
	return [4]Point{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
	}
}
