package internal

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Relative tolerance for the collinearity check, as a fraction of the extent
// of the point set.
const collinearEpsilon = 1e-12

// Validate the raw input and return its distinct points, in input order. The
// second return value is the number of duplicates that were dropped.
//
// Every non-finite coordinate is reported, not just the first one.
func prepareInput(points []Point, tolerance float64) ([]Point, int, error) {
	if len(points) == 0 {
		return nil, 0, errors.WithStack(ErrEmptyInput)
	}

	var err error
	for i, p := range points {
		if !p.IsFinite() {
			err = multierr.Append(err, errors.Wrapf(ErrNonFiniteInput, "point %d is %s", i, p))
		}
	}
	if err != nil {
		return nil, 0, err
	}

	var distinct []Point
	if tolerance > 0 {
		distinct = dedupeWithTolerance(points, tolerance)
	} else {
		distinct = dedupeExact(points)
	}
	dropped := len(points) - len(distinct)

	if len(distinct) < 3 {
		return nil, dropped, errors.Wrapf(ErrDegenerateInput, "need at least 3 distinct points, got %d", len(distinct))
	}
	if allCollinear(distinct) {
		return nil, dropped, errors.Wrapf(ErrDegenerateInput, "all %d points are collinear", len(distinct))
	}
	return distinct, dropped, nil
}

func dedupeExact(points []Point) []Point {
	seen := make(PointSet, len(points))
	distinct := make([]Point, 0, len(points))
	for _, p := range points {
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		distinct = append(distinct, p)
	}
	return distinct
}

type gridCell struct {
	x, y int64
}

// Bucket points into cells of the tolerance size. Two points within tolerance
// of each other are always in the same or adjacent cells, so only nine cells
// need checking per point.
func dedupeWithTolerance(points []Point, tolerance float64) []Point {
	grid := make(map[gridCell][]Point)
	cellOf := func(p Point) gridCell {
		return gridCell{int64(math.Floor(p.X / tolerance)), int64(math.Floor(p.Y / tolerance))}
	}

	distinct := make([]Point, 0, len(points))
outer:
	for _, p := range points {
		cell := cellOf(p)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for _, q := range grid[gridCell{cell.x + dx, cell.y + dy}] {
					if p.ApproxEquals(q, tolerance) {
						continue outer
					}
				}
			}
		}
		grid[cell] = append(grid[cell], p)
		distinct = append(distinct, p)
	}
	return distinct
}

// Check whether all points lie on one line. The line is taken through the
// first point and the point furthest from it, which keeps the direction as
// well conditioned as possible.
func allCollinear(points []Point) bool {
	origin := points[0]
	far := origin
	var farDistance float64
	for _, p := range points[1:] {
		if d := origin.Distance(p); d > farDistance {
			far, farDistance = p, d
		}
	}
	if farDistance == 0 {
		return true
	}

	threshold := collinearEpsilon * farDistance
	for _, p := range points {
		// cross/|far-origin| is the distance from p to the line
		if math.Abs(cross(origin, far, p))/farDistance > threshold {
			return false
		}
	}
	return true
}
