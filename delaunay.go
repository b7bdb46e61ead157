// Delaunay triangulation of 2D point sets for Go.
//
// This package converts an arbitrary set of points into a set of triangles
// whose vertices are the original points, such that no point lies inside the
// circumcircle of any triangle. It uses the incremental Bowyer-Watson
// construction.
package delaunay

import (
	"context"

	"github.com/osuushi/delaunay/internal"
	"go.uber.org/zap"
)

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type PointBounds = internal.PointBounds
type Triangulation = internal.Triangulation
type Stats = internal.Stats
type Options = internal.Options

var (
	ErrEmptyInput        = internal.ErrEmptyInput
	ErrDegenerateInput   = internal.ErrDegenerateInput
	ErrNumericDegeneracy = internal.ErrNumericDegeneracy
	ErrNonFiniteInput    = internal.ErrNonFiniteInput
	ErrInvalidOptions    = internal.ErrInvalidOptions
)

type Option func(*internal.Options)

// Scale the scaffolding triangle. The default of 3 is what the algorithm has
// always used. Values below 1.5 are rejected.
func WithMargin(margin float64) Option {
	return func(o *internal.Options) {
		o.Margin = margin
	}
}

// Merge input points that are within tolerance of each other on both axes.
// By default only exactly equal points are merged.
func WithTolerance(tolerance float64) Option {
	return func(o *internal.Options) {
		o.Tolerance = tolerance
	}
}

// Log progress at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *internal.Options) {
		o.Logger = logger
	}
}

// Triangulate a set of points.
//
// Duplicate points are ignored. At least three distinct points are required,
// and they must not all be collinear. The triangles are counterclockwise, and
// their order is not meaningful.
func Triangulate(points []Point, opts ...Option) (Triangulation, error) {
	return TriangulateContext(context.Background(), points, opts...)
}

// Like Triangulate, but gives up between point insertions once the context is
// done.
func TriangulateContext(ctx context.Context, points []Point, opts ...Option) (Triangulation, error) {
	triangulator, err := NewTriangulator(opts...)
	if err != nil {
		return nil, err
	}
	return triangulator.Triangulate(ctx, points)
}

// A Triangulator can be reused across runs, and reports statistics about the
// last one. It is not safe for concurrent use.
type Triangulator struct {
	inner *internal.Triangulator
}

func NewTriangulator(opts ...Option) (*Triangulator, error) {
	options := internal.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	inner, err := internal.NewTriangulator(options)
	if err != nil {
		return nil, err
	}
	return &Triangulator{inner}, nil
}

func (t *Triangulator) Triangulate(ctx context.Context, points []Point) (Triangulation, error) {
	return t.inner.Triangulate(ctx, points)
}

func (t *Triangulator) Stats() Stats {
	return t.inner.Stats()
}

// Find the axis-aligned bounds of a point set.
func GetPointBounds(points []Point) (PointBounds, error) {
	return internal.GetPointBounds(points)
}

// Build a triangle that strictly encloses the bounds, with the default margin.
func GenerateSupraTriangle(bounds PointBounds) Triangle {
	return internal.GenerateSupraTriangle(bounds)
}

func NewTriangle(a, b, c Point) Triangle {
	return internal.NewTriangle(a, b, c)
}
