package internal

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Incremental Bowyer-Watson triangulation.
//
// Points are inserted one at a time into a working triangulation which starts
// out as a single supra triangle enclosing all the input. For each point, every
// triangle whose circumcircle strictly contains the point is "bad". The bad
// triangles form a star-shaped cavity around the point. We remove them, and fan
// new triangles from the point to every edge on the boundary of the cavity.
// Once every point is in, triangles that still touch a supra vertex are thrown
// away.
//
// Internally, vertices are indices into a single slice holding the distinct
// input points followed by the three supra vertices. This makes edge and
// vertex comparisons integer comparisons, and makes "touches the supra
// triangle" a bounds check on the index.

// An edge of the working set, as vertex indices. The direction is preserved,
// since fanning from the boundary in its original direction keeps every new
// triangle counterclockwise.
type indexEdge [2]int

// Direction independent form of indexEdge, for use as a map key.
func (e indexEdge) key() indexEdge {
	if e[1] < e[0] {
		return indexEdge{e[1], e[0]}
	}
	return e
}

type indexTriangle struct {
	v [3]int
}

func (t *indexTriangle) edges() [3]indexEdge {
	return [3]indexEdge{{t.v[0], t.v[1]}, {t.v[1], t.v[2]}, {t.v[2], t.v[0]}}
}

// Counters for a single run. Useful for logging and for sanity checks in
// tests.
type Stats struct {
	Points           int // distinct points inserted
	Duplicates       int // input points dropped as duplicates
	TrianglesCreated int
	TrianglesRemoved int
	PeakWorkingSet   int
	Pruned           int // triangles dropped for touching the supra triangle
}

// A Triangulator holds the scratch state of a run, so that it can be reused
// without reallocating. It is not safe for concurrent use.
type Triangulator struct {
	opts Options
	log  *zap.Logger

	points []Point
	n      int // number of input points at the front of points
	supra  Triangle
	tris   []indexTriangle
	stats  Stats

	// Scratch space reused across insertions
	bad        []int
	edgeCounts map[indexEdge]int
	edgeOrder  []indexEdge
}

func NewTriangulator(opts Options) (*Triangulator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Triangulator{
		opts:       opts,
		log:        opts.Logger,
		edgeCounts: make(map[indexEdge]int),
	}, nil
}

// Triangulate the points. Input errors (empty, non-finite or degenerate) are
// reported before any work is done. If the context is cancelled, the run stops
// between two insertions and returns the context's error. No partial result is
// ever returned.
func (t *Triangulator) Triangulate(ctx context.Context, input []Point) (result Triangulation, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	points, dropped, err := prepareInput(input, t.opts.Tolerance)
	if err != nil {
		return nil, err
	}
	bounds, err := GetPointBounds(points)
	if err != nil {
		return nil, err
	}
	t.reset(points, bounds)
	t.stats.Duplicates = dropped

	t.log.Debug("starting triangulation",
		zap.Int("points", t.n),
		zap.Int("duplicates", dropped),
		zap.Stringer("supra", t.supra),
	)

	for i := 0; i < t.n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "triangulation stopped after %d of %d points", i, t.n)
		}
		t.insert(i)
	}

	result = t.prune()
	if len(result) == 0 {
		// Every triangle touches the supra triangle. That happens when the input
		// is so close to collinear that each circumcircle reaches a supra vertex.
		throw(ErrDegenerateInput, "no triangles left after removing the supra triangle with margin %v", t.opts.Margin)
	}

	t.log.Debug("finished triangulation",
		zap.Int("triangles", len(result)),
		zap.Int("pruned", t.stats.Pruned),
		zap.Int("peakWorkingSet", t.stats.PeakWorkingSet),
	)
	return result, nil
}

// Counters from the most recent run.
func (t *Triangulator) Stats() Stats {
	return t.stats
}

// The supra triangle used by the most recent run.
func (t *Triangulator) Supra() Triangle {
	return t.supra
}

func (t *Triangulator) reset(points []Point, bounds PointBounds) {
	t.n = len(points)
	t.supra = GenerateSupraTriangleWithMargin(bounds, t.opts.Margin)
	for _, corner := range bounds.Corners() {
		if !t.supra.A.IsFinite() || !t.supra.B.IsFinite() || !t.supra.C.IsFinite() || !t.supra.Encloses(corner) {
			fatalf("supra triangle %s does not enclose %s, coordinates are too large", t.supra, corner)
		}
	}

	t.points = make([]Point, 0, t.n+3)
	t.points = append(t.points, points...)
	t.points = append(t.points, t.supra.A, t.supra.B, t.supra.C)

	// Each insertion adds a net two triangles
	t.tris = make([]indexTriangle, 0, 2*t.n+1)
	t.stats = Stats{Points: t.n}
	t.addTriangle(t.n, t.n+1, t.n+2)
}

// Insert the point at index p into the working set.
func (t *Triangulator) insert(p int) {
	point := t.points[p]

	// Find the bad triangles. Indices are collected in ascending order, which
	// the removal step below relies on. The incircle test is exact, so a point
	// on a circumcircle is never inside it, whichever triangle is asking.
	t.bad = t.bad[:0]
	for i := range t.tris {
		v := &t.tris[i].v
		if inCircle(t.points[v[0]], t.points[v[1]], t.points[v[2]], point) > 0 {
			t.bad = append(t.bad, i)
		}
	}
	if len(t.bad) == 0 {
		// The point is inside the supra triangle, so it is inside some triangle
		// of the working set, and therefore strictly inside its circumcircle.
		throw(ErrNumericDegeneracy, "point %d %s is outside every circumcircle", p, point)
	}

	// Find the boundary of the cavity. An edge shared by two bad triangles is
	// interior to the cavity, so only edges seen exactly once survive. The
	// order of first appearance is kept so that output is deterministic.
	clear(t.edgeCounts)
	t.edgeOrder = t.edgeOrder[:0]
	for _, i := range t.bad {
		for _, edge := range t.tris[i].edges() {
			key := edge.key()
			if t.edgeCounts[key] == 0 {
				t.edgeOrder = append(t.edgeOrder, edge)
			}
			t.edgeCounts[key]++
		}
	}

	t.removeBad()

	boundary := 0
	for _, edge := range t.edgeOrder {
		if t.edgeCounts[edge.key()] != 1 {
			continue
		}
		boundary++
		t.addTriangle(p, edge[0], edge[1])
	}

	if ce := t.log.Check(zap.DebugLevel, "inserted point"); ce != nil {
		ce.Write(
			zap.Int("index", p),
			zap.Stringer("point", point),
			zap.Int("bad", len(t.bad)),
			zap.Int("boundary", boundary),
			zap.Int("workingSet", len(t.tris)),
		)
	}
}

// Drop every triangle listed in t.bad, preserving the order of the rest.
func (t *Triangulator) removeBad() {
	kept := t.tris[:0]
	next := 0
	for i, tri := range t.tris {
		if next < len(t.bad) && t.bad[next] == i {
			next++
			continue
		}
		kept = append(kept, tri)
	}
	t.tris = kept
	t.stats.TrianglesRemoved += len(t.bad)
}

// This is pulled out so that it's easy to add instrumentation. Every triangle
// the algorithm builds must be strictly counterclockwise. The cavity around an
// inserted point is star shaped, so this only fails if the working set was
// already broken.
func (t *Triangulator) addTriangle(a, b, c int) {
	pa, pb, pc := t.points[a], t.points[b], t.points[c]
	if orient(pa, pb, pc) <= 0 {
		throw(ErrNumericDegeneracy, "triangle %s, %s, %s is not counterclockwise", pa, pb, pc)
	}

	t.tris = append(t.tris, indexTriangle{v: [3]int{a, b, c}})
	t.stats.TrianglesCreated++
	if len(t.tris) > t.stats.PeakWorkingSet {
		t.stats.PeakWorkingSet = len(t.tris)
	}
}

// Remove triangles touching a supra vertex and convert the rest to value
// triangles. Supra vertices are the only indices >= n.
func (t *Triangulator) prune() Triangulation {
	result := make(Triangulation, 0, len(t.tris))
	for _, tri := range t.tris {
		if tri.v[0] >= t.n || tri.v[1] >= t.n || tri.v[2] >= t.n {
			t.stats.Pruned++
			continue
		}
		out := NewTriangle(t.points[tri.v[0]], t.points[tri.v[1]], t.points[tri.v[2]])
		if out.IsDegenerate() {
			throw(ErrNumericDegeneracy, "triangle %s, %s, %s has no finite circumcircle", out.A, out.B, out.C)
		}
		result = append(result, out)
	}
	return result
}
