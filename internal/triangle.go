package internal

import (
	"fmt"
	"math"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

func NewTriangle(a, b, c Point) Triangle {
	centre, radius := Circumcircle(a, b, c)
	return Triangle{
		A:            a,
		B:            b,
		C:            c,
		Circumcentre: centre,
		Circumradius: radius,
	}
}

// Compute the circle passing through all three points. The computation is done
// relative to a, which keeps precision when the points are far from the
// origin but close to each other.
//
// Collinear or coincident points have no circumcircle. In that case the centre
// is at infinity and the radius is +Inf, so that no point is ever contained.
func Circumcircle(a, b, c Point) (centre Point, radius float64) {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		return Point{math.Inf(1), math.Inf(1)}, math.Inf(1)
	}

	bLenSq := bx*bx + by*by
	cLenSq := cx*cx + cy*cy
	ux := (cy*bLenSq - by*cLenSq) / d
	uy := (bx*cLenSq - cx*bLenSq) / d

	return Point{a.X + ux, a.Y + uy}, math.Hypot(ux, uy)
}

// Strict circumcircle containment, evaluated exactly from the vertices. A point
// exactly on the circle is not contained, and a degenerate triangle contains
// nothing.
func (t Triangle) Contains(p Point) bool {
	return orient(t.A, t.B, t.C)*inCircle(t.A, t.B, t.C, p) > 0
}

// The three edges, in vertex order: AB, BC, CA.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A.Equals(p) || t.B.Equals(p) || t.C.Equals(p)
}

func (t Triangle) HasEdge(e Edge) bool {
	for _, edge := range t.Edges() {
		if edge.Equals(e) {
			return true
		}
	}
	return false
}

func (t Triangle) Key() TriangleKey {
	key := TriangleKey{t.A, t.B, t.C}
	sort.Slice(key[:], func(i, j int) bool { return key[i].Less(key[j]) })
	return key
}

// Triangles are equal if they have the same vertices, in any order.
func (t Triangle) Equals(other Triangle) bool {
	return t.Key() == other.Key()
}

// Positive for counterclockwise triangles, negative for clockwise ones.
func (t Triangle) SignedArea() float64 {
	return cross(t.A, t.B, t.C) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) IsCCW() bool {
	return orient(t.A, t.B, t.C) > 0
}

// A triangle is degenerate when its circumcircle could not be computed.
func (t Triangle) IsDegenerate() bool {
	return math.IsNaN(t.Circumradius) || math.IsInf(t.Circumradius, 0)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle %s <A: %s, B: %s, C: %s, O: %s, r: %g>",
		t.DbgName(),
		t.A,
		t.B,
		t.C,
		t.Circumcentre,
		t.Circumradius,
	)
}

func (t Triangle) DbgName() string {
	name := dbg.Name(t.Key())
	if t.IsDegenerate() {
		name = aurora.Red(name).String()
	} else if t.IsCCW() {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Cyan(name).String()
	}
	return name
}
