package internal

import (
	"math"

	"github.com/golang/geo/r3"
)

// Geometric predicates that never get the sign wrong.
//
// Each one first evaluates its determinant in floating point, along with a
// bound on the rounding error. When the value clears the bound, its sign is
// correct. Otherwise the determinant is recomputed with big.Float at maximum
// precision, where sums and products of float64 values are exact. Nearly all
// calls take the fast path. Only points that are close to collinear or
// cocircular pay for the exact one.

const (
	// Half an ulp of 1.
	roundoff = 1.0 / (1 << 53)
	// Error bounds on the floating point determinants, from Shewchuk's "Adaptive
	// Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates".
	orientErrorBound   = (3 + 16*roundoff) * roundoff
	inCircleErrorBound = (10 + 96*roundoff) * roundoff
)

// Sign of the turn a, b, c: 1 for counterclockwise, -1 for clockwise, and 0
// when the points are exactly collinear.
func orient(a, b, c Point) int {
	left := (a.X - c.X) * (b.Y - c.Y)
	right := (a.Y - c.Y) * (b.X - c.X)
	det := left - right
	bound := orientErrorBound * (math.Abs(left) + math.Abs(right))
	if det > bound {
		return 1
	}
	if det < -bound {
		return -1
	}
	return exactOrient(a, b, c)
}

func exactOrient(a, b, c Point) int {
	pa, pb, pc := precisePoint(a), precisePoint(b), precisePoint(c)
	return pb.Sub(pa).Cross(pc.Sub(pa)).Z.Sign()
}

// Sign of the incircle determinant for d against the counterclockwise triangle
// a, b, c: 1 when d is strictly inside the circumcircle, -1 when it is strictly
// outside, and 0 when all four points are exactly cocircular. The sign flips
// for a clockwise triangle.
func inCircle(a, b, c, d Point) int {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	aLift := adx*adx + ady*ady
	bLift := bdx*bdx + bdy*bdy
	cLift := cdx*cdx + cdy*cdy

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*aLift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*bLift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*cLift
	bound := inCircleErrorBound * permanent
	if det > bound {
		return 1
	}
	if det < -bound {
		return -1
	}
	return exactInCircle(a, b, c, d)
}

// The incircle determinant is the triple product of the three points lifted
// onto the paraboloid z = x² + y², relative to d.
func exactInCircle(a, b, c, d Point) int {
	pd := precisePoint(d)
	lift := func(p Point) r3.PreciseVector {
		v := precisePoint(p).Sub(pd)
		v.Z = v.Dot(v)
		return v
	}
	la, lb, lc := lift(a), lift(b), lift(c)
	return la.Dot(lb.Cross(lc)).Sign()
}

func precisePoint(p Point) r3.PreciseVector {
	return r3.PreciseVectorFromVector(r3.Vector{X: p.X, Y: p.Y})
}
