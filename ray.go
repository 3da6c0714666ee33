package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is an origin plus a direction. Dir does not have to be unit length:
// every parametric t this package reports is in units of Dir's own length,
// and a hit point is recovered as Origin + Dir*t.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// Direction components below this magnitude count as parallel to the
// matching slab planes.
const slabEps = 1e-7

// IntersectSphere reports how many times the forward half-line (t >= 0)
// crosses the surface of the sphere (the shell, not the volume).
//
//	hits == 2: the ray enters at t0 and exits at t1, t0 <= t1
//	hits == 1: the origin is inside the sphere and t0 is the exit point,
//	           or the ray is tangent and t0 is the touch point
//	hits == 0: no intersection; t0 and t1 are undefined
func (r Ray) IntersectSphere(s Sphere) (hits int, t0, t1 float64) {
	// Substituting the ray into the sphere equation gives the quadratic
	// Q(t) = a*t^2 + 2*b*t + c.
	offset := r.Origin.Sub(s.Center)
	a := r.Dir.LenSqr()
	b := offset.Dot(r.Dir)
	c := offset.LenSqr() - s.Radius*s.Radius

	// No real roots, no intersection.
	discriminant := b*b - a*c
	switch {
	case discriminant < 0:
		return 0, 0, 0

	case discriminant > 0:
		root := math.Sqrt(discriminant)
		invA := 1 / a
		t0 = (-b - root) * invA
		t1 = (-b + root) * invA
		// t0 < t1 since a > 0.
		switch {
		case t0 >= 0:
			return 2, t0, t1
		case t1 >= 0:
			// Origin inside the sphere: only the exit point is ahead.
			return 1, t1, t1
		default:
			// Sphere entirely behind the origin.
			return 0, 0, 0
		}

	default:
		// Tangent.
		t0 = -b / a
		if t0 >= 0 {
			return 1, t0, t0
		}
		return 0, 0, 0
	}
}

// slabInterval is the Kay-Kajiya slab test: narrow a running [tIn, tOut]
// interval one axis pair at a time, in X, Y, Z order, rejecting as soon as
// the interval inverts or falls entirely behind the origin.
func (r Ray) slabInterval(box AABox) (tIn, tOut float64, ok bool) {
	tIn = -math.MaxFloat64
	tOut = math.MaxFloat64

	for i := 0; i < 3; i++ {
		if math.Abs(r.Dir[i]) < slabEps {
			// Parallel to this slab: a hit is only possible if the
			// origin already lies between the two planes.
			if r.Origin[i] < box.Min[i] || r.Origin[i] > box.Max[i] {
				return 0, 0, false
			}
			continue
		}

		t0 := (box.Min[i] - r.Origin[i]) / r.Dir[i]
		t1 := (box.Max[i] - r.Origin[i]) / r.Dir[i]
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tIn {
			tIn = t0
		}
		if t1 < tOut {
			tOut = t1
		}
		if tIn > tOut || tOut < 0 {
			return 0, 0, false
		}
	}

	return tIn, tOut, true
}

// IntersectAABox reports whether the forward half-line crosses the box,
// with the parametric entry and exit values.
//
//	hits == 2: the ray enters at tIn and exits at tOut
//	hits == 1: the origin is inside the box; tIn == tOut is the exit point
//	hits == 0: no intersection; tIn and tOut are undefined
func (r Ray) IntersectAABox(box AABox) (hits int, tIn, tOut float64) {
	if box.Empty {
		return 0, 0, 0
	}

	tIn, tOut, ok := r.slabInterval(box)
	if !ok {
		return 0, 0, 0
	}

	if tIn < 0 {
		// Origin inside the box: only the exit crossing is ahead.
		return 1, tOut, tOut
	}
	return 2, tIn, tOut
}
