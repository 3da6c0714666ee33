package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane is a geometric plane stored as a unit normal and a signed offset.
// Every point P on the plane satisfies dot(P, Normal) = Offset.
//
// Note that Offset is the negative of the classic plane constant D found in
// some texts (which write N·P + D = 0), so implementations storing D have
// the opposite sign from this one.
type Plane struct {
	Normal mgl64.Vec3
	Offset float64
}

// Cross products with a squared length below this are treated as parallel
// planes.
const planeParallelEps = 1e-10

// PlaneFromPoints creates the plane that the three given points lie on.
// The points must not be collinear. The normal follows the right-hand rule
// around p1 -> p2 -> p3.
func PlaneFromPoints(p1, p2, p3 mgl64.Vec3) Plane {
	normal := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	return Plane{Normal: normal, Offset: p1.Dot(normal)}
}

// PlaneFromNormalPoint creates the plane with the given unit normal on
// which pt resides.
func PlaneFromNormalPoint(normal, pt mgl64.Vec3) Plane {
	return Plane{Normal: normal, Offset: pt.Dot(normal)}
}

// PlaneFromNormalOffset creates the plane with the given unit normal and
// offset constant.
func PlaneFromNormalOffset(normal mgl64.Vec3, offset float64) Plane {
	return Plane{Normal: normal, Offset: offset}
}

// DistanceTo returns the signed distance from pt to the plane, positive on
// the side the normal points toward.
func (p Plane) DistanceTo(pt mgl64.Vec3) float64 {
	return p.Normal.Dot(pt) - p.Offset
}

// GenerateU returns a unit vector lying in the plane. The helper axis
// crossed against the normal is picked from whichever of the normal's X or
// Z components is larger, so the result stays well conditioned for any
// normal orientation.
func (p Plane) GenerateU() mgl64.Vec3 {
	if math.Abs(p.Normal[0]) > math.Abs(p.Normal[2]) {
		return mgl64.Vec3{-p.Normal[1], p.Normal[0], 0}.Normalize()
	}
	return mgl64.Vec3{0, -p.Normal[2], p.Normal[1]}.Normalize()
}

// GenerateUV returns a right-handed orthonormal basis {u, v} spanning the
// plane.
func (p Plane) GenerateUV() (u, v mgl64.Vec3) {
	u = p.GenerateU()
	v = u.Cross(p.Normal)
	return u, v
}

// Project converts a 3D point to 2D coordinates in the in-plane basis
// {u, v}, as produced by GenerateUV.
func Project(u, v, pt mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{u.Dot(pt), v.Dot(pt)}
}

// Unproject converts 2D in-plane coordinates back to the 3D point on the
// plane, using the same basis {u, v} the coordinates were projected with.
func (p Plane) Unproject(u, v mgl64.Vec3, pt mgl64.Vec2) mgl64.Vec3 {
	return u.Mul(pt[0]).Add(v.Mul(pt[1])).Add(p.Normal.Mul(p.Offset))
}

// IntersectPlanes computes the line where two planes cross. The returned
// direction is the unnormalized cross product of the two normals; point is
// one point on the line. Parallel or near-parallel planes report ok ==
// false, and the outputs are only meaningful when ok is true.
func IntersectPlanes(p1, p2 Plane) (point, dir mgl64.Vec3, ok bool) {
	dir = p1.Normal.Cross(p2.Normal)
	if dir.LenSqr() < planeParallelEps {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}

	// A point on the line satisfies both plane equations; dot(point, dir)
	// = 0 pins it down to a single solution.
	a := mgl64.Mat3FromRows(p1.Normal, p2.Normal, dir)
	b := mgl64.Vec3{p1.Offset, p2.Offset, 0}
	return a.Inv().Mul3x1(b), dir, true
}
