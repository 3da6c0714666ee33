package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle3 is a circle in 3D space: a center, the normal of the disk plane
// and a radius. The type does not normalize Normal; keeping it unit length
// is the caller's responsibility.
type Circle3 struct {
	Center mgl64.Vec3
	Normal mgl64.Vec3
	Radius float64
}

// basis returns the in-plane frame of the circle's disk. Angles are
// measured from u toward v.
func (c Circle3) basis() (u, v mgl64.Vec3) {
	return PlaneFromNormalPoint(c.Normal, c.Center).GenerateUV()
}

// PtFromAngle returns the point on the circle at the given angle.
func (c Circle3) PtFromAngle(angle float64) mgl64.Vec3 {
	u, v := c.basis()
	dir := u.Mul(math.Cos(angle)).Add(v.Mul(math.Sin(angle)))
	return c.Center.Add(dir.Mul(c.Radius))
}

// AngleFromPt returns the angle of p around the circle, wrapped to
// [0, 2π). p need not lie on the circle; only its direction from the
// center matters.
func (c Circle3) AngleFromPt(p mgl64.Vec3) float64 {
	dir := p.Sub(c.Center).Normalize()
	u, v := c.basis()
	angle := math.Atan2(dir.Dot(v), dir.Dot(u))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// Discretize returns numSegments points spaced evenly in angle from a0 to
// a1. If a1 < a0 the arc wraps through the 0/2π seam; a span that is still
// zero or negative after wrapping (the a0 == a1 == 0 default) means the
// full circle, with the first and last points coincident. numSegments == 1
// yields the single point at a0; smaller values yield nil.
func (c Circle3) Discretize(numSegments int, a0, a1 float64) []mgl64.Vec3 {
	if numSegments < 1 {
		return nil
	}
	if numSegments == 1 {
		return []mgl64.Vec3{c.PtFromAngle(a0)}
	}

	if a1 < a0 {
		a1 += 2 * math.Pi
	}
	delta := a1 - a0
	if delta <= 0 {
		delta += 2 * math.Pi
	}
	angleStep := delta / float64(numSegments-1)

	u, v := c.basis()
	points := make([]mgl64.Vec3, 0, numSegments)
	for i := 0; i < numSegments; i++ {
		angle := a0 + float64(i)*angleStep
		dir := u.Mul(math.Cos(angle)).Add(v.Mul(math.Sin(angle)))
		points = append(points, c.Center.Add(dir.Mul(c.Radius)))
	}
	return points
}
