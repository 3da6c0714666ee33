package geom

import "github.com/go-gl/mathgl/mgl64"

// Sphere is a center point and a radius. A negative radius is not rejected
// but no intersection test is meaningful for one.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// IntersectsAABox reports whether the sphere and box overlap. Touching on a
// face, edge or corner counts as intersecting. An empty box intersects
// nothing.
func (s Sphere) IntersectsAABox(box AABox) bool {
	if box.Empty {
		return false
	}

	// Squared distance from the center to the closest point on the box,
	// accumulated axis by axis. An axis where the center lies between the
	// faces contributes nothing.
	distSqr := 0.0
	for i := 0; i < 3; i++ {
		if s.Center[i] < box.Min[i] {
			d := s.Center[i] - box.Min[i]
			distSqr += d * d
		} else if s.Center[i] > box.Max[i] {
			d := s.Center[i] - box.Max[i]
			distSqr += d * d
		}
	}

	return distSqr <= s.Radius*s.Radius
}
