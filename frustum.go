package geom

import "github.com/go-gl/mathgl/mgl64"

// Indices of the planes in a Frustum.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// DepthRange selects the clip-space depth convention of the projection
// matrix the frustum is extracted from. Both extraction methods honor it;
// extracting with the wrong convention silently misplaces the near plane.
type DepthRange int

const (
	// DepthZeroToOne maps near to z=0 and far to z=1 (Direct3D, Vulkan).
	DepthZeroToOne DepthRange = iota
	// DepthNegOneToOne maps near to z=-1 and far to z=1 (OpenGL).
	DepthNegOneToOne
)

// Frustum is a view volume bounded by six planes. After extraction every
// normal is unit length and points into the volume, so a point is inside
// iff DistanceTo is >= 0 on all six planes. Both extraction methods produce
// this same orientation.
type Frustum struct {
	Planes [6]Plane
}

// FrustumFromMatrix extracts the frustum of the combined projection (or
// projection*view) matrix m.
func FrustumFromMatrix(m mgl64.Mat4, depth DepthRange) Frustum {
	var f Frustum
	f.ExtractRows(m, depth)
	return f
}

// FrustumFromMatrices extracts the frustum of proj * view.
func FrustumFromMatrices(view, proj mgl64.Mat4, depth DepthRange) Frustum {
	return FrustumFromMatrix(proj.Mul4(view), depth)
}

// ExtractRows extracts the six planes as linear combinations of the rows of
// m (the Gribb/Hartmann method). Each clip boundary such as x/w = -1 is the
// zero set of one row combination, positive on the inside. O(1) per plane,
// but tied to m's layout: row 3 must be the clip-space w row.
func (f *Frustum) ExtractRows(m mgl64.Mat4, depth DepthRange) {
	r0 := m.Row(0)
	r1 := m.Row(1)
	r2 := m.Row(2)
	r3 := m.Row(3)

	f.Planes[PlaneLeft] = planeFromRow(r3.Add(r0))
	f.Planes[PlaneRight] = planeFromRow(r3.Sub(r0))
	f.Planes[PlaneBottom] = planeFromRow(r3.Add(r1))
	f.Planes[PlaneTop] = planeFromRow(r3.Sub(r1))
	if depth == DepthZeroToOne {
		// Near boundary is z/w = 0: row 2 alone.
		f.Planes[PlaneNear] = planeFromRow(r2)
	} else {
		f.Planes[PlaneNear] = planeFromRow(r3.Add(r2))
	}
	f.Planes[PlaneFar] = planeFromRow(r3.Sub(r2))

	f.normalize()
}

// planeFromRow converts a combined row (a, b, c, d), whose zero set is the
// plane a*x + b*y + c*z + d = 0 with the inside positive, to the stored
// dot(P, N) = Offset form. The offset is the negated w element.
func planeFromRow(row mgl64.Vec4) Plane {
	return Plane{Normal: row.Vec3(), Offset: -row.W()}
}

// normalize rescales every plane to a unit normal, dividing the offset by
// the same pre-normalization length. The raw row combinations are not unit
// length, so distances are wrong without this pass.
func (f *Frustum) normalize() {
	for i := range f.Planes {
		length := f.Planes[i].Normal.Len()
		f.Planes[i].Normal = f.Planes[i].Normal.Mul(1 / length)
		f.Planes[i].Offset /= length
	}
}

// frustumFaces lists four clip-cube corner indices per plane, in the same
// bit order as AABox.Corners (bit 0 -> +X, bit 1 -> +Y, bit 2 -> far).
// The winding makes the derived normal face into the volume.
var frustumFaces = [6][4]int{
	PlaneLeft:   {4, 6, 2, 0},
	PlaneRight:  {1, 3, 7, 5},
	PlaneBottom: {0, 1, 5, 4},
	PlaneTop:    {2, 6, 7, 3},
	PlaneNear:   {2, 3, 1, 0},
	PlaneFar:    {6, 4, 5, 7},
}

// ExtractCorners extracts the six planes by transforming the eight
// canonical clip-space cube corners through the inverse of m, perspective
// dividing, and rebuilding each face from the world-space corners. Costs a
// 4x4 inverse and eight transforms, but unlike ExtractRows it does not
// care how m's rows are laid out.
func (f *Frustum) ExtractCorners(m mgl64.Mat4, depth DepthRange) {
	inv := m.Inv()

	nearZ := 0.0
	if depth == DepthNegOneToOne {
		nearZ = -1.0
	}

	var corners [8]mgl64.Vec3
	for i := range corners {
		clip := mgl64.Vec4{-1, -1, nearZ, 1}
		if i&1 != 0 {
			clip[0] = 1
		}
		if i&2 != 0 {
			clip[1] = 1
		}
		if i&4 != 0 {
			clip[2] = 1
		}
		w := inv.Mul4x1(clip)
		corners[i] = w.Vec3().Mul(1 / w.W())
	}

	for i, face := range frustumFaces {
		edge1 := corners[face[1]].Sub(corners[face[0]])
		edge2 := corners[face[2]].Sub(corners[face[1]])
		normal := edge2.Cross(edge1).Normalize()
		f.Planes[i] = Plane{Normal: normal, Offset: normal.Dot(corners[face[1]])}
	}
}

// ContainsPoint reports whether pt is inside or on the frustum.
func (f Frustum) ContainsPoint(pt mgl64.Vec3) bool {
	for _, p := range f.Planes {
		if p.DistanceTo(pt) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether any part of the sphere may be inside
// the frustum. Conservative near the frustum edges, exact per plane, which
// is the usual trade for culling.
func (f Frustum) IntersectsSphere(s Sphere) bool {
	for _, p := range f.Planes {
		if p.DistanceTo(s.Center) < -s.Radius {
			return false
		}
	}
	return true
}

// ClassifyAABox reports whether the box is fully inside the frustum,
// rejected by one of its planes, or crossing. Intersect may conservatively
// include boxes that only straddle a plane outside the volume. An empty
// box is Outside.
func (f Frustum) ClassifyAABox(box AABox) IntersectionType {
	if box.Empty {
		return Outside
	}
	corners := box.Corners()

	result := Inside
	for _, p := range f.Planes {
		span := EmptyRange[float64]()
		for _, c := range corners {
			span.Extend(p.DistanceTo(c))
		}
		if span.Max < 0 {
			return Outside
		}
		if span.Min < 0 {
			result = Intersect
		}
	}
	return result
}
