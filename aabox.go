package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// IntersectionType classifies how one volume relates to another.
type IntersectionType int

const (
	// Inside means the tested volume is entirely contained.
	Inside IntersectionType = iota
	// Intersect means the volumes overlap without containment.
	Intersect
	// Outside means the volumes are disjoint.
	Outside
)

// AABox is an axis-aligned box in 3D space, defined by its minimum and
// maximum corners. An empty box is a distinct state tracked by an explicit
// flag; while Empty is set, Min and Max hold sentinel values (+max/-max)
// and must not be read as a real volume.
type AABox struct {
	Min   mgl64.Vec3
	Max   mgl64.Vec3
	Empty bool
}

// NewAABox creates a new empty box. The sentinel corners are chosen so that
// the first ExtendPoint collapses the box onto that point.
func NewAABox() AABox {
	return AABox{
		Min:   mgl64.Vec3{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		Max:   mgl64.Vec3{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
		Empty: true,
	}
}

// AABoxFromCorners creates the box spanning min to max. Every component of
// min must be <= the matching component of max.
func AABoxFromCorners(min, max mgl64.Vec3) AABox {
	return AABox{Min: min, Max: max}
}

// ExtendPoint grows the box to contain p. The first point put into an empty
// box becomes both corners.
func (b *AABox) ExtendPoint(p mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
	b.Empty = false
}

// ExtendBox grows the box to its union with other. Extending by an empty
// box is a no-op, so the sentinel corners never join a comparison.
func (b *AABox) ExtendBox(other AABox) {
	if other.Empty {
		return
	}
	b.ExtendPoint(other.Min)
	b.ExtendPoint(other.Max)
}

// Center returns the midpoint of the box.
func (b AABox) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extents returns the box dimensions, or zero for an empty box.
func (b AABox) Extents() mgl64.Vec3 {
	if b.Empty {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// LongestEdge returns the length of the longest edge, 0 for an empty box.
func (b AABox) LongestEdge() float64 {
	e := b.Extents()
	return math.Max(e[0], math.Max(e[1], e[2]))
}

// ShortestEdge returns the length of the shortest edge, 0 for an empty box.
func (b AABox) ShortestEdge() float64 {
	e := b.Extents()
	return math.Min(e[0], math.Min(e[1], e[2]))
}

// Corners returns the 8 corners indexed by bits: bit 0 selects the X
// component, bit 1 the Y and bit 2 the Z; a clear bit takes Min on that
// axis and a set bit takes Max. Consumers rely on this ordering.
func (b AABox) Corners() [8]mgl64.Vec3 {
	var corners [8]mgl64.Vec3
	for i := range corners {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		corners[i] = c
	}
	return corners
}

// ContainsPoint reports whether p is inside the box, inclusive on all six
// faces.
func (b AABox) ContainsPoint(p mgl64.Vec3) bool {
	if b.Empty {
		return false
	}
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Intersects reports whether the two boxes overlap. Sharing a face counts.
func (b AABox) Intersects(other AABox) bool {
	if b.Empty || other.Empty {
		return false
	}
	// Look for a separating axis on each box for each axis.
	return b.Max[0] >= other.Min[0] && b.Min[0] <= other.Max[0] &&
		b.Max[1] >= other.Min[1] && b.Min[1] <= other.Max[1] &&
		b.Max[2] >= other.Min[2] && b.Min[2] <= other.Max[2]
}

// Classify reports whether other is entirely inside b, overlaps it, or is
// disjoint from it. An empty box on either side classifies as Outside.
func (b AABox) Classify(other AABox) IntersectionType {
	if !b.Intersects(other) {
		return Outside
	}
	if b.Min[0] <= other.Min[0] && b.Max[0] >= other.Max[0] &&
		b.Min[1] <= other.Min[1] && b.Max[1] >= other.Max[1] &&
		b.Min[2] <= other.Min[2] && b.Max[2] >= other.Max[2] {
		return Inside
	}
	return Intersect
}

// ApproxEqual reports whether the two boxes have the same empty state and
// corners within eps.
func (b AABox) ApproxEqual(other AABox, eps float64) bool {
	return b.Empty == other.Empty &&
		b.Min.ApproxEqualThreshold(other.Min, eps) &&
		b.Max.ApproxEqualThreshold(other.Max, eps)
}
