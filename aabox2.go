package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABox2 is an axis-aligned box in 2D space. Unlike AABox there is no
// separate empty flag: a null (not yet set) box is encoded by inverted
// corners, Min[0] > Max[0] || Min[1] > Max[1]. The two conventions are not
// interchangeable.
type AABox2 struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// NewAABox2 creates a null box.
func NewAABox2() AABox2 {
	var b AABox2
	b.SetNull()
	return b
}

// AABox2FromPoints creates the smallest box containing both points.
func AABox2FromPoints(p1, p2 mgl64.Vec2) AABox2 {
	b := NewAABox2()
	b.ExtendPoint(p1)
	b.ExtendPoint(p2)
	return b
}

// AABox2FromCircle creates the box bounding the circle at center with the
// given radius.
func AABox2FromCircle(center mgl64.Vec2, radius float64) AABox2 {
	b := NewAABox2()
	b.ExtendCircle(center, radius)
	return b
}

// SetNull resets the box to the null state.
func (b *AABox2) SetNull() {
	b.Min = mgl64.Vec2{math.MaxFloat64, math.MaxFloat64}
	b.Max = mgl64.Vec2{-math.MaxFloat64, -math.MaxFloat64}
}

// IsNull reports whether the box has not been set.
func (b AABox2) IsNull() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1]
}

// ExtendMargin pushes all four sides outward by val. A null box stays null.
func (b *AABox2) ExtendMargin(val float64) {
	if b.IsNull() {
		return
	}
	b.Min = b.Min.Sub(mgl64.Vec2{val, val})
	b.Max = b.Max.Add(mgl64.Vec2{val, val})
}

// ExtendPoint grows the box to contain p. Extending a null box sets it to
// exactly p rather than comparing against the null sentinels, which would
// corrupt the min/max.
func (b *AABox2) ExtendPoint(p mgl64.Vec2) {
	if b.IsNull() {
		b.Min = p
		b.Max = p
		return
	}
	b.Min = mgl64.Vec2{math.Min(b.Min[0], p[0]), math.Min(b.Min[1], p[1])}
	b.Max = mgl64.Vec2{math.Max(b.Max[0], p[0]), math.Max(b.Max[1], p[1])}
}

// ExtendCircle grows the box to contain the circle at center with the given
// radius.
func (b *AABox2) ExtendCircle(center mgl64.Vec2, radius float64) {
	b.ExtendPoint(center.Sub(mgl64.Vec2{radius, radius}))
	b.ExtendPoint(center.Add(mgl64.Vec2{radius, radius}))
}

// ExtendBox grows the box to its union with other. A null operand is a
// no-op.
func (b *AABox2) ExtendBox(other AABox2) {
	if other.IsNull() {
		return
	}
	b.ExtendPoint(other.Min)
	b.ExtendPoint(other.Max)
}

// ExtendDisk grows the box to contain a disk of the given radius whose
// plane has the given normal. The bound shrinks on each axis by the
// normal's projection onto it. A zero normal degenerates to the center
// point.
func (b *AABox2) ExtendDisk(center, normal mgl64.Vec2, radius float64) {
	if normal.Len() < 1e-12 {
		b.ExtendPoint(center)
		return
	}
	n := normal.Normalize()
	x := math.Sqrt(1-n[0]*n[0]) * radius
	y := math.Sqrt(1-n[1]*n[1]) * radius
	b.ExtendPoint(center.Sub(mgl64.Vec2{x, y}))
	b.ExtendPoint(center.Add(mgl64.Vec2{x, y}))
}

// Translate moves the box by v. A null box stays null.
func (b *AABox2) Translate(v mgl64.Vec2) {
	if b.IsNull() {
		return
	}
	b.Min = b.Min.Add(v)
	b.Max = b.Max.Add(v)
}

// Scale scales the box about origin, componentwise. A zero or negative
// scale factor is not rejected; a negative one inverts the corners and
// leaves the box null.
func (b *AABox2) Scale(scale, origin mgl64.Vec2) {
	if b.IsNull() {
		return
	}
	b.Min = mgl64.Vec2{
		(b.Min[0]-origin[0])*scale[0] + origin[0],
		(b.Min[1]-origin[1])*scale[1] + origin[1],
	}
	b.Max = mgl64.Vec2{
		(b.Max[0]-origin[0])*scale[0] + origin[0],
		(b.Max[1]-origin[1])*scale[1] + origin[1],
	}
}

// Center returns the midpoint of the box.
func (b AABox2) Center() mgl64.Vec2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns Max - Min, or zero for a null box.
func (b AABox2) Diagonal() mgl64.Vec2 {
	if b.IsNull() {
		return mgl64.Vec2{}
	}
	return b.Max.Sub(b.Min)
}

// LongestEdge returns the length of the longest edge, 0 for a null box.
func (b AABox2) LongestEdge() float64 {
	d := b.Diagonal()
	return math.Max(d[0], d[1])
}

// ShortestEdge returns the length of the shortest edge, 0 for a null box.
func (b AABox2) ShortestEdge() float64 {
	d := b.Diagonal()
	return math.Min(d[0], d[1])
}

// Corner returns one of the 4 corners indexed by bits: bit 0 selects the X
// component, bit 1 the Y; a clear bit takes Min on that axis and a set bit
// takes Max.
func (b AABox2) Corner(i int) mgl64.Vec2 {
	c := b.Min
	if i&1 != 0 {
		c[0] = b.Max[0]
	}
	if i&2 != 0 {
		c[1] = b.Max[1]
	}
	return c
}

// Overlaps reports whether the boxes share any area. Sharing an edge
// counts; a null box overlaps nothing.
func (b AABox2) Overlaps(other AABox2) bool {
	if b.IsNull() || other.IsNull() {
		return false
	}
	return b.Max[0] >= other.Min[0] && b.Min[0] <= other.Max[0] &&
		b.Max[1] >= other.Min[1] && b.Min[1] <= other.Max[1]
}

// Classify reports whether other is entirely inside b, overlaps it, or is
// disjoint from it. A null box on either side classifies as Outside.
func (b AABox2) Classify(other AABox2) IntersectionType {
	if !b.Overlaps(other) {
		return Outside
	}
	if b.Min[0] <= other.Min[0] && b.Max[0] >= other.Max[0] &&
		b.Min[1] <= other.Min[1] && b.Max[1] >= other.Max[1] {
		return Inside
	}
	return Intersect
}

// Contains reports whether pt is inside the box, inclusive on all sides.
func (b AABox2) Contains(pt mgl64.Vec2) bool {
	return !b.IsNull() &&
		pt[0] >= b.Min[0] && pt[0] <= b.Max[0] &&
		pt[1] >= b.Min[1] && pt[1] <= b.Max[1]
}
