package geom

import "github.com/chewxy/math32"

// AABB is an axis-aligned bounding box given by its minimum and maximum
// corners. Both corners are inclusive: the bounds of a w×h image are
// {0,0,0}-{w-1,h-1,0}. Z is carried for completeness and is 0 for all 2D use.
type AABB struct {
	Min, Max Vec3
}

// AABBFromRect returns the inclusive pixel bounds of r.
func AABBFromRect(r RectI) AABB {
	return AABB{
		Min: Vec3{X: float32(r.X), Y: float32(r.Y)},
		Max: Vec3{X: float32(r.X + r.Width - 1), Y: float32(r.Y + r.Height - 1)},
	}
}

// AABBFromPoints returns the smallest box containing all points.
// It returns the zero AABB when no points are given.
func AABBFromPoints(points ...Vec2) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0].Vec3(0), Max: points[0].Vec3(0)}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p.Vec3(0))
		b.Max = b.Max.Max(p.Vec3(0))
	}
	return b
}

// AABBFromTriangle returns the bounding box of a triangle.
func AABBFromTriangle(p0, p1, p2 Vec2) AABB {
	return AABBFromPoints(p0, p1, p2)
}

// AABBFromQuad returns the bounding box of a quad.
func AABBFromQuad(p0, p1, p2, p3 Vec2) AABB {
	return AABBFromPoints(p0, p1, p2, p3)
}

// Width returns the horizontal extent Max.X - Min.X.
func (b AABB) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent Max.Y - Min.Y.
func (b AABB) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// Intersect reports whether b and o overlap in X and Y. Touching edges count
// as overlap because both boxes are inclusive.
func (b AABB) Intersect(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// Intersection returns the overlap of b and o and whether it is non-empty.
func (b AABB) Intersection(o AABB) (AABB, bool) {
	if !b.Intersect(o) {
		return AABB{}, false
	}
	return b.Clamped(o), true
}

// Clamp restricts b to lie within o.
func (b *AABB) Clamp(o AABB) {
	b.Min.X = math32.Max(b.Min.X, o.Min.X)
	b.Min.Y = math32.Max(b.Min.Y, o.Min.Y)
	b.Max.X = math32.Min(b.Max.X, o.Max.X)
	b.Max.Y = math32.Min(b.Max.Y, o.Max.Y)
}

// Clamped returns a copy of b restricted to o.
func (b AABB) Clamped(o AABB) AABB {
	b.Clamp(o)
	return b
}

// Contains reports whether p lies inside b, edges included.
func (b AABB) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Transform returns the bounding box of b's four corners after applying m.
func (b AABB) Transform(m Mat3) AABB {
	return AABBFromQuad(
		m.TransformPoint(Vec2{X: b.Min.X, Y: b.Min.Y}),
		m.TransformPoint(Vec2{X: b.Max.X, Y: b.Min.Y}),
		m.TransformPoint(Vec2{X: b.Max.X, Y: b.Max.Y}),
		m.TransformPoint(Vec2{X: b.Min.X, Y: b.Max.Y}),
	)
}

// Pixels returns the integer pixel range covered by b, inclusive on both
// ends: floor(Min) through floor(Max).
func (b AABB) Pixels() (x0, y0, x1, y1 int) {
	return int(math32.Floor(b.Min.X)), int(math32.Floor(b.Min.Y)),
		int(math32.Floor(b.Max.X)), int(math32.Floor(b.Max.Y))
}
