// Package geom provides the 2D geometry primitives used by the sr rasterizer:
// vectors, integer rectangles, axis-aligned bounding boxes, affine matrices,
// Transform2D and barycentric helpers.
//
// All floating point geometry is float32, matching the precision of the
// per-pixel rasterization loops.
package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulVec returns the component-wise product of v and o.
func (v Vec2) MulVec(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Len returns the length of v.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Vec3 extends v with the given z component.
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// IVec2 truncates v toward zero.
func (v Vec2) IVec2() IVec2 {
	return IVec2{X: int(v.X), Y: int(v.Y)}
}

// Vec3 is a 3D vector. The rasterizer keeps Z at 0; barycentric weights use
// all three components.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for Vec3{X: x, Y: y, Z: z}.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec2 drops the z component.
func (v Vec3) Vec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Min returns the component-wise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{X: math32.Min(v.X, o.X), Y: math32.Min(v.Y, o.Y), Z: math32.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{X: math32.Max(v.X, o.X), Y: math32.Max(v.Y, o.Y), Z: math32.Max(v.Z, o.Z)}
}

// IVec2 is an integer 2D vector, used for texel coordinates and sizes.
type IVec2 struct {
	X, Y int
}

// IV2 is shorthand for IVec2{X: x, Y: y}.
func IV2(x, y int) IVec2 {
	return IVec2{X: x, Y: y}
}

// Add returns v + o.
func (v IVec2) Add(o IVec2) IVec2 {
	return IVec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Vec2 converts v to floating point.
func (v IVec2) Vec2() Vec2 {
	return Vec2{X: float32(v.X), Y: float32(v.Y)}
}
