package geom

import "github.com/chewxy/math32"

// EdgeFunction returns twice the signed area of the triangle (a, b, p).
// It is positive when p lies to the left of the directed edge a→b in a y-up
// frame, and zero when p is on the line through a and b.
func EdgeFunction(a, b, p Vec2) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Barycentric returns the barycentric weights of p with respect to the
// triangle (a, b, c), so that p = a*X + b*Y + c*Z and X+Y+Z = 1. The second
// result is false for degenerate (zero-area) triangles, in which case the
// weights are zero.
func Barycentric(a, b, c, p Vec2) (Vec3, bool) {
	area := EdgeFunction(a, b, c)
	if area == 0 || math32.IsNaN(area) {
		return Vec3{}, false
	}
	inv := 1 / area
	u := EdgeFunction(b, c, p) * inv
	v := EdgeFunction(c, a, p) * inv
	return Vec3{X: u, Y: v, Z: 1 - u - v}, true
}

// BarycentricInside reports whether barycentric weights describe a point
// inside the triangle or on its edges.
func BarycentricInside(bc Vec3) bool {
	return bc.X >= 0 && bc.Y >= 0 && bc.Z >= 0
}

// PointInTriangle reports whether p lies inside (a, b, c) or on one of its
// edges. Either winding is accepted; degenerate triangles contain nothing.
func PointInTriangle(p, a, b, c Vec2) bool {
	w0 := EdgeFunction(b, c, p)
	w1 := EdgeFunction(c, a, p)
	w2 := EdgeFunction(a, b, p)
	switch area := EdgeFunction(a, b, c); {
	case area > 0:
		return w0 >= 0 && w1 >= 0 && w2 >= 0
	case area < 0:
		return w0 <= 0 && w1 <= 0 && w2 <= 0
	default:
		return false
	}
}
