package sr

import "github.com/gogpu/sr/geom"

// Vertex is a corner of a textured quad: a position in image space, an
// integer texel coordinate in the source image and a tint color.
type Vertex struct {
	Position geom.Vec2
	TexCoord geom.IVec2
	Color    Color
}

// V is shorthand for a Vertex at (x, y) with texel (u, v) and tint c.
func V(x, y float32, u, v int, c Color) Vertex {
	return Vertex{Position: geom.V2(x, y), TexCoord: geom.IV2(u, v), Color: c}
}
