package sr

import (
	"math/bits"

	"github.com/chewxy/math32"

	"github.com/gogpu/sr/geom"
	"github.com/gogpu/sr/internal/blend"
)

func blendColor(f blend.Func, s, d Color) Color {
	r, g, b, a := f(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
	return Color{R: r, G: g, B: b, A: a}
}

// DrawLine draws a 1-pixel line from (x0, y0) to (x1, y1), both endpoints
// included, using Bresenham's algorithm. Pixels outside the image are
// clipped before the line is walked, so only visible steps are taken.
func (img *Image) DrawLine(x0, y0, x1, y1 int, c Color, mode BlendMode) {
	if img.Empty() {
		return
	}

	adx, ady := absDiff(x0, x1), absDiff(y0, y1)
	if adx >= ady {
		// One pixel per column.
		lo, hi, ok := span(x0, x1, adx, img.width)
		for k := lo; ok; k++ {
			img.Plot(step(x0, x1, k), step(y0, y1, minorStep(k, ady, adx)), c, mode)
			ok = k < hi
		}
		return
	}
	lo, hi, ok := span(y0, y1, ady, img.height)
	for k := lo; ok; k++ {
		img.Plot(step(x0, x1, minorStep(k, adx, ady)), step(y0, y1, k), c, mode)
		ok = k < hi
	}
}

// absDiff returns |a-b| without overflow.
func absDiff(a, b int) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// step moves a k units toward b.
func step(a, b int, k uint64) int {
	if b >= a {
		return a + int(k)
	}
	return a - int(k)
}

// minorStep returns how far the minor axis has moved after k major steps of
// a line spanning n major and m minor units: k*m/n rounded half up, which is
// where Bresenham's error term puts it.
func minorStep(k, m, n uint64) uint64 {
	if n == 0 {
		return 0
	}
	hi, lo := bits.Mul64(k, m)
	q, rem := bits.Div64(hi, lo, n)
	if rem >= n-rem {
		q++
	}
	return q
}

// span returns the major steps k in [0, n] for which a moved k toward b lies
// in [0, size). ok is false when there are none.
func span(a, b int, n uint64, size int) (lo, hi uint64, ok bool) {
	if b >= a {
		if a >= size || b < 0 {
			return 0, 0, false
		}
		if a < 0 {
			lo = 0 - uint64(a)
		}
		hi = min(n, uint64(size-1)-uint64(a))
	} else {
		if b >= size || a < 0 {
			return 0, 0, false
		}
		if a >= size {
			lo = uint64(a) - uint64(size-1)
		}
		hi = min(n, uint64(a))
	}
	return lo, hi, lo <= hi
}

// DrawLineV draws a line between two points, truncating them to integer
// pixel coordinates.
func (img *Image) DrawLineV(p0, p1 geom.Vec2, c Color, mode BlendMode) {
	img.DrawLine(int(p0.X), int(p0.Y), int(p1.X), int(p1.Y), c, mode)
}

// clip intersects b with the image bounds and returns the inclusive pixel
// range to scan. ok is false when b is entirely outside the image.
func (img *Image) clip(b geom.AABB) (x0, y0, x1, y1 int, ok bool) {
	if img.Empty() || !img.aabb.Intersect(b) {
		return 0, 0, 0, 0, false
	}
	b.Clamp(img.aabb)
	x0, y0, x1, y1 = b.Pixels()
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// DrawTriangle draws the triangle (p0, p1, p2). Either winding is accepted.
// Solid fills cover every pixel whose integer coordinates lie inside the
// triangle or on its edges; degenerate triangles draw nothing.
func (img *Image) DrawTriangle(p0, p1, p2 geom.Vec2, c Color, mode BlendMode, fill FillMode) {
	x0, y0, x1, y1, ok := img.clip(geom.AABBFromTriangle(p0, p1, p2))
	if !ok {
		return
	}

	if fill == FillWireFrame {
		img.DrawLineV(p0, p1, c, mode)
		img.DrawLineV(p1, p2, c, mode)
		img.DrawLineV(p2, p0, c, mode)
		return
	}

	f := mode.fn()
	w := img.width
	rows(y0, y1+1, x1-x0+1, func(ya, yb int) {
		for y := ya; y < yb; y++ {
			row := img.pix[y*w : (y+1)*w]
			for x := x0; x <= x1; x++ {
				if geom.PointInTriangle(geom.V2(float32(x), float32(y)), p0, p1, p2) {
					row[x] = blendColor(f, c, row[x])
				}
			}
		}
	})
}

// DrawQuad draws the quad p0-p1-p2-p3. Solid fills split it into the
// triangles (p0, p1, p3) and (p1, p2, p3); a pixel on the shared diagonal is
// blended once.
func (img *Image) DrawQuad(p0, p1, p2, p3 geom.Vec2, c Color, mode BlendMode, fill FillMode) {
	x0, y0, x1, y1, ok := img.clip(geom.AABBFromQuad(p0, p1, p2, p3))
	if !ok {
		return
	}

	if fill == FillWireFrame {
		img.DrawLineV(p0, p1, c, mode)
		img.DrawLineV(p1, p2, c, mode)
		img.DrawLineV(p2, p3, c, mode)
		img.DrawLineV(p3, p0, c, mode)
		return
	}

	f := mode.fn()
	w := img.width
	rows(y0, y1+1, x1-x0+1, func(ya, yb int) {
		for y := ya; y < yb; y++ {
			row := img.pix[y*w : (y+1)*w]
			for x := x0; x <= x1; x++ {
				p := geom.V2(float32(x), float32(y))
				if geom.PointInTriangle(p, p0, p1, p3) || geom.PointInTriangle(p, p1, p2, p3) {
					row[x] = blendColor(f, c, row[x])
				}
			}
		}
	})
}

// DrawTexturedQuad maps tex onto the quad v0-v1-v2-v3. Texel coordinates
// are interpolated barycentrically over the triangles (v0, v1, v3) and
// (v1, v2, v3) at pixel centers and sampled with AddressWrap. Each texel is
// multiplied by the interpolated vertex color before blending.
func (img *Image) DrawTexturedQuad(v0, v1, v2, v3 Vertex, tex *Image, mode BlendMode) {
	if tex.Empty() {
		return
	}
	img.texturedQuad([4]Vertex{v0, v1, v2, v3}, tex, mode, nil)
}

// texturedQuad fills q with texels from tex. A non-nil region limits the
// interpolated texel coordinates to that rectangle of tex, so pixels whose
// centers sit on the far quad edges do not sample past it.
func (img *Image) texturedQuad(q [4]Vertex, tex *Image, mode BlendMode, region *geom.RectI) {
	bounds := geom.AABBFromQuad(q[0].Position, q[1].Position, q[2].Position, q[3].Position)
	x0, y0, x1, y1, ok := img.clip(bounds)
	if !ok {
		return
	}

	tris := [2][3]Vertex{{q[0], q[1], q[3]}, {q[1], q[2], q[3]}}
	f := mode.fn()
	w := img.width
	rows(y0, y1+1, x1-x0+1, func(ya, yb int) {
		for y := ya; y < yb; y++ {
			row := img.pix[y*w : (y+1)*w]
			for x := x0; x <= x1; x++ {
				p := geom.V2(float32(x)+0.5, float32(y)+0.5)
				for i := range tris {
					t := &tris[i]
					bc, ok := geom.Barycentric(t[0].Position, t[1].Position, t[2].Position, p)
					if !ok || !geom.BarycentricInside(bc) {
						continue
					}
					u, v := interpTexel(t, bc)
					if region != nil {
						u = clampInt(u, region.Left(), region.Right()-1)
						v = clampInt(v, region.Top(), region.Bottom()-1)
					}
					texel := tex.Sample(u, v, AddressWrap)
					row[x] = blendColor(f, texel.Mul(interpColor(t, bc)), row[x])
					break
				}
			}
		}
	})
}

// interpTexel weights the three texel coordinates by bc. Flooring keeps
// negative coordinates on the correct texel.
func interpTexel(t *[3]Vertex, bc geom.Vec3) (u, v int) {
	fu := float32(t[0].TexCoord.X)*bc.X + float32(t[1].TexCoord.X)*bc.Y + float32(t[2].TexCoord.X)*bc.Z
	fv := float32(t[0].TexCoord.Y)*bc.X + float32(t[1].TexCoord.Y)*bc.Y + float32(t[2].TexCoord.Y)*bc.Z
	return int(math32.Floor(fu)), int(math32.Floor(fv))
}

func interpColor(t *[3]Vertex, bc geom.Vec3) Color {
	if t[0].Color == t[1].Color && t[1].Color == t[2].Color {
		return t[0].Color
	}
	ch := func(a, b, c uint8) uint8 {
		f := float32(a)*bc.X + float32(b)*bc.Y + float32(c)*bc.Z
		return uint8(max(0, min(f+0.5, 255)))
	}
	return Color{
		R: ch(t[0].Color.R, t[1].Color.R, t[2].Color.R),
		G: ch(t[0].Color.G, t[1].Color.G, t[2].Color.G),
		B: ch(t[0].Color.B, t[1].Color.B, t[2].Color.B),
		A: ch(t[0].Color.A, t[1].Color.A, t[2].Color.A),
	}
}

// DrawAABB draws an axis-aligned box whose corners are both inclusive.
// WireFrame draws its four edges.
func (img *Image) DrawAABB(b geom.AABB, c Color, mode BlendMode, fill FillMode) {
	x0, y0, x1, y1, ok := img.clip(b)
	if !ok {
		return
	}

	if fill == FillWireFrame {
		l, t, r, bt := b.Pixels()
		img.DrawLine(l, t, r, t, c, mode)
		img.DrawLine(r, t, r, bt, c, mode)
		img.DrawLine(r, bt, l, bt, c, mode)
		img.DrawLine(l, bt, l, t, c, mode)
		return
	}

	f := mode.fn()
	w := img.width
	rows(y0, y1+1, x1-x0+1, func(ya, yb int) {
		for y := ya; y < yb; y++ {
			row := img.pix[y*w+x0 : y*w+x1+1]
			for i := range row {
				row[i] = blendColor(f, c, row[i])
			}
		}
	})
}

// DrawRect draws the integer rectangle r. An empty rectangle draws nothing.
func (img *Image) DrawRect(r geom.RectI, c Color, mode BlendMode, fill FillMode) {
	if r.Empty() {
		return
	}
	img.DrawAABB(geom.AABBFromRect(r), c, mode, fill)
}

// DrawSprite draws s transformed by t. A nil transform draws the sprite
// unscaled with its top-left corner at the origin. The sprite's texels are
// multiplied by its color and blended with its blend mode.
func (img *Image) DrawSprite(s Sprite, t *geom.Transform2D) {
	if s.Empty() {
		return
	}

	m := geom.Identity()
	if t != nil {
		m = t.Matrix()
	}

	w, h := float32(s.size.X), float32(s.size.Y)
	u0, v0 := s.uv.X, s.uv.Y
	u1, v1 := u0+s.size.X, v0+s.size.Y
	quad := [4]Vertex{
		{Position: m.TransformPoint(geom.V2(0, 0)), TexCoord: geom.IV2(u0, v0), Color: s.color},
		{Position: m.TransformPoint(geom.V2(w, 0)), TexCoord: geom.IV2(u1, v0), Color: s.color},
		{Position: m.TransformPoint(geom.V2(w, h)), TexCoord: geom.IV2(u1, v1), Color: s.color},
		{Position: m.TransformPoint(geom.V2(0, h)), TexCoord: geom.IV2(u0, v1), Color: s.color},
	}
	r := s.Rect()
	img.texturedQuad(quad, s.image, s.blend, &r)
}

// Font draws text into an Image. The text package provides implementations
// backed by bitmap and TrueType faces.
type Font interface {
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(dst *Image, s string, x, y int, c Color)
}

// DrawText draws s with f, its top-left corner at (x, y). A nil font draws
// nothing.
func (img *Image) DrawText(f Font, x, y int, s string, c Color) {
	if f == nil {
		return
	}
	f.DrawText(img, s, x, y, c)
}
