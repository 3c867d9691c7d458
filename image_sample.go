package sr

import "github.com/gogpu/sr/geom"

// Sample returns the texel at integer coordinates (u, v), resolving
// coordinates outside the image with mode. An empty image samples as
// Transparent.
func (img *Image) Sample(u, v int, mode AddressMode) Color {
	if img.Empty() {
		return Transparent
	}
	w, h := img.width, img.height

	switch mode {
	case AddressMirror:
		u, v = mirror(u, w), mirror(v, h)
	case AddressClamp:
		u, v = clampInt(u, 0, w-1), clampInt(v, 0, h-1)
	default:
		u, v = wrap(u, w), wrap(v, h)
	}
	return img.pix[v*w+u]
}

// SampleUV samples with normalized coordinates: u and v are multiplied by
// the image size and truncated toward zero before addressing.
func (img *Image) SampleUV(u, v float32, mode AddressMode) Color {
	return img.Sample(int(u*float32(img.width)), int(v*float32(img.height)), mode)
}

// wrap maps x into [0, n) periodically. Negative x wraps too.
func wrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

// mirror maps x into [0, n), reversing direction on every odd tile so
// that the texture reflects at each edge.
func mirror(x, n int) int {
	tile := x / n
	if x < 0 && x%n != 0 {
		tile--
	}
	r := wrap(x, n)
	if tile&1 != 0 {
		return n - 1 - r
	}
	return r
}

func clampInt(x, lo, hi int) int {
	return max(lo, min(x, hi))
}

// Copy blits src into img with nearest-neighbor scaling.
//
// srcRect selects the source region and defaults to all of src. dstRect is
// the destination region and defaults to srcRect, so without a dstRect the
// region lands unscaled at its own coordinates. The source region is
// clamped to src and the destination to img; a region that misses its
// image makes Copy a no-op. Scaling maps the unclamped regions onto each
// other, so a region that sticks out of either image keeps its scale and
// offset, and destination pixels that map outside src are left untouched.
func (img *Image) Copy(src *Image, srcRect, dstRect *geom.RectI, mode BlendMode) {
	if img.Empty() || src.Empty() {
		return
	}

	s := src.Rect()
	if srcRect != nil {
		s = *srcRect
	}
	d := s
	if dstRect != nil {
		d = *dstRect
	}
	if d.Empty() {
		return
	}

	sc := s.Intersect(src.Rect())
	if sc.Empty() {
		return
	}
	dc := d.Intersect(img.Rect())
	if dc.Empty() {
		return
	}

	blend := mode.fn()
	dw, sw := img.width, src.width
	rows(dc.Top(), dc.Bottom(), dc.Width, func(y0, y1 int) {
		for dy := y0; dy < y1; dy++ {
			sy := (dy-d.Y)*s.Height/d.Height + s.Y
			if sy < sc.Top() || sy >= sc.Bottom() {
				continue
			}
			srow := src.pix[sy*sw : (sy+1)*sw]
			drow := img.pix[dy*dw : (dy+1)*dw]
			for dx := dc.Left(); dx < dc.Right(); dx++ {
				sx := (dx-d.X)*s.Width/d.Width + s.X
				if sx < sc.Left() || sx >= sc.Right() {
					continue
				}
				drow[dx] = blendColor(blend, srow[sx], drow[dx])
			}
		}
	})
}

// CopyAt overwrites the region of img at (x, y) with src, 1:1 and without
// blending. Negative offsets skip the leading source rows and columns.
func (img *Image) CopyAt(src *Image, x, y int) {
	if img.Empty() || src.Empty() {
		return
	}

	sx, sy := max(-x, 0), max(-y, 0)
	sw, sh := src.width-sx, src.height-sy
	if sw <= 0 || sh <= 0 {
		return
	}
	dx, dy := max(x, 0), max(y, 0)
	dw, dh := img.width-dx, img.height-dy
	if dw <= 0 || dh <= 0 {
		return
	}

	w, h := min(sw, dw), min(sh, dh)
	for row := range h {
		si := (row+sy)*src.width + sx
		di := (row+dy)*img.width + dx
		copy(img.pix[di:di+w], src.pix[si:si+w])
	}
}
