package text

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/sr"
)

// DrawText draws s into dst with the top-left corner of the first line at
// (x, y). Each "\n" starts a new line one line height below. Coverage is
// blended with sr.BlendAlpha.
func (f *Face) DrawText(dst *sr.Image, s string, x, y int, c sr.Color) {
	if dst.Empty() || s == "" || c.A == 0 {
		return
	}
	s = norm.NFC.String(s)

	f.mu.Lock()
	defer f.mu.Unlock()

	baseline := y + f.metrics.Ascent
	for line := range strings.SplitSeq(s, "\n") {
		f.drawLine(dst, strings.TrimSuffix(line, "\r"), fixed.P(x, baseline), c)
		baseline += f.metrics.LineHeight()
	}
}

func (f *Face) drawLine(dst *sr.Image, line string, dot fixed.Point26_6, c sr.Color) {
	if line == "" {
		return
	}

	if f.shaper != nil {
		for _, g := range f.shaper.shape([]rune(line)) {
			gd := fixed.Point26_6{X: dot.X + g.XOffset, Y: dot.Y - g.YOffset}
			gid := sfnt.GlyphIndex(g.GlyphID) //nolint:gosec // glyph indices fit in 16 bits
			if r, mask, ok := f.shaper.glyph(gd, gid); ok {
				blit(dst, r, mask, image.Point{}, c)
			}
			dot.X += g.Advance
		}
		return
	}

	prev := rune(-1)
	for _, r := range line {
		if prev >= 0 {
			dot.X += f.face.Kern(prev, r)
		}
		dr, mask, mp, adv, ok := f.face.Glyph(dot, r)
		if ok {
			blit(dst, dr, mask, mp, c)
		}
		dot.X += adv
		prev = r
	}
}

// blit blends c into dst wherever mask has coverage. Mask point mp maps to
// r.Min.
func blit(dst *sr.Image, r image.Rectangle, mask image.Image, mp image.Point, c sr.Color) {
	clipped := r.Intersect(dst.Bounds())
	if clipped.Empty() || mask == nil {
		return
	}
	mp = mp.Add(clipped.Min.Sub(r.Min))

	alpha, _ := mask.(*image.Alpha)
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		my := mp.Y + y - clipped.Min.Y
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			mx := mp.X + x - clipped.Min.X

			var cov uint8
			if alpha != nil {
				cov = alpha.AlphaAt(mx, my).A
			} else {
				_, _, _, a := mask.At(mx, my).RGBA()
				cov = uint8(a >> 8)
			}
			if cov == 0 {
				continue
			}
			dst.Plot(x, y, c.Mul(sr.RGBA8(255, 255, 255, cov)), sr.BlendAlpha)
		}
	}
}

// Measure returns the size of the box DrawText fills for s: the widest
// line's advance and the number of lines times the line height.
func (f *Face) Measure(s string) (w, h int) {
	if s == "" {
		return 0, 0
	}
	s = norm.NFC.String(s)

	f.mu.Lock()
	defer f.mu.Unlock()

	lines := 0
	for line := range strings.SplitSeq(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		var adv fixed.Int26_6
		if f.shaper != nil {
			adv = f.shaper.advance([]rune(line))
		} else {
			adv = font.MeasureString(f.face, line)
		}
		w = max(w, adv.Ceil())
		lines++
	}
	return w, lines * f.metrics.LineHeight()
}
