package text

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// shaper positions glyphs with go-text's HarfBuzz port and rasterizes them
// by glyph index from the sfnt outlines, so substituted glyphs such as
// ligatures render correctly. It is not safe for concurrent use.
type shaper struct {
	font     *gtfont.Font
	outlines *sfnt.Font
	ppem     fixed.Int26_6
	lang     language.Language

	hb   shaping.HarfbuzzShaper
	buf  sfnt.Buffer
	rast vector.Rasterizer
}

func newShaper(data []byte, outlines *sfnt.Font, ppem fixed.Int26_6, lang string) (*shaper, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &shaper{
		font:     face.Font,
		outlines: outlines,
		ppem:     ppem,
		lang:     language.NewLanguage(lang),
	}, nil
}

// shape returns the glyphs of a single line, left to right.
func (s *shaper) shape(runes []rune) []shaping.Glyph {
	if len(runes) == 0 {
		return nil
	}
	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(s.font),
		Size:      s.ppem,
		Script:    detectScript(runes),
		Language:  s.lang,
	})
	return out.Glyphs
}

// advance returns the pen advance of a shaped line.
func (s *shaper) advance(runes []rune) fixed.Int26_6 {
	var adv fixed.Int26_6
	for _, g := range s.shape(runes) {
		adv += g.Advance
	}
	return adv
}

// glyph rasterizes glyph gid with its origin at dot. It returns the covered
// destination rectangle and a coverage mask whose origin maps to r.Min. ok
// is false for glyphs without outlines, such as spaces.
func (s *shaper) glyph(dot fixed.Point26_6, gid sfnt.GlyphIndex) (r image.Rectangle, mask *image.Alpha, ok bool) {
	segs, err := s.outlines.LoadGlyph(&s.buf, gid, s.ppem, nil)
	if err != nil || len(segs) == 0 {
		return image.Rectangle{}, nil, false
	}

	b := segs.Bounds()
	r = image.Rect(
		(dot.X+b.Min.X).Floor(), (dot.Y+b.Min.Y).Floor(),
		(dot.X+b.Max.X).Ceil(), (dot.Y+b.Max.Y).Ceil(),
	)
	if r.Empty() {
		return r, nil, false
	}

	// Outline coordinates are relative to the glyph origin, y down.
	ox := float32(dot.X)/64 - float32(r.Min.X)
	oy := float32(dot.Y)/64 - float32(r.Min.Y)
	px := func(v fixed.Int26_6) float32 { return ox + float32(v)/64 }
	py := func(v fixed.Int26_6) float32 { return oy + float32(v)/64 }

	s.rast.Reset(r.Dx(), r.Dy())
	s.rast.DrawOp = draw.Src
	open := false
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				s.rast.ClosePath()
			}
			s.rast.MoveTo(px(a[0].X), py(a[0].Y))
			open = true
		case sfnt.SegmentOpLineTo:
			s.rast.LineTo(px(a[0].X), py(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			s.rast.QuadTo(px(a[0].X), py(a[0].Y), px(a[1].X), py(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			s.rast.CubeTo(px(a[0].X), py(a[0].Y), px(a[1].X), py(a[1].Y), px(a[2].X), py(a[2].Y))
		}
	}
	if open {
		s.rast.ClosePath()
	}

	mask = image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	s.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return r, mask, true
}

// detectScript returns the script of the first non-space rune. Mixed-script
// lines are shaped with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
