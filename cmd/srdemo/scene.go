package main

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/sr"
	"github.com/gogpu/sr/assets"
	"github.com/gogpu/sr/geom"
	"github.com/gogpu/sr/text"
)

const (
	rotationPeriod = 8 // seconds per turn
	pulsePeriod    = 1 // seconds from transparent to opaque
)

// scene is the blend-mode showcase: a rotating sprite under a pulsing
// translucent box, wireframe outlines, an animated sprite and an FPS line.
type scene struct {
	cfg    Config
	assets *assets.Manager
	blend  sr.BlendMode
	font   sr.Font

	sprite    sr.Sprite
	transform *geom.Transform2D
	anim      *sr.SpriteAnim

	spin  *gween.Tween
	pulse *gween.Tween
	alpha float32
	fade  bool // pulse runs from opaque to transparent

	fps fpsCounter
}

func newScene(cfg Config, m *assets.Manager) (*scene, error) {
	blend, err := sr.ParseBlendMode(cfg.Blend)
	if err != nil {
		return nil, err
	}
	s := &scene{
		cfg:    cfg,
		assets: m,
		blend:  blend,
		spin:   gween.New(0, 2*math32.Pi, rotationPeriod, ease.Linear),
		pulse:  gween.New(0, 1, pulsePeriod, ease.InOutSine),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load (re)reads the scene assets. Cached assets come back unchanged; files
// evicted by the asset watcher are read again.
func (s *scene) load() error {
	switch {
	case s.cfg.Sprite != "":
		img, err := s.assets.Image(s.cfg.Sprite)
		if err != nil {
			return err
		}
		s.setSprite(img)
	case s.sprite.Empty():
		s.setSprite(checkerboard(256, 256, 32))
	}

	switch {
	case s.cfg.Sheet != "":
		sheet, err := s.assets.SpriteSheet(s.cfg.Sheet, assets.GridSpec{Width: s.cfg.SheetFrame})
		if err != nil {
			return err
		}
		if s.anim == nil || s.anim.Sheet() != sheet {
			s.anim = sr.NewSpriteAnim(sheet, s.cfg.FrameRate)
		}
	case s.anim == nil:
		sheet := sr.NewSpriteSheet(strip(s.cfg.SheetFrame, 8), s.cfg.SheetFrame, 0, sr.BlendAlpha)
		s.anim = sr.NewSpriteAnim(sheet, s.cfg.FrameRate)
	}

	switch {
	case s.cfg.Font != "":
		face, err := s.assets.Font(s.cfg.Font, s.cfg.FontSize)
		if err != nil {
			return err
		}
		s.font = face
	case s.font == nil:
		s.font = text.Default()
	}
	return nil
}

// setSprite shows img in the middle of the screen, rotating about its center.
func (s *scene) setSprite(img *sr.Image) {
	if s.sprite.Image() == img {
		return
	}
	s.sprite = sr.NewSprite(img, img.Rect(), sr.BlendAlpha)

	w, h := float32(s.cfg.Width), float32(s.cfg.Height)
	fit := 0.8 * min(w, h) / float32(max(img.Width(), img.Height(), 1))
	if s.transform == nil {
		s.transform = geom.NewTransform2D(geom.V2(w/2, h/2), geom.V2(fit, fit), 0)
	}
	s.transform.SetScale(geom.V2(fit, fit))
	s.transform.SetAnchor(geom.V2(float32(img.Width())/2, float32(img.Height())/2))
}

func (s *scene) update(dt float32) {
	rot, done := s.spin.Update(dt)
	if done {
		s.spin.Reset()
	}
	s.transform.SetRotation(rot)

	alpha, done := s.pulse.Update(dt)
	if done {
		s.fade = !s.fade
		if s.fade {
			s.pulse = gween.New(1, 0, pulsePeriod, ease.InOutSine)
		} else {
			s.pulse = gween.New(0, 1, pulsePeriod, ease.InOutSine)
		}
	}
	s.alpha = alpha

	s.anim.Update(dt)
	if s.anim.Done() {
		s.anim.Reset()
	}
}

// frame advances the scene by dt and draws it into dst.
func (s *scene) frame(dst *sr.Image, dt float32) error {
	if s.fps.tick(dt) {
		if err := s.load(); err != nil {
			sr.Logger().Warn("srdemo: reload assets", "err", err)
		}
	}
	s.update(dt)
	s.draw(dst)
	return nil
}

func (s *scene) draw(dst *sr.Image) {
	w, h := float32(dst.Width()), float32(dst.Height())

	dst.Clear(sr.Black)
	dst.DrawSprite(s.sprite, s.transform)

	box := geom.AABB{Min: geom.V3(w*0.25, h*0.25, 0), Max: geom.V3(w*0.75, h*0.75, 0)}
	dst.DrawAABB(box, sr.Yellow.WithAlpha(s.alpha), s.blend, sr.FillSolid)
	dst.DrawAABB(box, sr.White, sr.BlendDisabled, sr.FillWireFrame)

	dst.DrawTriangle(geom.V2(w*0.05, h*0.9), geom.V2(w*0.2, h*0.9), geom.V2(w*0.125, h*0.75),
		sr.Cyan, sr.BlendDisabled, sr.FillWireFrame)
	dst.DrawQuad(geom.V2(w*0.8, h*0.75), geom.V2(w*0.95, h*0.78), geom.V2(w*0.92, h*0.92), geom.V2(w*0.82, h*0.9),
		sr.Magenta, sr.BlendDisabled, sr.FillWireFrame)

	frame := s.anim.Sprite()
	at := geom.NewTransform2D(geom.V2(w*0.05, h*0.05+20), geom.V2(2, 2), 0)
	dst.DrawSprite(frame, at)

	label := fmt.Sprintf("FPS: %.1f  blend: %v", s.fps.rate, s.blend)
	dst.DrawText(s.font, 8, 8, label, sr.White)
}

// fpsCounter averages the frame rate over one-second windows.
type fpsCounter struct {
	elapsed float32
	frames  int
	rate    float32
}

// tick counts one frame of length dt and reports whether a window closed.
func (c *fpsCounter) tick(dt float32) bool {
	c.elapsed += dt
	c.frames++
	if c.elapsed < 1 {
		return false
	}
	c.rate = float32(c.frames) / c.elapsed
	sr.Logger().Info("srdemo: frame rate", "fps", c.rate)
	c.elapsed, c.frames = 0, 0
	return true
}

// checkerboard returns a w x h image of cell-sized tiles.
func checkerboard(w, h, cell int) *sr.Image {
	img := sr.NewImage(w, h)
	img.Clear(sr.Gray)
	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			if (x/cell+y/cell)%2 == 0 {
				img.DrawRect(geom.Rect(x, y, cell, cell), sr.White, sr.BlendDisabled, sr.FillSolid)
			}
		}
	}
	return img
}

// strip returns frames frames of size x size, each a filled triangle turned
// a step further.
func strip(size, frames int) *sr.Image {
	img := sr.NewImage(size*frames, size)
	r := float32(size) * 0.45
	for i := range frames {
		cx, cy := float32(i*size)+float32(size)/2, float32(size)/2
		var pts [3]geom.Vec2
		for k := range pts {
			a := float32(i)*2*math32.Pi/float32(frames*3) + float32(k)*2*math32.Pi/3
			pts[k] = geom.V2(cx+r*math32.Cos(a), cy+r*math32.Sin(a))
		}
		c := sr.FromFloat(float32(i)/float32(frames), 0.6, 1-float32(i)/float32(frames), 1)
		img.DrawTriangle(pts[0], pts[1], pts[2], c, sr.BlendDisabled, sr.FillSolid)
	}
	return img
}
