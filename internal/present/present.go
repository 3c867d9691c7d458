// Package present shows sr images in a desktop window using Ebitengine.
package present

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/sr"
)

// Config describes the window.
type Config struct {
	Title  string
	Width  int // framebuffer width in pixels
	Height int // framebuffer height in pixels
	Scale  int // window pixels per framebuffer pixel, at least 1
	TPS    int // frame function calls per second, 0 for ebiten.DefaultTPS
}

// FrameFunc draws one frame into dst. dt is the time since the previous
// frame in seconds. Returning an error stops the loop and Run returns it.
type FrameFunc func(dst *sr.Image, dt float32) error

// Run opens a window and calls frame every tick until the window is closed,
// Escape is pressed or frame fails.
func Run(cfg Config, frame FrameFunc) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("present: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	cfg.Scale = max(cfg.Scale, 1)
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	g := &game{
		cfg:   cfg,
		frame: frame,
		img:   sr.NewImage(cfg.Width, cfg.Height),
		pix:   make([]byte, cfg.Width*cfg.Height*4),
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game implements ebiten.Game.
type game struct {
	cfg   Config
	frame FrameFunc
	img   *sr.Image
	pix   []byte
	dirty bool
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.frame(g.img, 1/float32(g.cfg.TPS)); err != nil {
		return err
	}
	g.dirty = true
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		premultiply(g.pix, g.img.Pix())
		g.dirty = false
	}
	screen.WritePixels(g.pix)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
