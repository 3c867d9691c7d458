// Command srdemo shows the sr blend modes: a rotating sprite under a pulsing
// translucent box, with wireframes, an animated sprite sheet and an FPS line.
//
// Usage:
//
//	srdemo [-config demo.toml] [-blend Screen] [-sprite img.jpg]
//	srdemo -headless -frames 120 -output frame.png
//
// Settings come from the optional TOML file; flags override it. Escape or
// closing the window quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/sr"
	"github.com/gogpu/sr/assets"
	"github.com/gogpu/sr/internal/present"
)

type options struct {
	config   string
	headless bool
	frames   int
	output   string
	verbose  bool
	workers  int
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("srdemo: %v", err)
	}
}

func run(args []string) error {
	cfg, opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	sr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	sr.SetWorkers(opts.workers)

	m := assets.NewManager()
	defer func() { _ = m.Close() }()

	s, err := newScene(cfg, m)
	if err != nil {
		return err
	}

	if opts.headless {
		return renderHeadless(s, cfg, opts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		if err := m.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			sr.Logger().Warn("srdemo: asset watcher stopped", "err", err)
		}
	}()

	err = present.Run(present.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
		TPS:    cfg.TPS,
	}, func(dst *sr.Image, dt float32) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.frame(dst, dt)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// renderHeadless draws opts.frames frames at the configured tick rate and
// saves the last one.
func renderHeadless(s *scene, cfg Config, opts options) error {
	img := sr.NewImage(cfg.Width, cfg.Height)
	dt := 1 / float32(max(cfg.TPS, 1))
	for range max(opts.frames, 1) {
		if err := s.frame(img, dt); err != nil {
			return err
		}
	}
	if err := img.SavePNG(opts.output); err != nil {
		return err
	}
	sr.Logger().Info("srdemo: saved frame", "path", opts.output, "frames", opts.frames)
	return nil
}

// parseArgs reads the config file named by -config, then applies the flags
// that were set explicitly.
func parseArgs(args []string) (Config, options, error) {
	fs := flag.NewFlagSet("srdemo", flag.ContinueOnError)

	var opts options
	fs.StringVar(&opts.config, "config", "", "TOML config file")
	fs.BoolVar(&opts.headless, "headless", false, "render without a window and save a PNG")
	fs.IntVar(&opts.frames, "frames", 60, "frames to render in headless mode")
	fs.StringVar(&opts.output, "output", "srdemo.png", "output file in headless mode")
	fs.BoolVar(&opts.verbose, "v", false, "log debug messages")
	fs.IntVar(&opts.workers, "workers", 0, "fill workers, 0 for one per CPU, 1 for serial")

	def := defaultConfig()
	var (
		title  = fs.String("title", def.Title, "window title")
		width  = fs.Int("width", def.Width, "framebuffer width")
		height = fs.Int("height", def.Height, "framebuffer height")
		scale  = fs.Int("scale", def.Scale, "window pixels per framebuffer pixel")
		sprite = fs.String("sprite", def.Sprite, "image for the rotating sprite")
		sheet  = fs.String("sheet", def.Sheet, "horizontal sprite strip to animate")
		font   = fs.String("font", def.Font, "TrueType font for the overlay")
		blend  = fs.String("blend", def.Blend, "blend mode of the box")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, opts, err
	}

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return cfg, opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg.Title = *title
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "scale":
			cfg.Scale = *scale
		case "sprite":
			cfg.Sprite = *sprite
		case "sheet":
			cfg.Sheet = *sheet
		case "font":
			cfg.Font = *font
		case "blend":
			cfg.Blend = *blend
		}
	})
	if err := cfg.validate(); err != nil {
		return cfg, opts, fmt.Errorf("config: %w", err)
	}
	return cfg, opts, nil
}
