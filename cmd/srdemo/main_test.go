package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sr"
	"github.com/gogpu/sr/assets"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	body := `
title = "Test"
width = 320
height = 200
blend = "Screen"
sheet_frame = 16
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Title != "Test" || cfg.Width != 320 || cfg.Height != 200 || cfg.Blend != "Screen" || cfg.SheetFrame != 16 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.TPS != defaultConfig().TPS {
		t.Errorf("unset keys should keep defaults, TPS = %d", cfg.TPS)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"syntax":     "width = = 3",
		"size":       "width = 0",
		"blend mode": `blend = "Glow"`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := loadConfig(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
	if _, err := loadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseArgsFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	if err := os.WriteFile(path, []byte("width = 320\nheight = 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, opts, err := parseArgs([]string{"-config", path, "-height", "100", "-blend", "Additive", "-headless", "-frames", "3"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 100 || cfg.Blend != "Additive" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !opts.headless || opts.frames != 3 {
		t.Errorf("opts = %+v", opts)
	}

	if _, _, err := parseArgs([]string{"-blend", "Nope"}); err == nil {
		t.Error("expected an error for an unknown blend mode")
	}
}

func TestHeadlessRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	cfg := defaultConfig()
	cfg.Width, cfg.Height = 160, 120

	m := assets.NewManager()
	defer m.Close()
	s, err := newScene(cfg, m)
	if err != nil {
		t.Fatalf("newScene: %v", err)
	}
	if err := renderHeadless(s, cfg, options{frames: 10, output: out}); err != nil {
		t.Fatalf("renderHeadless: %v", err)
	}

	img, err := sr.Load(out)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Width() != 160 || img.Height() != 120 {
		t.Fatalf("size = %dx%d", img.Width(), img.Height())
	}

	// The box outline runs along the top edge of the middle half.
	if got := img.Pixel(80, 30); got != sr.White {
		t.Errorf("box outline pixel = %v, want white", got)
	}
	if got := img.Pixel(0, 119); got != sr.Black {
		t.Errorf("corner pixel = %v, want black", got)
	}
}

func TestSceneUsesAssetFiles(t *testing.T) {
	dir := t.TempDir()
	spritePath := filepath.Join(dir, "sprite.png")
	sheetPath := filepath.Join(dir, "sheet.png")
	if err := checkerboard(64, 64, 8).SavePNG(spritePath); err != nil {
		t.Fatal(err)
	}
	if err := strip(16, 4).SavePNG(sheetPath); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	cfg.Width, cfg.Height = 100, 100
	cfg.Sprite, cfg.Sheet, cfg.SheetFrame = spritePath, sheetPath, 16

	m := assets.NewManager()
	defer m.Close()
	s, err := newScene(cfg, m)
	if err != nil {
		t.Fatalf("newScene: %v", err)
	}
	if s.sprite.Width() != 64 || s.anim.Sheet().Len() != 4 {
		t.Errorf("sprite %dx%d, %d frames", s.sprite.Width(), s.sprite.Height(), s.anim.Sheet().Len())
	}

	cfg.Sprite = filepath.Join(dir, "missing.png")
	if _, err := newScene(cfg, m); err == nil {
		t.Error("expected an error for a missing sprite")
	}
}
