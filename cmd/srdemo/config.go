package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/sr"
)

// Config holds the demo settings read from TOML.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  int    `toml:"scale"`
	TPS    int    `toml:"tps"`

	// Sprite is the image drawn rotating in the middle. A checkerboard is
	// generated when empty.
	Sprite string `toml:"sprite"`

	// Sheet is a horizontal strip of SheetFrame-wide frames played at
	// FrameRate. A strip is generated when empty.
	Sheet      string `toml:"sheet"`
	SheetFrame int    `toml:"sheet_frame"`
	FrameRate  int    `toml:"frame_rate"`

	// Font is a TrueType file for the overlay text. The 7x13 bitmap
	// font is used when empty.
	Font     string  `toml:"font"`
	FontSize float64 `toml:"font_size"`

	// Blend is the blend mode of the pulsing box, by name.
	Blend string `toml:"blend"`
}

func defaultConfig() Config {
	return Config{
		Title:      "04 - Blend Modes",
		Width:      800,
		Height:     600,
		Scale:      1,
		TPS:        60,
		SheetFrame: 32,
		FrameRate:  sr.DefaultFrameRate,
		FontSize:   16,
		Blend:      sr.BlendAlpha.String(),
	}
}

// loadConfig returns the defaults overlaid with the TOML file at path.
// An empty path gives the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	case c.SheetFrame <= 0:
		return fmt.Errorf("invalid sheet_frame %d", c.SheetFrame)
	}
	_, err := sr.ParseBlendMode(c.Blend)
	return err
}
