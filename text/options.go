package text

import "golang.org/x/image/font"

// Option configures a face created by ParseTTF.
type Option func(*config)

type config struct {
	size     float64
	dpi      float64
	hinting  font.Hinting
	shaping  bool
	language string
}

func defaultConfig() config {
	return config{
		size:     12,
		dpi:      72,
		hinting:  font.HintingFull,
		language: "en",
	}
}

// WithSize sets the font size in points. Default: 12.
func WithSize(points float64) Option {
	return func(c *config) {
		if points > 0 {
			c.size = points
		}
	}
}

// WithDPI sets the resolution used to convert points to pixels.
// Default: 72, one pixel per point.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the outline hinting of unshaped text.
// Default: font.HintingFull.
func WithHinting(h font.Hinting) Option {
	return func(c *config) {
		c.hinting = h
	}
}

// WithShaping enables HarfBuzz shaping. Shaped text uses the font's
// kerning, mark positioning and substitution tables.
func WithShaping(enabled bool) Option {
	return func(c *config) {
		c.shaping = enabled
	}
}

// WithLanguage sets the BCP 47 language passed to the shaper.
// Default: "en".
func WithLanguage(lang string) Option {
	return func(c *config) {
		if lang != "" {
			c.language = lang
		}
	}
}
