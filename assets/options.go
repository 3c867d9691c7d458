package assets

import (
	"log/slog"

	"github.com/gogpu/sr"
	"github.com/gogpu/sr/text"
)

// Option configures a Manager.
type Option func(*config)

type config struct {
	cacheSize int
	mode      sr.BlendMode
	logger    *slog.Logger
	fontOpts  []text.Option
}

func defaultConfig() config {
	return config{
		cacheSize: 128,
		mode:      sr.BlendAlpha,
	}
}

// WithCacheSize sets how many entries each asset kind keeps before the least
// recently used one is evicted. Zero means unlimited. Default: 128.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = max(n, 0)
	}
}

// WithBlendMode sets the blend mode of sprites in loaded sheets and
// atlases. Default: sr.BlendAlpha.
func WithBlendMode(m sr.BlendMode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithLogger sets the logger for cache activity. Default: sr.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithFontOptions sets options applied to every font loaded with Font,
// before the size.
func WithFontOptions(opts ...text.Option) Option {
	return func(c *config) {
		c.fontOpts = append(c.fontOpts, opts...)
	}
}
