package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sr"
)

// Verify at compile time that Face implements sr.Font.
var _ sr.Font = (*Face)(nil)

// Face is a font at a fixed size. It is safe for concurrent use.
type Face struct {
	mu      sync.Mutex // guards face and shaper, whose glyph caches are not thread-safe
	face    font.Face
	metrics Metrics
	shaper  *shaper // nil unless shaping is enabled
	closer  func() error
}

// Default returns the 7x13 bitmap face from golang.org/x/image/font/basicfont.
// It needs no font data and never fails.
func Default() *Face {
	return newFace(basicfont.Face7x13, nil)
}

// GoRegular returns the Go Regular TrueType font at the given size in points.
func GoRegular(size float64, opts ...Option) (*Face, error) {
	return ParseTTF(goregular.TTF, append([]Option{WithSize(size)}, opts...)...)
}

// ParseTTF parses TrueType or OpenType font data.
func ParseTTF(data []byte, opts ...Option) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	ot, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    cfg.size,
		DPI:     cfg.dpi,
		Hinting: cfg.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}

	f := newFace(ot, ot.Close)
	if cfg.shaping {
		ppem := fixed.Int26_6(cfg.size*cfg.dpi/72*64 + 0.5)
		s, err := newShaper(data, parsed, ppem, cfg.language)
		if err != nil {
			_ = ot.Close()
			return nil, err
		}
		f.shaper = s
	}
	return f, nil
}

func newFace(f font.Face, closer func() error) *Face {
	return &Face{face: f, metrics: metricsOf(f), closer: closer}
}

// Metrics returns the face metrics in pixels.
func (f *Face) Metrics() Metrics { return f.metrics }

// Shaped reports whether the face shapes text with HarfBuzz.
func (f *Face) Shaped() bool { return f.shaper != nil }

// Close releases the face. Default faces need no closing.
func (f *Face) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer()
}
