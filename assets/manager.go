package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/h2non/filetype"

	"github.com/gogpu/sr"
	"github.com/gogpu/sr/geom"
	"github.com/gogpu/sr/internal/cache"
	"github.com/gogpu/sr/text"
)

// key identifies a cached asset by the absolute path it was loaded from and
// the parameters it was built with.
type key struct {
	path   string
	params string
}

// GridSpec describes how a sprite sheet image is cut.
//
// With Columns and Rows set, the image is divided into that grid evenly.
// Otherwise sprites are Width x Height pixels separated by Padding, with
// Margin around the sheet; a zero Width or Height spans the image.
type GridSpec struct {
	Width, Height   int
	Columns, Rows   int
	Padding, Margin int
}

// Manager loads and caches assets. It is safe for concurrent use.
type Manager struct {
	cfg    config
	logger *slog.Logger

	images  *cache.Cache[key, *sr.Image]
	sheets  *cache.Cache[key, *sr.SpriteSheet]
	atlases *cache.Cache[key, *Atlas]
	fonts   *cache.Cache[key, *text.Face]

	mu      sync.Mutex
	closed  bool
	dirs    map[string]struct{}
	watcher *fsnotify.Watcher
}

// NewManager creates an empty manager.
func NewManager(opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = sr.Logger()
	}
	return &Manager{
		cfg:     cfg,
		logger:  logger,
		images:  cache.New[key, *sr.Image](cfg.cacheSize),
		sheets:  cache.New[key, *sr.SpriteSheet](cfg.cacheSize),
		atlases: cache.New[key, *Atlas](cfg.cacheSize),
		fonts:   cache.New[key, *text.Face](cfg.cacheSize),
		dirs:    make(map[string]struct{}),
	}
}

// Image returns the decoded image at path.
func (m *Manager) Image(path string) (*sr.Image, error) {
	p, err := m.resolve(path)
	if err != nil {
		return nil, err
	}
	k := key{path: p}
	img, hit, err := m.images.GetOrCreate(k, func() (*sr.Image, error) {
		return m.loadImage(p)
	})
	m.logLookup("image", p, hit, err)
	return img, err
}

// SpriteSheet returns the sheet cut from the image at path.
func (m *Manager) SpriteSheet(path string, spec GridSpec) (*sr.SpriteSheet, error) {
	p, err := m.resolve(path)
	if err != nil {
		return nil, err
	}
	k := key{path: p, params: fmt.Sprintf("grid %+v %v", spec, m.cfg.mode)}
	sheet, hit, err := m.sheets.GetOrCreate(k, func() (*sr.SpriteSheet, error) {
		img, err := m.Image(p)
		if err != nil {
			return nil, err
		}
		return cutSheet(p, func() *sr.SpriteSheet {
			if spec.Columns > 0 && spec.Rows > 0 {
				return sr.NewGridSpriteSheet(img, spec.Columns, spec.Rows, m.cfg.mode)
			}
			return sr.NewSpriteSheet(img, spec.Width, spec.Height, m.cfg.mode,
				sr.WithPadding(spec.Padding), sr.WithMargin(spec.Margin))
		})
	})
	m.logLookup("sprite sheet", p, hit, err)
	return sheet, err
}

// Atlas returns a sheet with one sprite per rectangle of the image at path,
// in the order given.
func (m *Manager) Atlas(path string, rects []geom.RectI, mode sr.BlendMode) (*sr.SpriteSheet, error) {
	p, err := m.resolve(path)
	if err != nil {
		return nil, err
	}
	k := key{path: p, params: fmt.Sprintf("atlas %v %v", rects, mode)}
	sheet, hit, err := m.sheets.GetOrCreate(k, func() (*sr.SpriteSheet, error) {
		img, err := m.Image(p)
		if err != nil {
			return nil, err
		}
		return sr.NewAtlasSpriteSheet(img, rects, mode), nil
	})
	m.logLookup("atlas", p, hit, err)
	return sheet, err
}

// Font returns the TrueType or OpenType font at path at size points.
func (m *Manager) Font(path string, size float64) (*text.Face, error) {
	p, err := m.resolve(path)
	if err != nil {
		return nil, err
	}
	k := key{path: p, params: fmt.Sprintf("size %g", size)}
	face, hit, err := m.fonts.GetOrCreate(k, func() (*text.Face, error) {
		data, err := m.readFile(p)
		if err != nil {
			return nil, err
		}
		if !filetype.IsFont(data) {
			return nil, fmt.Errorf("assets: %s is not a font", p)
		}
		opts := append(append([]text.Option(nil), m.cfg.fontOpts...), text.WithSize(size))
		return text.ParseTTF(data, opts...)
	})
	m.logLookup("font", p, hit, err)
	return face, err
}

// Evict removes every cached asset read from the file at path and returns
// how many entries were removed.
func (m *Manager) Evict(path string) int {
	p, err := filepath.Abs(path)
	if err != nil {
		return 0
	}
	match := func(k key) bool { return k.path == p }

	n := m.images.DeleteFunc(func(k key, _ *sr.Image) bool { return match(k) })
	n += m.sheets.DeleteFunc(func(k key, _ *sr.SpriteSheet) bool { return match(k) })
	n += m.atlases.DeleteFunc(func(k key, a *Atlas) bool { return match(k) || a.imagePath == p })
	n += m.fonts.DeleteFunc(func(k key, _ *text.Face) bool { return match(k) })
	if n > 0 {
		m.logger.Debug("assets: evicted", "path", p, "entries", n)
	}
	return n
}

// Len returns the number of cached assets.
func (m *Manager) Len() int {
	return m.images.Len() + m.sheets.Len() + m.atlases.Len() + m.fonts.Len()
}

// Clear unloads every cached asset. Values already handed out stay valid.
func (m *Manager) Clear() {
	m.images.Clear()
	m.sheets.Clear()
	m.atlases.Clear()
	m.fonts.Clear()
}

// Close stops a running Watch and unloads every asset. Later loads fail
// with ErrClosed.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	w := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	var err error
	if w != nil {
		err = w.Close()
	}
	m.Clear()
	return err
}

// resolve returns the absolute form of path and records its directory for
// watching.
func (m *Manager) resolve(path string) (string, error) {
	p, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("assets: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", ErrClosed
	}
	m.track(filepath.Dir(p))
	return p, nil
}

// track records dir and adds it to a running watcher. Caller must hold m.mu.
func (m *Manager) track(dir string) {
	if _, ok := m.dirs[dir]; ok {
		return
	}
	m.dirs[dir] = struct{}{}
	if m.watcher != nil {
		if err := m.watcher.Add(dir); err != nil {
			m.logger.Warn("assets: watch directory", "dir", dir, "err", err)
		}
	}
}

func (m *Manager) readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return data, nil
}

func (m *Manager) loadImage(path string) (*sr.Image, error) {
	data, err := m.readFile(path)
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("assets: %s: %w", path, sr.ErrUnsupportedFormat)
	}
	img, err := sr.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return img, nil
}

// cutSheet runs build, turning its precondition panics into errors so a bad
// grid in a data file does not bring the program down.
func cutSheet(path string, build func() *sr.SpriteSheet) (sheet *sr.SpriteSheet, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("assets: sprite sheet %s: %v", path, r)
		}
	}()
	return build(), nil
}

func (m *Manager) logLookup(kind, path string, hit bool, err error) {
	switch {
	case err != nil:
		m.logger.Warn("assets: load failed", "kind", kind, "path", path, "err", err)
	case hit:
		m.logger.Debug("assets: cache hit", "kind", kind, "path", path)
	default:
		m.logger.Debug("assets: loaded", "kind", kind, "path", path)
	}
}
