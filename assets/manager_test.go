package assets

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sr"
	"github.com/gogpu/sr/geom"
)

// writePNG saves a w x h image filled with c and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int, c sr.Color) string {
	t.Helper()
	img := sr.NewImage(w, h)
	img.Clear(c)
	path := filepath.Join(dir, name)
	require.NoError(t, img.SavePNG(path))
	return path
}

func TestManagerImageCaches(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", 4, 3, sr.Red)

	m := NewManager()
	defer m.Close()

	a, err := m.Image(path)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Width())
	assert.Equal(t, sr.Red, a.Pixel(3, 2))

	// A different spelling of the same path hits the cache.
	b, err := m.Image(filepath.Join(dir, ".", "a.png"))
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, m.Len())
}

func TestManagerImageErrors(t *testing.T) {
	dir := t.TempDir()
	notImage := filepath.Join(dir, "readme.png")
	require.NoError(t, os.WriteFile(notImage, []byte("hello"), 0o600))

	m := NewManager()
	defer m.Close()

	_, err := m.Image(notImage)
	require.ErrorIs(t, err, sr.ErrUnsupportedFormat)

	_, err = m.Image(filepath.Join(dir, "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Zero(t, m.Len(), "failed loads must not be cached")
}

func TestManagerSpriteSheet(t *testing.T) {
	path := writePNG(t, t.TempDir(), "sheet.png", 64, 32, sr.White)

	m := NewManager(WithBlendMode(sr.BlendAdditive))
	defer m.Close()

	sheet, err := m.SpriteSheet(path, GridSpec{Width: 16, Height: 16})
	require.NoError(t, err)
	assert.Equal(t, 8, sheet.Len())
	assert.Equal(t, sr.BlendAdditive, sheet.BlendMode())

	grid, err := m.SpriteSheet(path, GridSpec{Columns: 2, Rows: 1})
	require.NoError(t, err)
	assert.Equal(t, geom.Rect(32, 0, 32, 32), grid.At(1).Rect())

	again, err := m.SpriteSheet(path, GridSpec{Width: 16, Height: 16})
	require.NoError(t, err)
	assert.Same(t, sheet, again)
	assert.Same(t, sheet.Image(), grid.Image(), "sheets share the cached image")

	_, err = m.SpriteSheet(path, GridSpec{Width: 20, Height: 16})
	require.Error(t, err, "uneven grid is an error, not a panic")
	assert.Contains(t, err.Error(), "sprite sheet")
}

func TestManagerAtlas(t *testing.T) {
	path := writePNG(t, t.TempDir(), "atlas.png", 32, 32, sr.Blue)

	m := NewManager()
	defer m.Close()

	rects := []geom.RectI{geom.Rect(0, 0, 8, 8), geom.Rect(8, 0, 24, 12)}
	sheet, err := m.Atlas(path, rects, sr.BlendDisabled)
	require.NoError(t, err)
	require.Equal(t, 2, sheet.Len())
	assert.Equal(t, rects[1], sheet.At(1).Rect())
	assert.Equal(t, sr.BlendDisabled, sheet.At(0).BlendMode())
}

func TestManagerFont(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "go.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o600))

	m := NewManager()
	defer m.Close()

	small, err := m.Font(path, 12)
	require.NoError(t, err)
	large, err := m.Font(path, 24)
	require.NoError(t, err)
	assert.NotSame(t, small, large)
	assert.Greater(t, large.Metrics().Ascent, small.Metrics().Ascent)

	cached, err := m.Font(path, 12)
	require.NoError(t, err)
	assert.Same(t, small, cached)

	png := writePNG(t, dir, "x.png", 2, 2, sr.Black)
	_, err = m.Font(png, 12)
	require.Error(t, err)
}

func TestManagerEvictReloads(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "hero.png", 32, 16, sr.Red)

	m := NewManager()
	defer m.Close()

	img, err := m.Image(path)
	require.NoError(t, err)
	_, err = m.SpriteSheet(path, GridSpec{Width: 16})
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	writePNG(t, dir, "hero.png", 32, 16, sr.Green)
	assert.Equal(t, 2, m.Evict(path))
	assert.Zero(t, m.Evict(path))

	reloaded, err := m.Image(path)
	require.NoError(t, err)
	assert.NotSame(t, img, reloaded)
	assert.Equal(t, sr.Green, reloaded.Pixel(0, 0))
	assert.Equal(t, sr.Red, img.Pixel(0, 0), "values already handed out are untouched")
}

func TestManagerClearAndClose(t *testing.T) {
	path := writePNG(t, t.TempDir(), "a.png", 2, 2, sr.Red)

	m := NewManager()
	_, err := m.Image(path)
	require.NoError(t, err)

	m.Clear()
	assert.Zero(t, m.Len())

	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "Close is idempotent")

	_, err = m.Image(path)
	require.ErrorIs(t, err, ErrClosed)
	_, err = m.AtlasJSON(path)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, m.Watch(context.Background()), ErrClosed)
}

func TestManagerCacheSize(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(WithCacheSize(2))
	defer m.Close()

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		_, err := m.Image(writePNG(t, dir, name, 1, 1, sr.White))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, m.Len())
}

func TestManagerLogsLookups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	path := writePNG(t, t.TempDir(), "a.png", 1, 1, sr.White)

	m := NewManager(WithLogger(logger))
	defer m.Close()

	_, err := m.Image(path)
	require.NoError(t, err)
	_, err = m.Image(path)
	require.NoError(t, err)
	_, _ = m.Image(path + ".missing")

	out := buf.String()
	assert.Contains(t, out, "assets: loaded")
	assert.Contains(t, out, "assets: cache hit")
	assert.Contains(t, out, "level=WARN")
}

func TestManagerWatchEvictsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "live.png", 2, 2, sr.Red)

	m := NewManager()
	defer m.Close()

	_, err := m.Image(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Watch(ctx) }()

	blue := sr.NewImage(2, 2)
	blue.Clear(sr.Blue)

	// Rewriting on every tick covers the time the watcher needs to start.
	require.Eventually(t, func() bool {
		_ = blue.SavePNG(path)
		return m.Len() == 0
	}, 5*time.Second, 20*time.Millisecond)

	img, err := m.Image(path)
	require.NoError(t, err)
	assert.Equal(t, sr.Blue, img.Pixel(1, 1))

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestManagerCloseStopsWatch(t *testing.T) {
	m := NewManager()
	done := make(chan error, 1)
	go func() { done <- m.Watch(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, m.Close())

	select {
	case err := <-done:
		assert.True(t, err == nil || errors.Is(err, ErrClosed), "err = %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after Close")
	}
}
