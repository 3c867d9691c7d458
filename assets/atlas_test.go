package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sr"
	"github.com/gogpu/sr/geom"
)

const hashAtlas = `{
  "frames": {
    "walk_2.png": {"frame": {"x": 16, "y": 0, "w": 16, "h": 16}, "rotated": false},
    "walk_1.png": {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}, "rotated": false},
    "icon.png":   {"frame": {"x": 0, "y": 16, "w": 8, "h": 8}}
  },
  "meta": {"image": "img/sheet.png", "size": {"w": 32, "h": 32}}
}`

const arrayAtlas = `{
  "frames": [
    {"filename": "a", "frame": {"x": 0, "y": 0, "w": 4, "h": 4}},
    {"filename": "b", "frame": {"x": 4, "y": 0, "w": 4, "h": 8}}
  ],
  "meta": {"image": "sheet.png"}
}`

func writeAtlas(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestAtlasJSONHash(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img"), 0o755))
	writePNG(t, filepath.Join(dir, "img"), "sheet.png", 32, 32, sr.White)
	path := writeAtlas(t, dir, "sheet.json", hashAtlas)

	m := NewManager()
	defer m.Close()

	atlas, err := m.AtlasJSON(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"walk_2.png", "walk_1.png", "icon.png"}, atlas.Names(), "file order is kept")
	assert.Equal(t, 3, atlas.Len())
	assert.Equal(t, geom.Rect(0, 16, 8, 8), atlas.Sprite("icon.png").Rect())

	i, ok := atlas.Index("walk_1.png")
	require.True(t, ok)
	assert.Equal(t, atlas.Sheet().At(i), atlas.Sprite("walk_1.png"))

	_, ok = atlas.Index("nope")
	assert.False(t, ok)
	assert.True(t, atlas.Sprite("nope").Empty())

	again, err := m.AtlasJSON(path)
	require.NoError(t, err)
	assert.Same(t, atlas, again)
}

func TestAtlasJSONArray(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "sheet.png", 8, 8, sr.White)
	path := writeAtlas(t, dir, "sheet.json", arrayAtlas)

	m := NewManager(WithBlendMode(sr.BlendMultiply))
	defer m.Close()

	atlas, err := m.AtlasJSON(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, atlas.Names())
	assert.Equal(t, geom.Rect(4, 0, 4, 8), atlas.Sprite("b").Rect())
	assert.Equal(t, sr.BlendMultiply, atlas.Sprite("a").BlendMode())
}

func TestAtlasJSONEvictedWithImage(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, "sheet.png", 8, 8, sr.White)
	path := writeAtlas(t, dir, "sheet.json", arrayAtlas)

	m := NewManager()
	defer m.Close()

	_, err := m.AtlasJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Evict(img), "image and the atlas built on it")
	assert.Zero(t, m.Len())
}

func TestAtlasJSONErrors(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "sheet.png", 8, 8, sr.White)

	tests := []struct {
		name, body, want string
	}{
		{"not json", `frames:`, "decode atlas"},
		{"no image", `{"frames": []}`, "meta.image"},
		{"no frames", `{"meta": {"image": "sheet.png"}}`, "no frames"},
		{"bad frames", `{"frames": 3, "meta": {"image": "sheet.png"}}`, "object or an array"},
		{"rotated", `{"frames": {"r": {"frame": {"x":0,"y":0,"w":2,"h":2}, "rotated": true}}, "meta": {"image": "sheet.png"}}`, "rotated"},
		{"duplicate", `{"frames": [{"filename": "a"}, {"filename": "a"}], "meta": {"image": "sheet.png"}}`, "duplicate"},
		{"missing image", `{"frames": [], "meta": {"image": "gone.png"}}`, "gone.png"},
	}
	m := NewManager()
	defer m.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeAtlas(t, dir, tt.name+".json", tt.body)
			_, err := m.AtlasJSON(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
