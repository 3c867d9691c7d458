package assets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/gogpu/sr"
	"github.com/gogpu/sr/geom"
)

// Atlas is a sprite sheet whose sprites are looked up by name, as exported
// by TexturePacker and compatible tools.
type Atlas struct {
	sheet     *sr.SpriteSheet
	names     []string
	index     map[string]int
	imagePath string
}

// Sheet returns the underlying sprite sheet. Sprite i has name Names()[i].
func (a *Atlas) Sheet() *sr.SpriteSheet { return a.sheet }

// Len returns the number of sprites.
func (a *Atlas) Len() int { return len(a.names) }

// Names returns the sprite names in sheet order.
func (a *Atlas) Names() []string { return slices.Clone(a.names) }

// Index returns the sheet index of the named sprite.
func (a *Atlas) Index(name string) (int, bool) {
	i, ok := a.index[name]
	return i, ok
}

// Sprite returns the named sprite, or an empty sprite if there is none.
func (a *Atlas) Sprite(name string) sr.Sprite {
	i, ok := a.index[name]
	if !ok {
		return sr.Sprite{}
	}
	return a.sheet.At(i)
}

// AtlasJSON loads a TexturePacker JSON atlas, in either the hash or the
// array layout. The image named by meta.image is resolved relative to the
// JSON file.
func (m *Manager) AtlasJSON(path string) (*Atlas, error) {
	p, err := m.resolve(path)
	if err != nil {
		return nil, err
	}
	k := key{path: p, params: fmt.Sprintf("json %v", m.cfg.mode)}
	atlas, hit, err := m.atlases.GetOrCreate(k, func() (*Atlas, error) {
		data, err := m.readFile(p)
		if err != nil {
			return nil, err
		}
		doc, err := parseAtlas(data)
		if err != nil {
			return nil, fmt.Errorf("assets: %s: %w", p, err)
		}

		imgPath := filepath.Join(filepath.Dir(p), filepath.FromSlash(doc.image))
		img, err := m.Image(imgPath)
		if err != nil {
			return nil, err
		}

		a := &Atlas{
			names:     make([]string, len(doc.frames)),
			index:     make(map[string]int, len(doc.frames)),
			imagePath: imgPath,
		}
		rects := make([]geom.RectI, len(doc.frames))
		for i, f := range doc.frames {
			a.names[i] = f.name
			a.index[f.name] = i
			rects[i] = f.rect
		}
		a.sheet = sr.NewAtlasSpriteSheet(img, rects, m.cfg.mode)
		return a, nil
	})
	m.logLookup("atlas json", p, hit, err)
	return atlas, err
}

type atlasFrame struct {
	name string
	rect geom.RectI
}

type atlasDoc struct {
	image  string
	frames []atlasFrame
}

// jsonFrame is one entry of the TexturePacker "frames" member.
type jsonFrame struct {
	Filename string `json:"filename"`
	Frame    struct {
		X int `json:"x"`
		Y int `json:"y"`
		W int `json:"w"`
		H int `json:"h"`
	} `json:"frame"`
	Rotated bool `json:"rotated"`
}

func parseAtlas(data []byte) (atlasDoc, error) {
	var raw struct {
		Frames json.RawMessage `json:"frames"`
		Meta   struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return atlasDoc{}, fmt.Errorf("decode atlas: %w", err)
	}
	if raw.Meta.Image == "" {
		return atlasDoc{}, errors.New("atlas has no meta.image")
	}

	frames, err := parseFrames(raw.Frames)
	if err != nil {
		return atlasDoc{}, err
	}

	doc := atlasDoc{image: raw.Meta.Image, frames: make([]atlasFrame, 0, len(frames))}
	seen := make(map[string]bool, len(frames))
	for _, f := range frames {
		if f.Rotated {
			return atlasDoc{}, fmt.Errorf("frame %q: rotated frames are not supported", f.Filename)
		}
		if seen[f.Filename] {
			return atlasDoc{}, fmt.Errorf("duplicate frame %q", f.Filename)
		}
		seen[f.Filename] = true
		doc.frames = append(doc.frames, atlasFrame{
			name: f.Filename,
			rect: geom.Rect(f.Frame.X, f.Frame.Y, f.Frame.W, f.Frame.H),
		})
	}
	return doc, nil
}

// parseFrames decodes the array layout directly and walks the hash layout
// token by token so frames keep their file order.
func parseFrames(raw json.RawMessage) ([]jsonFrame, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("atlas has no frames")
	}

	switch raw[0] {
	case '[':
		var frames []jsonFrame
		if err := json.Unmarshal(raw, &frames); err != nil {
			return nil, fmt.Errorf("decode frames: %w", err)
		}
		return frames, nil

	case '{':
		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("decode frames: %w", err)
		}
		var frames []jsonFrame
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("decode frames: %w", err)
			}
			var f jsonFrame
			if err := dec.Decode(&f); err != nil {
				return nil, fmt.Errorf("decode frame %v: %w", tok, err)
			}
			f.Filename = tok.(string)
			frames = append(frames, f)
		}
		return frames, nil

	default:
		return nil, errors.New("atlas frames must be an object or an array")
	}
}
