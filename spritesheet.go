package sr

import (
	"fmt"

	"github.com/gogpu/sr/geom"
)

// SpriteSheet partitions a single Image into sprites, either as a uniform
// grid or from an explicit list of rectangles (an atlas).
//
// Sprites are stored in row-major order: the sprite in row r and column c
// has index r*Columns()+c. Atlas sheets have one row.
//
// The sheet owns its image; every sprite references it. Clone produces a
// sheet whose sprites reference the cloned image.
type SpriteSheet struct {
	image   *Image
	columns int
	rows    int
	blend   BlendMode
	sprites []Sprite
}

// SheetOption configures grid partitioning in NewSpriteSheet.
type SheetOption func(*sheetOptions)

type sheetOptions struct {
	padding int
	margin  int
}

// WithPadding sets the gap in pixels between neighboring cells.
func WithPadding(px int) SheetOption {
	return func(o *sheetOptions) {
		o.padding = max(px, 0)
	}
}

// WithMargin sets the border in pixels around the whole grid.
func WithMargin(px int) SheetOption {
	return func(o *sheetOptions) {
		o.margin = max(px, 0)
	}
}

// NewSpriteSheet cuts img into a grid of spriteWidth x spriteHeight cells.
// A zero sprite dimension uses the whole image dimension. With padding p and
// margin m, each dimension must satisfy (size - 2m + p) % (sprite + p) == 0;
// NewSpriteSheet panics otherwise.
//
// An empty image gives an empty sheet.
func NewSpriteSheet(img *Image, spriteWidth, spriteHeight int, mode BlendMode, opts ...SheetOption) *SpriteSheet {
	var o sheetOptions
	for _, opt := range opts {
		opt(&o)
	}

	sheet := &SpriteSheet{image: img, blend: mode}
	if img.Empty() {
		sheet.image = &Image{}
		return sheet
	}

	w, h := img.Width(), img.Height()
	if spriteWidth <= 0 {
		spriteWidth = w - 2*o.margin
	}
	if spriteHeight <= 0 {
		spriteHeight = h - 2*o.margin
	}

	sheet.columns = gridCount("width", w, spriteWidth, o)
	sheet.rows = gridCount("height", h, spriteHeight, o)

	sheet.sprites = make([]Sprite, 0, sheet.columns*sheet.rows)
	for r := range sheet.rows {
		for c := range sheet.columns {
			x := o.margin + c*(spriteWidth+o.padding)
			y := o.margin + r*(spriteHeight+o.padding)
			sheet.sprites = append(sheet.sprites, NewSprite(img, geom.Rect(x, y, spriteWidth, spriteHeight), mode))
		}
	}
	return sheet
}

// gridCount returns how many cells of size fit along a dimension, panicking
// if they do not tile it exactly.
func gridCount(axis string, dim, size int, o sheetOptions) int {
	span := dim - 2*o.margin + o.padding
	step := size + o.padding
	if size <= 0 || span <= 0 || span%step != 0 {
		panic(fmt.Sprintf("sr: image %s %d is not divisible into %d px sprites (padding %d, margin %d)",
			axis, dim, size, o.padding, o.margin))
	}
	return span / step
}

// NewGridSpriteSheet cuts img into columns x rows equal cells. It panics if
// the image size is not divisible by the cell counts.
func NewGridSpriteSheet(img *Image, columns, rows int, mode BlendMode) *SpriteSheet {
	if img.Empty() {
		return &SpriteSheet{image: &Image{}, blend: mode}
	}
	if columns <= 0 || rows <= 0 || img.Width()%columns != 0 || img.Height()%rows != 0 {
		panic(fmt.Sprintf("sr: %dx%d image is not divisible into %dx%d cells",
			img.Width(), img.Height(), columns, rows))
	}
	return NewSpriteSheet(img, img.Width()/columns, img.Height()/rows, mode)
}

// NewAtlasSpriteSheet makes one sprite per rectangle, in the given order.
// The sheet has len(rects) columns and a single row.
func NewAtlasSpriteSheet(img *Image, rects []geom.RectI, mode BlendMode) *SpriteSheet {
	if img.Empty() {
		img = &Image{}
	}
	sheet := &SpriteSheet{
		image:   img,
		columns: len(rects),
		rows:    1,
		blend:   mode,
		sprites: make([]Sprite, len(rects)),
	}
	for i, r := range rects {
		sheet.sprites[i] = NewSprite(img, r, mode)
	}
	return sheet
}

// LoadSpriteSheet loads the image at path and cuts it into a grid as
// NewSpriteSheet does.
func LoadSpriteSheet(path string, spriteWidth, spriteHeight int, mode BlendMode, opts ...SheetOption) (*SpriteSheet, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewSpriteSheet(img, spriteWidth, spriteHeight, mode, opts...), nil
}

// At returns the sprite at index i, or the empty sprite when i is out of
// range.
func (s *SpriteSheet) At(i int) Sprite {
	if i < 0 || i >= len(s.sprites) {
		return Sprite{}
	}
	return s.sprites[i]
}

// Cell returns the sprite in the given row and column.
func (s *SpriteSheet) Cell(row, col int) Sprite {
	if col < 0 || col >= s.columns {
		return Sprite{}
	}
	return s.At(row*s.columns + col)
}

// Len returns the number of sprites.
func (s *SpriteSheet) Len() int { return len(s.sprites) }

// Columns returns the number of grid columns.
func (s *SpriteSheet) Columns() int { return s.columns }

// Rows returns the number of grid rows.
func (s *SpriteSheet) Rows() int { return s.rows }

// Image returns the sheet image.
func (s *SpriteSheet) Image() *Image { return s.image }

// BlendMode returns the blend mode the sprites were created with.
func (s *SpriteSheet) BlendMode() BlendMode { return s.blend }

// Sprites returns the sprites in index order. The slice is shared with the
// sheet and must not be modified.
func (s *SpriteSheet) Sprites() []Sprite { return s.sprites }

// Clone deep-copies the sheet image and re-derives every sprite against the
// copy.
func (s *SpriteSheet) Clone() *SpriteSheet {
	img := s.image.Clone()
	c := &SpriteSheet{
		image:   img,
		columns: s.columns,
		rows:    s.rows,
		blend:   s.blend,
		sprites: make([]Sprite, len(s.sprites)),
	}
	for i, sp := range s.sprites {
		c.sprites[i] = sp.rebind(img)
	}
	return c
}
