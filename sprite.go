package sr

import "github.com/gogpu/sr/geom"

// Sprite is a read-only view of a rectangle inside an Image, carrying the
// tint color and blend mode used to draw it.
//
// A Sprite references its Image and does not copy pixels; changes to the
// image show through. The zero value is the empty sprite and draws nothing.
// Sprites are comparable: two sprites are equal when they view the same
// rectangle of the same image with the same tint and blend mode.
type Sprite struct {
	image *Image
	uv    geom.IVec2
	size  geom.IVec2
	color Color
	blend BlendMode
}

// NewSprite returns a sprite viewing r inside img, tinted White and drawn
// with mode.
func NewSprite(img *Image, r geom.RectI, mode BlendMode) Sprite {
	if img.Empty() || r.Empty() {
		return Sprite{}
	}
	return Sprite{
		image: img,
		uv:    geom.IV2(r.X, r.Y),
		size:  geom.IV2(r.Width, r.Height),
		color: White,
		blend: mode,
	}
}

// Empty reports whether the sprite has no image to draw from.
func (s Sprite) Empty() bool {
	return s.image.Empty() || s.size.X <= 0 || s.size.Y <= 0
}

// Image returns the image the sprite views, nil for the empty sprite.
func (s Sprite) Image() *Image { return s.image }

// UV returns the top-left texel of the sprite inside its image.
func (s Sprite) UV() geom.IVec2 { return s.uv }

// Size returns the sprite size in pixels.
func (s Sprite) Size() geom.IVec2 { return s.size }

// Width returns the sprite width in pixels.
func (s Sprite) Width() int { return s.size.X }

// Height returns the sprite height in pixels.
func (s Sprite) Height() int { return s.size.Y }

// Rect returns the rectangle the sprite views.
func (s Sprite) Rect() geom.RectI {
	return geom.Rect(s.uv.X, s.uv.Y, s.size.X, s.size.Y)
}

// Color returns the tint multiplied into every texel.
func (s Sprite) Color() Color { return s.color }

// BlendMode returns the mode the sprite is drawn with.
func (s Sprite) BlendMode() BlendMode { return s.blend }

// WithColor returns a copy of s tinted with c.
func (s Sprite) WithColor(c Color) Sprite {
	s.color = c
	return s
}

// WithBlendMode returns a copy of s drawn with mode.
func (s Sprite) WithBlendMode(mode BlendMode) Sprite {
	s.blend = mode
	return s
}

// At returns the sprite texel at (x, y), relative to the sprite's top-left
// corner and clamped to the sprite rectangle. The tint is not applied.
func (s Sprite) At(x, y int) Color {
	if s.Empty() {
		return Transparent
	}
	x = clampInt(x, 0, s.size.X-1)
	y = clampInt(y, 0, s.size.Y-1)
	return s.image.Sample(s.uv.X+x, s.uv.Y+y, AddressClamp)
}

// rebind returns s viewing the same rectangle of img.
func (s Sprite) rebind(img *Image) Sprite {
	if s.image == nil {
		return s
	}
	s.image = img
	return s
}
