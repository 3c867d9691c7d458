package sr

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/sr/geom"
)

// Image is a CPU pixel buffer of straight 8-bit RGBA colors in row-major
// order. It is the render target and the texture source for every drawing
// operation in sr.
//
// The zero value is an empty image. Drawing into an empty image and sampling
// from one are no-ops.
//
// An Image implements image.Image and draw.Image, so it can be passed to the
// standard image/draw and image/png packages directly.
type Image struct {
	width  int
	height int
	aabb   geom.AABB
	pix    []Color
}

// NewImage creates a width x height image cleared to Transparent.
// Zero or negative sizes give an empty image.
func NewImage(width, height int) *Image {
	img := &Image{}
	img.Resize(width, height)
	return img
}

// Resize changes the dimensions of the image. It is a no-op if the size is
// unchanged; otherwise the buffer is reallocated and the previous contents
// are discarded.
func (img *Image) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	if width == img.width && height == img.height {
		return
	}
	img.width = width
	img.height = height
	img.pix = make([]Color, width*height)
	img.updateBounds()
}

func (img *Image) updateBounds() {
	img.aabb = geom.AABBFromRect(geom.Rect(0, 0, img.width, img.height))
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Empty reports whether the image holds no pixels. Failed loads return
// empty images.
func (img *Image) Empty() bool {
	return img == nil || img.width == 0 || img.height == 0
}

// Rect returns the image rectangle, {0, 0, Width, Height}.
func (img *Image) Rect() geom.RectI {
	return geom.Rect(0, 0, img.width, img.height)
}

// AABB returns the inclusive pixel bounds of the image,
// {0,0}-{Width-1,Height-1}.
func (img *Image) AABB() geom.AABB {
	return img.aabb
}

// Pix returns the underlying pixel slice, row-major with stride Width.
// Writes through the slice are visible to the image.
func (img *Image) Pix() []Color {
	return img.pix
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	c := &Image{}
	c.Assign(img)
	return c
}

// Assign makes img a deep copy of src.
func (img *Image) Assign(src *Image) {
	if img == src {
		return
	}
	if src.Empty() {
		*img = Image{}
		return
	}
	img.Resize(src.width, src.height)
	copy(img.pix, src.pix)
}

// Move transfers the pixel buffer to a new Image and leaves img empty.
func (img *Image) Move() *Image {
	moved := &Image{
		width:  img.width,
		height: img.height,
		aabb:   img.aabb,
		pix:    img.pix,
	}
	*img = Image{}
	return moved
}

// Clear fills the whole image with c. No blending is applied.
func (img *Image) Clear(c Color) {
	if img.Empty() {
		return
	}
	w := img.width
	rows(0, img.height, w, func(y0, y1 int) {
		band := img.pix[y0*w : y1*w]
		for i := range band {
			band[i] = c
		}
	})
}

// Plot blends c into the pixel at (x, y). Coordinates outside the image are
// silently discarded.
func (img *Image) Plot(x, y int, c Color, mode BlendMode) {
	if uint(x) >= uint(img.width) || uint(y) >= uint(img.height) {
		return
	}
	i := y*img.width + x
	img.pix[i] = mode.Blend(c, img.pix[i])
}

// Pixel returns the color at (x, y). It panics if (x, y) is outside the
// image; use Sample for clamped or wrapped reads.
func (img *Image) Pixel(x, y int) Color {
	img.mustContain(x, y)
	return img.pix[y*img.width+x]
}

// SetPixel overwrites the color at (x, y) without blending. It panics if
// (x, y) is outside the image; use Plot for clipped writes.
func (img *Image) SetPixel(x, y int, c Color) {
	img.mustContain(x, y)
	img.pix[y*img.width+x] = c
}

func (img *Image) mustContain(x, y int) {
	if uint(x) >= uint(img.width) || uint(y) >= uint(img.height) {
		panic(fmt.Sprintf("sr: pixel (%d, %d) out of range for %dx%d image", x, y, img.width, img.height))
	}
}

// ColorModel converts any color.Color to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return ColorModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.width, img.height) }

// At implements image.Image. Points outside the image are Transparent.
func (img *Image) At(x, y int) color.Color {
	if uint(x) >= uint(img.width) || uint(y) >= uint(img.height) {
		return Transparent
	}
	return img.pix[y*img.width+x]
}

// Set implements draw.Image. Points outside the image are ignored.
func (img *Image) Set(x, y int, c color.Color) {
	if uint(x) >= uint(img.width) || uint(y) >= uint(img.height) {
		return
	}
	img.pix[y*img.width+x] = FromColor(c)
}
