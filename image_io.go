package sr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	// Register the decoders accepted by Load and Decode.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("sr: unsupported image format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("sr: empty image data")
)

// Load decodes the image file at path. PNG, JPEG, GIF, BMP, TIFF and WebP
// are supported.
func Load(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("sr: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return img, nil
}

// LoadBytes decodes an encoded image held in memory.
func LoadBytes(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, detecting the format from its content.
func Decode(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("sr: decode image: %w", err)
	}
	return FromStdImage(src), nil
}

// FromFile loads the image at path, returning an empty image on failure.
// The failure is logged at warning level; use Load to get the error.
func FromFile(path string) *Image {
	img, err := Load(path)
	if err != nil {
		Logger().Warn("sr: failed to load image", "path", path, "err", err)
		return &Image{}
	}
	return img
}

// FromMemory copies width*height colors into a new image. A nil slice or a
// zero size gives an empty image. It panics if data is shorter than
// width*height.
func FromMemory(data []Color, width, height int) *Image {
	if data == nil || width <= 0 || height <= 0 {
		return &Image{}
	}
	if len(data) < width*height {
		panic(fmt.Sprintf("sr: FromMemory: %d colors for a %dx%d image", len(data), width, height))
	}
	img := NewImage(width, height)
	copy(img.pix, data)
	return img
}

// FromBytes copies straight RGBA bytes, 4 per pixel in R, G, B, A order,
// into a new image. A nil slice or a zero size gives an empty image. It
// panics if pix is shorter than width*height*4.
func FromBytes(pix []byte, width, height int) *Image {
	if pix == nil || width <= 0 || height <= 0 {
		return &Image{}
	}
	if len(pix) < width*height*4 {
		panic(fmt.Sprintf("sr: FromBytes: %d bytes for a %dx%d image", len(pix), width, height))
	}
	img := NewImage(width, height)
	for i := range img.pix {
		p := pix[i*4 : i*4+4 : i*4+4]
		img.pix[i] = Color{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	return img
}

// FromStdImage converts any image.Image to an Image. The result has its
// origin at the top-left of src's bounds.
func FromStdImage(src image.Image) *Image {
	b := src.Bounds()
	if b.Empty() {
		return &Image{}
	}

	n, ok := src.(*image.NRGBA)
	if !ok {
		n = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Copy(n, image.Point{}, src, b, xdraw.Src, nil)
		b = n.Bounds()
	}

	img := NewImage(b.Dx(), b.Dy())
	for y := range img.height {
		row := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := img.pix[y*img.width : (y+1)*img.width]
		for x := range dst {
			p := row[x*4 : x*4+4 : x*4+4]
			dst[x] = Color{R: p[0], G: p[1], B: p[2], A: p[3]}
		}
	}
	return img
}

// ToStdImage copies the image into a new *image.NRGBA.
func (img *Image) ToStdImage() *image.NRGBA {
	n := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for i, c := range img.pix {
		p := n.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	}
	return n
}

// EncodePNG encodes the image as PNG to the given writer.
func (img *Image) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, img.ToStdImage()); err != nil {
		return fmt.Errorf("sr: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the image as JPEG with the given quality (1-100).
// Alpha is discarded.
func (img *Image) EncodeJPEG(w io.Writer, quality int) error {
	quality = clampInt(quality, 1, 100)
	if err := jpeg.Encode(w, img.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("sr: encode JPEG: %w", err)
	}
	return nil
}

// SavePNG saves the image as a PNG file.
func (img *Image) SavePNG(path string) error {
	return img.save(path, img.EncodePNG)
}

// SaveJPEG saves the image as a JPEG file with the given quality (1-100).
func (img *Image) SaveJPEG(path string, quality int) error {
	return img.save(path, func(w io.Writer) error { return img.EncodeJPEG(w, quality) })
}

func (img *Image) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("sr: create file: %w", err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
