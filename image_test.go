package sr

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/gogpu/sr/geom"
)

// Verify at compile time that Image implements draw.Image.
var _ draw.Image = (*Image)(nil)

func TestNewImage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"normal", 100, 50, 100, 50},
		{"single pixel", 1, 1, 1, 1},
		{"zero width", 0, 10, 0, 0},
		{"negative", -5, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.width, tt.height)
			if img.Width() != tt.wantW || img.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", img.Width(), img.Height(), tt.wantW, tt.wantH)
			}
			if len(img.Pix()) != tt.wantW*tt.wantH {
				t.Errorf("len(Pix()) = %d, want %d", len(img.Pix()), tt.wantW*tt.wantH)
			}
			if img.Empty() != (tt.wantW == 0) {
				t.Errorf("Empty() = %v", img.Empty())
			}
		})
	}
}

func TestImage_BoundsTrackSize(t *testing.T) {
	img := NewImage(8, 4)
	want := geom.AABB{Max: geom.V3(7, 3, 0)}
	if img.AABB() != want {
		t.Errorf("AABB() = %v, want %v", img.AABB(), want)
	}

	img.Resize(3, 9)
	want = geom.AABB{Max: geom.V3(2, 8, 0)}
	if img.AABB() != want {
		t.Errorf("after Resize AABB() = %v, want %v", img.AABB(), want)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 9) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
}

func TestImage_ResizeSameSizeKeepsContents(t *testing.T) {
	img := NewImage(4, 4)
	img.Clear(Red)
	before := &img.Pix()[0]

	img.Resize(4, 4)
	img.Resize(4, 4)

	if &img.Pix()[0] != before {
		t.Error("Resize to the same size reallocated the buffer")
	}
	if img.Pixel(3, 3) != Red {
		t.Errorf("contents changed: %v", img.Pixel(3, 3))
	}

	img.Resize(5, 4)
	if img.Pixel(3, 3) != Transparent {
		t.Errorf("resized image should start transparent, got %v", img.Pixel(3, 3))
	}
}

func TestImage_Clear(t *testing.T) {
	// Large enough to be split into parallel bands.
	img := NewImage(300, 200)
	img.Clear(Blue)
	for i, c := range img.Pix() {
		if c != Blue {
			t.Fatalf("pixel %d = %v, want blue", i, c)
		}
	}

	var empty Image
	empty.Clear(Blue) // must not panic
}

func TestImage_CloneAssignMove(t *testing.T) {
	img := NewImage(6, 5)
	img.Clear(Gray)
	img.SetPixel(2, 3, Red)

	clone := img.Clone()
	if !imagesEqual(clone, img) {
		t.Fatal("Clone is not pixel-for-pixel equal")
	}
	clone.SetPixel(0, 0, Green)
	if img.Pixel(0, 0) == Green {
		t.Error("Clone shares its buffer with the source")
	}

	var assigned Image
	assigned.Assign(img)
	if !imagesEqual(&assigned, img) {
		t.Error("Assign is not pixel-for-pixel equal")
	}

	moved := img.Move()
	if img.Width() != 0 || img.Height() != 0 || !img.Empty() {
		t.Errorf("source after Move = %dx%d, want empty", img.Width(), img.Height())
	}
	if moved.Width() != 6 || moved.Height() != 5 || moved.Pixel(2, 3) != Red {
		t.Error("Move did not transfer the buffer")
	}
	if moved.AABB() != geom.AABBFromRect(geom.Rect(0, 0, 6, 5)) {
		t.Errorf("moved AABB = %v", moved.AABB())
	}
}

func TestImage_PlotThenSample(t *testing.T) {
	img := NewImage(4, 4)
	img.Clear(Blue)

	src := RGBA8(255, 0, 0, 128)
	img.Plot(1, 2, src, BlendAlpha)

	want := BlendAlpha.Blend(src, Blue)
	if got := img.Sample(1, 2, AddressClamp); got != want {
		t.Errorf("Sample after Plot = %v, want %v", got, want)
	}
}

func TestImage_PlotOutOfBounds(t *testing.T) {
	img := NewImage(4, 4)
	img.Clear(Blue)
	before := img.Clone()

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}, {-100, 2}} {
		img.Plot(p[0], p[1], Red, BlendDisabled)
	}

	if !imagesEqual(img, before) {
		t.Error("out-of-bounds Plot modified the image")
	}
}

func TestImage_PixelPanicsOutOfRange(t *testing.T) {
	img := NewImage(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("Pixel(2, 0) did not panic")
		}
	}()
	img.Pixel(2, 0)
}

func TestImage_StdImageInterface(t *testing.T) {
	img := NewImage(3, 3)
	img.Set(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	img.Set(5, 5, color.White) // ignored

	if got := img.At(1, 1); got != RGBA8(10, 20, 30, 40) {
		t.Errorf("At(1, 1) = %v", got)
	}
	if got := img.At(-1, 0); got != Transparent {
		t.Errorf("At(-1, 0) = %v, want transparent", got)
	}
	if got := img.ColorModel().Convert(color.White); got != White {
		t.Errorf("ColorModel().Convert(white) = %v", got)
	}

	// Draw through the standard library.
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{G: 255, A: 255}), image.Point{}, draw.Src)
	if img.Pixel(2, 2) != Green {
		t.Errorf("draw.Draw result = %v, want green", img.Pixel(2, 2))
	}
}

func imagesEqual(a, b *Image) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for i := range a.Pix() {
		if a.Pix()[i] != b.Pix()[i] {
			return false
		}
	}
	return true
}

// countNot returns how many pixels differ from c.
func countNot(img *Image, c Color) int {
	n := 0
	for _, p := range img.Pix() {
		if p != c {
			n++
		}
	}
	return n
}
