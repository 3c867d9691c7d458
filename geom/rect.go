package geom

import "image"

// RectI is an integer rectangle given by its top-left corner and size.
type RectI struct {
	X, Y          int
	Width, Height int
}

// Rect is shorthand for RectI{X: x, Y: y, Width: w, Height: h}.
func Rect(x, y, w, h int) RectI {
	return RectI{X: x, Y: y, Width: w, Height: h}
}

// Empty reports whether r covers no pixels.
func (r RectI) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Left returns the minimum x coordinate.
func (r RectI) Left() int { return r.X }

// Top returns the minimum y coordinate.
func (r RectI) Top() int { return r.Y }

// Right returns the exclusive maximum x coordinate.
func (r RectI) Right() int { return r.X + r.Width }

// Bottom returns the exclusive maximum y coordinate.
func (r RectI) Bottom() int { return r.Y + r.Height }

// Intersect returns the overlap of r and o. The result is empty if they
// do not overlap.
func (r RectI) Intersect(o RectI) RectI {
	x0 := max(r.Left(), o.Left())
	y0 := max(r.Top(), o.Top())
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return RectI{}
	}
	return RectI{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r RectI) Contains(x, y int) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Image converts r to an image.Rectangle.
func (r RectI) Image() image.Rectangle {
	return image.Rect(r.Left(), r.Top(), r.Right(), r.Bottom())
}

// RectFromImage converts an image.Rectangle to a RectI.
func RectFromImage(r image.Rectangle) RectI {
	return RectI{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}
