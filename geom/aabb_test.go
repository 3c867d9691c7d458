package geom

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func approxVec2(a, b Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestAABBFromRect(t *testing.T) {
	b := AABBFromRect(Rect(2, 3, 4, 5))
	if b.Min != V3(2, 3, 0) || b.Max != V3(5, 7, 0) {
		t.Errorf("AABBFromRect = %+v, want min (2,3) max (5,7)", b)
	}
	if b.Width() != 3 || b.Height() != 4 {
		t.Errorf("extent = %vx%v, want 3x4", b.Width(), b.Height())
	}
}

func TestAABBFromPoints(t *testing.T) {
	b := AABBFromTriangle(V2(5, 1), V2(-2, 4), V2(3, 9))
	if b.Min != V3(-2, 1, 0) || b.Max != V3(5, 9, 0) {
		t.Errorf("AABBFromTriangle = %+v", b)
	}

	q := AABBFromQuad(V2(0, 0), V2(10, 0), V2(10, 10), V2(0, 10))
	if q.Min != V3(0, 0, 0) || q.Max != V3(10, 10, 0) {
		t.Errorf("AABBFromQuad = %+v", q)
	}

	if (AABBFromPoints() != AABB{}) {
		t.Error("AABBFromPoints() with no points should be zero")
	}
}

func TestAABBIntersect(t *testing.T) {
	screen := AABBFromRect(Rect(0, 0, 10, 10))
	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{"inside", AABB{Min: V3(2, 2, 0), Max: V3(4, 4, 0)}, true},
		{"overlapping", AABB{Min: V3(-5, -5, 0), Max: V3(1, 1, 0)}, true},
		{"touching corner", AABB{Min: V3(9, 9, 0), Max: V3(20, 20, 0)}, true},
		{"left", AABB{Min: V3(-5, 0, 0), Max: V3(-0.5, 5, 0)}, false},
		{"below", AABB{Min: V3(0, 10, 0), Max: V3(5, 12, 0)}, false},
		{"covering", AABB{Min: V3(-100, -100, 0), Max: V3(100, 100, 0)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screen.Intersect(tt.box); got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
			if got := tt.box.Intersect(screen); got != tt.want {
				t.Errorf("Intersect is not symmetric: %v", got)
			}
		})
	}
}

func TestAABBClamp(t *testing.T) {
	screen := AABBFromRect(Rect(0, 0, 10, 10))
	b := AABB{Min: V3(-3, 4, 0), Max: V3(20, 6, 0)}

	c := b.Clamped(screen)
	if c.Min != V3(0, 4, 0) || c.Max != V3(9, 6, 0) {
		t.Errorf("Clamped = %+v", c)
	}
	if b.Min.X != -3 {
		t.Error("Clamped modified the receiver")
	}

	b.Clamp(screen)
	if b != c {
		t.Errorf("Clamp = %+v, want %+v", b, c)
	}

	i, ok := AABB{Min: V3(20, 20, 0), Max: V3(30, 30, 0)}.Intersection(screen)
	if ok || (i != AABB{}) {
		t.Errorf("Intersection of disjoint boxes = %+v, %v", i, ok)
	}
}

func TestAABBPixels(t *testing.T) {
	b := AABB{Min: V3(1.7, -0.5, 0), Max: V3(4.2, 3, 0)}
	x0, y0, x1, y1 := b.Pixels()
	if x0 != 1 || y0 != -1 || x1 != 4 || y1 != 3 {
		t.Errorf("Pixels = (%d,%d)-(%d,%d), want (1,-1)-(4,3)", x0, y0, x1, y1)
	}
}

func TestAABBTransform(t *testing.T) {
	b := AABB{Min: V3(0, 0, 0), Max: V3(2, 1, 0)}
	got := b.Transform(Rotate(math.Pi / 2))
	if !approx(got.Min.X, -1) || !approx(got.Max.X, 0) || !approx(got.Min.Y, 0) || !approx(got.Max.Y, 2) {
		t.Errorf("Transform = %+v", got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect(0, 0, 10, 10)
	if got := a.Intersect(Rect(5, -5, 10, 10)); got != Rect(5, 0, 5, 5) {
		t.Errorf("Intersect = %+v", got)
	}
	if got := a.Intersect(Rect(10, 0, 5, 5)); !got.Empty() {
		t.Errorf("adjacent rects should not intersect, got %+v", got)
	}
	if !a.Contains(9, 9) || a.Contains(10, 9) {
		t.Error("Contains uses exclusive right/bottom edges")
	}
	if RectFromImage(a.Image()) != a {
		t.Error("image.Rectangle round trip changed the rect")
	}
}
