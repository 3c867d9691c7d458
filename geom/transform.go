package geom

// Transform2D combines an anchor, position, scale and rotation into a single
// affine matrix:
//
//	Translate(position) · Rotate(rotation) · Scale(scale) · Translate(-anchor)
//
// The matrix is rebuilt lazily on the first Matrix call after any setter.
// The zero value is not ready for use; create transforms with NewTransform2D.
//
// Transform2D is not safe for concurrent use: Matrix may write the cache.
type Transform2D struct {
	anchor   Vec2
	position Vec2
	scale    Vec2
	rotation float32 // radians

	matrix Mat3
	dirty  bool
}

// NewTransform2D returns a transform at position with the given scale and
// rotation and the anchor at the origin.
func NewTransform2D(position, scale Vec2, rotation float32) *Transform2D {
	return &Transform2D{
		position: position,
		scale:    scale,
		rotation: rotation,
		dirty:    true,
	}
}

// IdentityTransform returns a transform that leaves points unchanged.
func IdentityTransform() *Transform2D {
	return NewTransform2D(Vec2{}, Vec2{X: 1, Y: 1}, 0)
}

// SetPosition sets the translation.
func (t *Transform2D) SetPosition(p Vec2) {
	t.position = p
	t.dirty = true
}

// Position returns the translation.
func (t *Transform2D) Position() Vec2 { return t.position }

// SetAnchor sets the local origin that scale and rotation pivot around.
func (t *Transform2D) SetAnchor(a Vec2) {
	t.anchor = a
	t.dirty = true
}

// Anchor returns the pivot point.
func (t *Transform2D) Anchor() Vec2 { return t.anchor }

// SetScale sets the scale factors.
func (t *Transform2D) SetScale(s Vec2) {
	t.scale = s
	t.dirty = true
}

// ScaleFactor returns the scale factors.
func (t *Transform2D) ScaleFactor() Vec2 { return t.scale }

// SetRotation sets the rotation in radians.
func (t *Transform2D) SetRotation(r float32) {
	t.rotation = r
	t.dirty = true
}

// Rotation returns the rotation in radians.
func (t *Transform2D) Rotation() float32 { return t.rotation }

// Translate adds d to the position.
func (t *Transform2D) Translate(d Vec2) {
	t.position = t.position.Add(d)
	t.dirty = true
}

// Scale multiplies the current scale by f.
func (t *Transform2D) Scale(f Vec2) {
	t.scale = t.scale.MulVec(f)
	t.dirty = true
}

// Rotate adds r radians to the rotation.
func (t *Transform2D) Rotate(r float32) {
	t.rotation += r
	t.dirty = true
}

// Matrix returns the combined transformation matrix, rebuilding it if any
// component changed since the last call.
func (t *Transform2D) Matrix() Mat3 {
	if t.dirty {
		t.matrix = Translate(t.position).
			Multiply(Rotate(t.rotation)).
			Multiply(Scale(t.scale)).
			Multiply(Translate(t.anchor.Mul(-1)))
		t.dirty = false
	}
	return t.matrix
}

// TransformPoint applies the transform to p.
func (t *Transform2D) TransformPoint(p Vec2) Vec2 {
	return t.Matrix().TransformPoint(p)
}

// TransformAABB returns the bounding box of b after applying the transform.
func (t *Transform2D) TransformAABB(b AABB) AABB {
	return b.Transform(t.Matrix())
}
