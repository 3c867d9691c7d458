package sr

import "github.com/chewxy/math32"

// DefaultFrameRate is the frame rate used when NewSpriteAnim gets 0.
const DefaultFrameRate = 30

// SpriteAnim selects a sprite from a SpriteSheet by elapsed time.
// Frame i of the animation is sheet sprite i; the animation loops.
type SpriteAnim struct {
	sheet     *SpriteSheet
	frameRate int
	time      float32
}

// NewSpriteAnim animates sheet at fps frames per second.
// fps <= 0 selects DefaultFrameRate. A nil sheet behaves like an empty one.
func NewSpriteAnim(sheet *SpriteSheet, fps int) *SpriteAnim {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	if sheet == nil {
		sheet = &SpriteSheet{image: &Image{}}
	}
	return &SpriteAnim{sheet: sheet, frameRate: fps}
}

// LoadSpriteAnim loads a sprite sheet from path and animates it.
func LoadSpriteAnim(path string, fps, spriteWidth, spriteHeight int, mode BlendMode) (*SpriteAnim, error) {
	sheet, err := LoadSpriteSheet(path, spriteWidth, spriteHeight, mode)
	if err != nil {
		return nil, err
	}
	return NewSpriteAnim(sheet, fps), nil
}

// Update advances the animation clock by dt seconds.
func (a *SpriteAnim) Update(dt float32) {
	a.time += dt
}

// Reset rewinds the animation to its first frame.
func (a *SpriteAnim) Reset() {
	a.time = 0
}

// Time returns the elapsed animation time in seconds.
func (a *SpriteAnim) Time() float32 { return a.time }

// FrameRate returns the playback rate in frames per second.
func (a *SpriteAnim) FrameRate() int { return a.frameRate }

// Sheet returns the animated sprite sheet.
func (a *SpriteAnim) Sheet() *SpriteSheet { return a.sheet }

// Sprite returns the sprite for the current time.
func (a *SpriteAnim) Sprite() Sprite {
	return a.At(a.time)
}

// At returns the sprite shown at time t seconds.
func (a *SpriteAnim) At(t float32) Sprite {
	return a.Frame(a.frameAt(t))
}

// Frame returns frame i, wrapping around the sheet.
func (a *SpriteAnim) Frame(i int) Sprite {
	n := a.sheet.Len()
	if n == 0 {
		return Sprite{}
	}
	return a.sheet.At(wrap(i, n))
}

// FrameIndex returns the index of the current frame within the sheet.
func (a *SpriteAnim) FrameIndex() int {
	n := a.sheet.Len()
	if n == 0 {
		return 0
	}
	return wrap(a.frameAt(a.time), n)
}

func (a *SpriteAnim) frameAt(t float32) int {
	return int(math32.Floor(t * float32(a.frameRate)))
}

// Duration returns the length of one pass through the sheet in seconds.
func (a *SpriteAnim) Duration() float32 {
	return float32(a.sheet.Len()) / float32(a.frameRate)
}

// Done reports whether one full pass has played. An empty animation is
// always done.
func (a *SpriteAnim) Done() bool {
	return a.time*float32(a.frameRate) >= float32(a.sheet.Len())
}
