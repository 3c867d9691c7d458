// Package sr is a CPU 2D software rasterizer for simple games and demos.
//
// # Overview
//
// sr draws into an Image, a straight-alpha 8-bit RGBA pixel buffer, with
// immediate-mode primitives: pixels, lines, triangles, quads, textured quads,
// sprites and text. Every primitive is clipped to the image and composited
// through a BlendMode.
//
// # Quick Start
//
//	import "github.com/gogpu/sr"
//
//	img := sr.NewImage(320, 240)
//	img.Clear(sr.Black)
//
//	img.DrawTriangle(
//		geom.V2(160, 20), geom.V2(300, 220), geom.V2(20, 220),
//		sr.Red, sr.BlendDisabled, sr.FillSolid,
//	)
//	img.DrawLine(0, 0, 319, 239, sr.White, sr.BlendAlpha)
//
//	if err := img.SavePNG("out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel
//   - X increases right, Y increases down
//   - Solid fills test pixels at integer coordinates; textured fills
//     sample at pixel centers
//   - Rotation angles are in radians and turn clockwise on screen
//
// # Sprites
//
// A SpriteSheet partitions one Image into sub-rectangles, either as a
// uniform grid or from an explicit atlas. A Sprite is a lightweight view into
// that image carrying a tint and blend mode; SpriteAnim picks a sprite from a
// sheet by elapsed time. Draw sprites with Image.DrawSprite and a
// geom.Transform2D.
//
// # Concurrency
//
// Large fills are split into row bands and run on a shared worker pool
// (see SetWorkers). An Image must not be mutated from several goroutines at
// once; concurrent reads without writers are safe.
//
// # Related packages
//
//   - geom: vectors, rectangles, bounding boxes and affine transforms
//   - text: font faces that draw into an Image
//   - assets: a cached loader for images, sprite sheets and fonts
package sr

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
