// Package text draws strings into sr images.
//
// A Face wraps a golang.org/x/image font face and implements sr.Font, so it
// can be passed to (*sr.Image).DrawText:
//
//	face := text.Default() // 7x13 bitmap font
//	img.DrawText(face, 8, 8, "Hello", sr.White)
//
//	big, err := text.GoRegular(24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer big.Close()
//
// TrueType and OpenType fonts are loaded with ParseTTF. WithShaping enables
// HarfBuzz shaping through go-text/typesetting, which applies the font's
// kerning and positioning tables.
//
// Glyph coverage is blended into the image with sr.BlendAlpha: a texel
// covered by half of a glyph receives the text color at half its alpha.
// Strings are normalized to NFC before drawing, so precomposed and
// decomposed forms render the same.
package text
