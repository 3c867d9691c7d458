package present

import "github.com/gogpu/sr"

// premultiply writes src into dst as premultiplied RGBA bytes, the layout
// ebiten.Image.WritePixels expects. dst must hold 4 bytes per color.
func premultiply(dst []byte, src []sr.Color) {
	for i, c := range src {
		p := dst[i*4 : i*4+4 : i*4+4]
		switch c.A {
		case 255:
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 255
		case 0:
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		default:
			a := uint32(c.A)
			p[0] = uint8((uint32(c.R)*a + 127) / 255)
			p[1] = uint8((uint32(c.G)*a + 127) / 255)
			p[2] = uint8((uint32(c.B)*a + 127) / 255)
			p[3] = c.A
		}
	}
}
