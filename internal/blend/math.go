package blend

// div255 divides x by 255 with rounding, without using division.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
//
// This equals (x + 127) / 255 for every sum of byte products up to 65025.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// lerp255 moves d toward s by t/255.
//
// Formula: (d*(255-t) + s*t) / 255
func lerp255(d, s, t byte) byte {
	return byte(div255(uint32(d)*uint32(255-t) + uint32(s)*uint32(t)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// subClamp subtracts b from a, clamping to 0.
func subClamp(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}
