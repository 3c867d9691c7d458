// Package blend implements the 8-bit compositing functions behind
// sr.BlendMode.
//
// All functions take and return straight (non-premultiplied) RGBA channels in
// the range 0-255. Results are computed with exact division by 255 so they are
// reproducible across platforms.
package blend

// Func is the signature of a blend operation.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Source replaces the destination with the source.
func Source(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// SourceOver composites the source over the destination.
//
//	Ao = Sa + Da*(1-Sa)
//	Co = (Sc*Sa + Dc*Da*(1-Sa)) / Ao
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	switch sa {
	case 255:
		return sr, sg, sb, 255
	case 0:
		return dr, dg, db, da
	}

	s := uint32(sa) * 255
	d := uint32(da) * uint32(255-sa)
	out := s + d
	if out == 0 {
		return 0, 0, 0, 0
	}
	half := out / 2
	mix := func(sc, dc byte) byte {
		return byte((uint32(sc)*s + uint32(dc)*d + half) / out)
	}
	return mix(sr, dr), mix(sg, dg), mix(sb, db), byte((out + 127) / 255)
}

// Additive adds the source, weighted by its alpha, to the destination.
//
//	Co = min(Dc + Sc*Sa, 1)
func Additive(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(dr, mulDiv255(sr, sa)),
		addClamp(dg, mulDiv255(sg, sa)),
		addClamp(db, mulDiv255(sb, sa)),
		overAlpha(sa, da)
}

// Subtract subtracts the source, weighted by its alpha, from the destination.
//
//	Co = max(Dc - Sc*Sa, 0)
func Subtract(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return subClamp(dr, mulDiv255(sr, sa)),
		subClamp(dg, mulDiv255(sg, sa)),
		subClamp(db, mulDiv255(sb, sa)),
		overAlpha(sa, da)
}

// overAlpha is the source-over alpha Sa + Da*(1-Sa).
func overAlpha(sa, da byte) byte {
	return addClamp(sa, mulDiv255(da, 255-sa))
}
