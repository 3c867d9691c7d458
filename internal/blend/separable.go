package blend

// Separable blend modes from W3C Compositing and Blending Level 1. Each
// combines source and destination per channel with B(s, d), then lerps the
// destination toward that result by the source alpha:
//
//	Co = Dc + (B(Sc, Dc) - Dc) * Sa
//	Ao = Sa + Da*(1-Sa)
//
// which is the W3C formula for an opaque backdrop.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/

// separable applies a per-channel blend function.
func separable(sr, sg, sb, sa, dr, dg, db, da byte, fn func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	return lerp255(dr, fn(sr, dr), sa),
		lerp255(dg, fn(sg, dg), sa),
		lerp255(db, fn(sb, db), sa),
		overAlpha(sa, da)
}

// Multiply darkens: B(s, d) = s*d.
func Multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// Screen lightens: B(s, d) = s + d - s*d.
func Screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screen)
}

// Darken keeps the darker channel: B(s, d) = min(s, d).
func Darken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte { return min(s, d) })
}

// Lighten keeps the lighter channel: B(s, d) = max(s, d).
func Lighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte { return max(s, d) })
}

// Difference: B(s, d) = |s - d|.
func Difference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}

// Overlay multiplies or screens depending on the destination:
// B(s, d) = HardLight(d, s).
func Overlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d <= 127 {
			return mulDiv255(s, byte(min(uint16(d)*2, 255)))
		}
		return screen(s, byte(uint16(d)*2-255))
	})
}

func screen(s, d byte) byte {
	return s + d - mulDiv255(s, d)
}
