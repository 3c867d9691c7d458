package text

import "golang.org/x/image/font"

// Metrics holds pixel metrics of a face.
type Metrics struct {
	// Ascent is the distance from the top of a line to the baseline.
	Ascent int

	// Descent is the distance from the baseline to the bottom of a line
	// (positive).
	Descent int

	// Height is the recommended distance between consecutive baselines.
	Height int

	// XHeight is the height of lowercase letters. Zero for bitmap fonts.
	XHeight int

	// CapHeight is the height of uppercase letters. Zero for bitmap fonts.
	CapHeight int
}

// LineHeight returns the distance between consecutive baselines, never less
// than ascent plus descent.
func (m Metrics) LineHeight() int {
	return max(m.Height, m.Ascent+m.Descent)
}

func metricsOf(f font.Face) Metrics {
	m := f.Metrics()
	return Metrics{
		Ascent:    m.Ascent.Ceil(),
		Descent:   m.Descent.Ceil(),
		Height:    m.Height.Ceil(),
		XHeight:   m.XHeight.Ceil(),
		CapHeight: m.CapHeight.Ceil(),
	}
}
