package parallel

// SerialThreshold is the pixel count below which Rows runs inline.
// Dispatch costs more than filling a small region.
const SerialThreshold = 4096

// Rows calls fn over [y0, y1) split into contiguous bands, one or more per
// worker. width is the row length in pixels and only decides whether the
// region is large enough to spread out. Each band receives its own
// half-open row range, so bands never touch the same row.
//
// A nil pool, a single worker or a small region runs fn(y0, y1) directly.
func Rows(p *WorkerPool, y0, y1, width int, fn func(y0, y1 int)) {
	rows := y1 - y0
	if rows <= 0 || width <= 0 {
		return
	}
	if p == nil || p.Workers() < 2 || rows < 2 || rows*width < SerialThreshold {
		fn(y0, y1)
		return
	}

	bands := min(rows, p.Workers()*2)
	work := make([]func(), 0, bands)
	for i := range bands {
		lo := y0 + rows*i/bands
		hi := y0 + rows*(i+1)/bands
		if lo == hi {
			continue
		}
		work = append(work, func() { fn(lo, hi) })
	}
	p.ExecuteAll(work)
}
