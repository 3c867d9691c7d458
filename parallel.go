package sr

import (
	"runtime"
	"sync"

	"github.com/gogpu/sr/internal/parallel"
)

var (
	poolMu   sync.Mutex
	pool     *parallel.WorkerPool
	poolInit bool
)

// SetWorkers sets the number of goroutines used by fills and copies.
// n <= 0 selects GOMAXPROCS; n == 1 runs everything on the calling
// goroutine. The previous pool is shut down after its queued work finishes.
func SetWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	poolMu.Lock()
	old := pool
	poolInit = true
	if n == 1 {
		pool = nil
	} else {
		pool = parallel.NewWorkerPool(n)
	}
	poolMu.Unlock()

	if old != nil {
		old.Close()
	}
	Logger().Debug("sr: worker pool resized", "workers", n)
}

// Workers returns the number of goroutines used by fills and copies.
func Workers() int {
	p := workerPool()
	if p == nil {
		return 1
	}
	return p.Workers()
}

// workerPool returns the shared pool, starting a GOMAXPROCS-sized one on
// first use. A nil pool means serial execution.
func workerPool() *parallel.WorkerPool {
	poolMu.Lock()
	defer poolMu.Unlock()
	if !poolInit {
		poolInit = true
		if runtime.GOMAXPROCS(0) > 1 {
			pool = parallel.NewWorkerPool(0)
		}
	}
	return pool
}

// rows runs fn over the row range [y0, y1) of a region width pixels wide,
// in parallel bands when the region is large enough.
func rows(y0, y1, width int, fn func(y0, y1 int)) {
	parallel.Rows(workerPool(), y0, y1, width, fn)
}
