package parallel

import (
	"sync"
	"testing"
)

func TestRows_CoversEveryRowOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	tests := []struct {
		name     string
		y0, y1   int
		width    int
		wantRows int
	}{
		{"large region", 0, 200, 100, 200},
		{"offset region", 37, 181, 64, 144},
		{"odd row count", 5, 102, 1000, 97},
		{"small region inline", 0, 10, 10, 10},
		{"single row", 3, 4, 10000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			seen := make(map[int]int)
			Rows(pool, tt.y0, tt.y1, tt.width, func(lo, hi int) {
				mu.Lock()
				defer mu.Unlock()
				for y := lo; y < hi; y++ {
					seen[y]++
				}
			})

			if len(seen) != tt.wantRows {
				t.Errorf("rows visited = %d, want %d", len(seen), tt.wantRows)
			}
			for y := tt.y0; y < tt.y1; y++ {
				if seen[y] != 1 {
					t.Errorf("row %d visited %d times, want 1", y, seen[y])
				}
			}
		})
	}
}

func TestRows_Empty(t *testing.T) {
	called := false
	fn := func(int, int) { called = true }

	Rows(nil, 5, 5, 10, fn)
	Rows(nil, 5, 2, 10, fn)
	Rows(nil, 0, 10, 0, fn)

	if called {
		t.Error("fn called for an empty region")
	}
}

func TestRows_SerialBelowThreshold(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	calls := 0
	Rows(pool, 0, 8, SerialThreshold/8-1, func(lo, hi int) {
		calls++
		if lo != 0 || hi != 8 {
			t.Errorf("band = [%d,%d), want [0,8)", lo, hi)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRows_NilPool(t *testing.T) {
	calls := 0
	Rows(nil, 0, 1000, 1000, func(lo, hi int) {
		calls++
		if lo != 0 || hi != 1000 {
			t.Errorf("band = [%d,%d), want [0,1000)", lo, hi)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func BenchmarkRows(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	buf := make([]byte, 1024*1024)
	b.ResetTimer()
	for range b.N {
		Rows(pool, 0, 1024, 1024, func(lo, hi int) {
			for i := lo * 1024; i < hi*1024; i++ {
				buf[i] = byte(i)
			}
		})
	}
}
