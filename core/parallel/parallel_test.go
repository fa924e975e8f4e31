package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversEveryIndexOnce(t *testing.T) {
	for _, items := range []int{1, 7, 1000, 4097} {
		counts := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&counts[i], 1)
			}
		})
		for i, c := range counts {
			if c != 1 {
				t.Fatalf("items=%d: index %d visited %d times", items, i, c)
			}
		}
	}
}

func TestParallelizeZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	if called {
		t.Error("fn should not be called for zero items")
	}
}

func TestParallelizeWithThresholdRunsInline(t *testing.T) {
	var mu sync.Mutex
	var ranges [][2]int
	ParallelizeWithThreshold(6, 1000, func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		ranges = append(ranges, [2]int{start, end})
	})

	if len(ranges) != 1 || ranges[0] != [2]int{0, 6} {
		t.Errorf("expected a single inline call over [0,6), got %v", ranges)
	}
}

func TestParallelizeWithThresholdAboveThreshold(t *testing.T) {
	var total int64
	ParallelizeWithThreshold(5000, 10, func(start, end int) {
		atomic.AddInt64(&total, int64(end-start))
	})
	if total != 5000 {
		t.Errorf("expected 5000 items processed, got %d", total)
	}
}
