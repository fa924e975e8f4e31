// Package parallel splits index ranges across goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallelize divides [0, items) into contiguous chunks, one per CPU core,
// and calls fn(start, end) for each chunk concurrently. It returns after every
// chunk has finished.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// ceiling division
	chunkSize := (items + numWorkers - 1) / numWorkers

	var g errgroup.Group
	g.SetLimit(numWorkers)
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		s, e := start, end
		g.Go(func() error {
			fn(s, e)
			return nil
		})
	}
	// fn は error を返さないので Wait は常に nil。全チャンクの合流のみに使う
	_ = g.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) inline when items does not exceed
// threshold, and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
