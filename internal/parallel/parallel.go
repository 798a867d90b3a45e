// Package parallel provides chunked parallel iteration for buffer-local
// loops whose elements are independent.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinChunk   int  // Minimum elements per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinChunk:   4096, // Conversion loops are cheap; coarse chunks pay off.
	}
}

// Chunks executes f over disjoint index ranges covering [0, n).
// Ranges run concurrently when parallelism is enabled and n is large
// enough; otherwise f runs once over the whole range.
func Chunks(n int, cfg Config, f func(lo, hi int)) {
	if !cfg.Enabled || n < cfg.MinChunk*2 {
		if n > 0 {
			f(0, n)
		}
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunk)

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
func For(n int, cfg Config, f func(i int)) {
	Chunks(n, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	})
}
