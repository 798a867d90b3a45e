package parallel

import (
	"sync/atomic"
	"testing"
)

func TestChunksCoversRange(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  Config
	}{
		{"sequential small", 100, DefaultConfig()},
		{"parallel large", 100000, DefaultConfig()},
		{"disabled", 100000, Config{Enabled: false}},
		{"single worker", 50000, Config{Enabled: true, NumWorkers: 1, MinChunk: 64}},
		{"zero", 0, DefaultConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]int32, tt.n)
			Chunks(tt.n, tt.cfg, func(lo, hi int) {
				for i := lo; i < hi; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
			})
			for i, c := range seen {
				if c != 1 {
					t.Fatalf("index %d visited %d times", i, c)
				}
			}
		})
	}
}

func TestForVisitsEveryIndex(t *testing.T) {
	const n = 20000
	var sum atomic.Int64
	For(n, DefaultConfig(), func(i int) {
		sum.Add(int64(i))
	})
	want := int64(n) * (n - 1) / 2
	if got := sum.Load(); got != want {
		t.Errorf("sum = %d, want %d", got, want)
	}
}
