package sequence_test

import (
	"testing"

	"github.com/katalvlaran/collatzline/sequence"
)

// benchmarkCollatz generates Collatz(n) b.N times and fails on error.
func benchmarkCollatz(b *testing.B, n int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sequence.Collatz(n); err != nil {
			b.Fatalf("Collatz(%d) failed: %v", n, err)
		}
	}
}

func BenchmarkCollatz_100(b *testing.B)   { benchmarkCollatz(b, 100) }
func BenchmarkCollatz_10000(b *testing.B) { benchmarkCollatz(b, 10000) }
