package chain_test

import (
	"testing"

	"github.com/katalvlaran/collatzline/chain"
	"github.com/katalvlaran/collatzline/interp"
	"github.com/katalvlaran/collatzline/interval"
	"github.com/katalvlaran/collatzline/sequence"
)

func BenchmarkChain_Collatz50(b *testing.B) {
	paths, err := sequence.Collatz(50)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := chain.New(paths, interval.NewQuartic, interp.WithDensity(30))
		if err != nil {
			b.Fatal(err)
		}
		for range c.All() {
		}
	}
}
