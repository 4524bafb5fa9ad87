package tsp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/bbtsp/tsp"
)

func BenchmarkNewRootSubproblem(b *testing.B) {
	g := randomComplete(b, 40, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.NewRootSubproblem(g, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	g := randomComplete(b, 10, 42)
	for _, p := range []tsp.Policy{tsp.BestFS, tsp.DFS} {
		for _, w := range []int{1, 4} {
			b.Run(fmt.Sprintf("%s/workers=%d", p, w), func(b *testing.B) {
				e, err := tsp.NewEngine(g, tsp.WithPolicy(p), tsp.WithWorkers(w))
				if err != nil {
					b.Fatal(err)
				}
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := e.Solve(context.Background()); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkExact(b *testing.B) {
	g := randomComplete(b, 12, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Exact(g); err != nil {
			b.Fatal(err)
		}
	}
}
