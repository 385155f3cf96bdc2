// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

// build returns a graph of shape c with seeded weights 1..7.
func build(b *testing.B, c builder.Constructor) *core.Graph {
	b.Helper()

	g, err := builder.Build(c,
		builder.WithSymbNumb("N"),
		builder.WithSeed(1),
		builder.WithWeightFn(builder.UniformWeightFn(1, 7)),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkShortestPaths measures snapshot plus O(N²) Dijkstra on complete
// graphs and on square grids of the same order.
func BenchmarkShortestPaths(b *testing.B) {
	for _, side := range []int{4, 8, 16} {
		n := side * side
		for _, c := range []builder.Constructor{builder.Complete(n), builder.Grid(side, side)} {
			b.Run(fmt.Sprintf("%s/N=%d", c.Name(), n), func(b *testing.B) {
				g := build(b, c)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := g.ShortestPaths(0); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkSetNodeStatus measures a down/restore cycle on one vertex.
func BenchmarkSetNodeStatus(b *testing.B) {
	g := build(b, builder.Complete(64))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SetNodeStatus(i%64, false)
		_ = g.SetNodeStatus(i%64, true)
	}
}
