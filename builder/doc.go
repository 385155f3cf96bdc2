// Package builder generates routing graphs of common shapes for tests,
// benchmarks and the generate command.
//
// A Constructor describes a topology: how many vertices it needs and which
// pairs it joins. Build allocates a core.Graph of that size, labels every
// vertex with the configured IDFn and draws each edge weight from the
// configured WeightFn:
//
//	g, err := builder.Build(builder.Grid(3, 4),
//		builder.WithSeed(7),
//		builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
//	)
//
// Determinism: vertices are labeled in index order and pairs are visited in
// a fixed order, so the same options and seed always produce the same graph.
//
// Option constructors panic on nil or out-of-range arguments; Build returns
// wrapped sentinel errors for bad topology parameters.
package builder
