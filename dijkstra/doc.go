// Package dijkstra computes single-source shortest paths over a small,
// undirected, non-negatively weighted graph presented as a dense cost matrix,
// and rebuilds routes from the resulting predecessor tree.
//
// Overview:
//
//   - Dijkstra runs the classic O(V²) variant: no priority queue, one linear
//     selection scan per round. V is small (a hand-written topology file), so
//     the scan beats heap bookkeeping and keeps tie-breaking deterministic.
//   - Cells equal to Infinity are impassable. The caller decides what that
//     means: core.Graph writes Infinity for absent pairs and for edges that
//     have been taken down.
//   - Reconstruct turns a Result into an ordered label sequence plus the list
//     of hops a renderer can highlight.
//
// Determinism:
//
//   - Selection picks the lowest index among equal tentative distances.
//   - Relaxation replaces a predecessor only on a strictly shorter distance,
//     so the first-discovered equal-cost route wins.
//
// API reference:
//
//	func Dijkstra(m Matrix, opts ...Option) (*Result, error)
//	func Reconstruct(res *Result, dest int, labels Labeler) (*Path, error)
//
//	  - Source(i):          required, the starting vertex index.
//	  - WithMaxDistance(d): vertices farther than d are left at Infinity.
//
// Thread safety:
//
//   - Dijkstra only reads m. Callers that mutate the underlying graph
//     concurrently must hand Dijkstra a private copy; core.Graph does this by
//     snapshotting under its read lock.
package dijkstra
