// Package matrix holds the square int64 cost matrix that shortest-path
// queries run on.
//
// Dense stores N×N cells row-major. Infinity (math.MaxInt64) marks a pair
// with no usable edge; the diagonal starts at 0. Weights are non-negative.
//
// A Dense is a value snapshot: core.Graph builds one under its read lock and
// hands it to dijkstra or bfs, which never touch the live graph.
//
// AllPairs closes a Dense under Floyd–Warshall. It is O(N³) and meant for
// small graphs and for cross-checking single-source results.
//
// Indexers return ErrOutOfRange rather than panic.
package matrix
