// Package core holds the routing graph: a fixed set of labeled vertices joined
// by weighted, undirected edges that can be taken down and restored at run time.
//
// Storage
//
// Each logical edge is owned once by an arena slice. An N×N cell matrix maps
// both (u,v) and (v,u) to the same arena slot, or to noEdge when the pair is
// not connected. Presence is therefore explicit: a weight of zero is a real,
// zero-cost edge.
//
// Failure simulation
//
//	SetEdgeStatus(u, v, up)  // one edge
//	SetNodeStatus(n, up)     // every edge incident to n
//
// A node has no status of its own. Downing it only downs its edges, so it
// remains a valid source (distance 0 to itself) and edges between other
// vertices are unaffected. Restoring after downing is an exact inverse.
//
// Queries
//
//	ShortestPaths(src) (*dijkstra.Result, error)
//	Route(src, dst)    (*dijkstra.Path, error)
//
// Both copy the effective-weight matrix under the read lock (see Snapshot) and
// run Dijkstra on the copy; every call recomputes from scratch.
//
// Concurrency
//
// Graph is safe for concurrent use. Mutations take the write lock; queries
// take the read lock.
package core
