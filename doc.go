// Package lvroute simulates routing on small weighted networks: load a
// graph, take routers down, bring them back, and ask for the cheapest route
// between any two of them after every change.
//
// 🚀 What is in the box?
//
//	• core/:                       fixed-size undirected Graph, per-edge up/down status, snapshots
//	• matrix/:                     int64 cost matrix with an Infinity sentinel, Floyd–Warshall
//	• dijkstra/:                   O(N²) single-source shortest paths and route reconstruction
//	• bfs/:                        fewest-hop reachability over the usable edges
//	• ingest/:                     text and YAML graph files, read and written
//	• builder/:                    synthetic topologies (path, cycle, grid, random, …)
//	• session/:                    operator commands: find, down, restore; the line prompt
//	• tui/:                        full-screen terminal session
//	• render/:                     circular and force layouts, terminal drawing, JSON scenes
//	• config/, logging/, metrics/: YAML+env config, zap, Prometheus
//	• cmd/lvroute:                 the CLI: run, table, render, generate
//
// ✨ How does "down" work?
//
//	A router is down when every edge touching it is down. Its neighbors lose
//	the links through it; nothing else changes. Restoring brings those links
//	back with their original weights.
//
// Quick example (the bundled default_input.txt):
//
//	U V-2 X-1 W-5
//	V U-2 X-2 W-3
//	X U-1 V-2 W-3 Y-1
//	W U-5 V-3 X-3 Y-1 Z-5
//	Y X-1 W-1 Z-2
//	Z W-5 Y-2
//
//	U→Z = U->X->Y->Z, cost 4. With X down: U->W->Y->Z, cost 8.
//
// Getting started:
//
//	go run ./cmd/lvroute run --graph default_input.txt
package lvroute
