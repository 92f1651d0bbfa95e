// Package gridstar finds least-cost paths on 2-D occupancy grids with A*.
//
// 🚀 What is gridstar?
//
//	A small, dependency-light toolkit that brings together:
//		• Occupancy grids: rectangular open/blocked maps with 4- or 8-way moves
//		• A* search: unit step cost, pluggable heuristics, explicit outcomes
//		• Scenarios: YAML files holding a grid, endpoints and search settings
//		• Rendering: PNG images and GeoJSON documents of a route
//		• Serving: an HTTP API with Prometheus metrics
//
// ✨ Outcomes, not errors
//
//	An unreachable goal or a blocked endpoint is a normal answer. FindPath
//	reports it as a Status on the Result and keeps errors for misuse (nil
//	grid) and internal faults.
//
// Packages:
//
//	gridgraph/ - grid construction, bounds/occupancy queries, regions, BFS distance
//	heuristic/ - Euclidean, Chebyshev and Zero estimates, lookup by name
//	astar/     - FindPath, Result, Status and search options
//	metrics/   - Prometheus observer for completed searches
//	scenario/  - YAML scenario loading and solving
//	render/    - PNG (fogleman/gg) and GeoJSON (paulmach/orb) output
//	server/    - HTTP API (gorilla/mux)
//	cmd/gridstar - command line: solve, render, serve
//
// Quick example:
//
//	g, _ := gridgraph.From2D([][]int{
//		{1, 1, 0},
//		{0, 1, 0},
//		{0, 1, 1},
//	}, gridgraph.Conn8)
//	res, _ := astar.FindPath(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
//	// res.Status == astar.StatusFound, res.Cost == 2
//
//	go install github.com/katalvlaran/gridstar/cmd/gridstar@latest
package gridstar
