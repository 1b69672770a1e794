// Package lvsteiner computes exact minimum Steiner trees on unweighted,
// undirected graphs.
//
// Given a graph and a set of terminal vertices, a Steiner tree is a connected
// subgraph containing every terminal; a minimum one has the fewest edges.
// Non-terminal vertices that the tree passes through are Steiner points.
//
// Packages:
//
//	core/      thread-safe Graph, Vertex and Edge with stable vertex indices
//	builder/   deterministic topologies (path, cycle, star, grid, complete, random)
//	bfs/       breadth-first search, hop distances and shortest paths
//	spantree/  Kruskal spanning trees, used to emit the final tree edges
//	steiner/   Dreyfus-Wagner subset DP with edge relaxation
//	graphio/   graph documents in TOML, YAML and JSON
//	render/    DOT output and Graphviz rendering with the tree highlighted
//
// The lvsteiner command (cmd/lvsteiner) wraps these as solve, render, gen and
// serve subcommands.
//
// Quick start:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", "")
//	g.AddEdge("B", "C", "")
//	g.AddEdge("B", "D", "")
//	res, err := steiner.Solve(g, []string{"A", "C", "D"})
//	// res.Cost == 3, res.SteinerPoints == [B]
//
// Running time is O(3^n·V + 2^n·(V+E)) for n terminals, so the solver is
// meant for small terminal sets (20 by default) on graphs of any size.
package lvsteiner
