// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - BFS returns a BFSResult with Order, Depth, and Parent.
//   - Distances flattens a traversal into a slice indexed by the graph's
//     stable vertex index, using Unreachable for vertices outside the
//     start's component.
//   - ShortestPath returns one shortest vertex sequence between two labels,
//     stopping the traversal as soon as the target is visited.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - Neighbor filtering via WithFilterNeighbor and a MaxDepth limit.
//
// Determinism
//
//	core.Graph.NeighborIDs returns labels in sorted order and BFS enqueues
//	them in that order, so the visit sequence and every reconstructed path
//	are reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d) with d the maximum degree (neighbor sorting).
//   - Memory: O(V) for the queue, Depth, Parent, and visited set.
//
// Usage
//
//	dist, err := bfs.Distances(g, "A")
//	path, err := bfs.ShortestPath(g, "A", "F")
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(3))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for a vertex.
//   - ErrUnreachable          from PathTo and ShortestPath for unreached targets.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
