// Package steiner computes exact minimum Steiner trees on unweighted,
// undirected core.Graph instances.
//
// A Steiner tree for a terminal set T is a connected subgraph containing
// every vertex of T; it is minimal when it has the fewest edges. Vertices
// of the tree that are not terminals are Steiner points.
//
// Algorithm
//
//	Dreyfus–Wagner subset DP over masks of terminals:
//	  dp[{i}][v]  = BFS distance from terminal i to v
//	  dp[S][v]    = min over proper submasks A of S: dp[A][v] + dp[S\A][v]
//	  dp[S][w]    = min(dp[S][w], dp[S][u] + 1) for each edge u–w (relaxation)
//	The answer is min_v dp[T][v]; the minimizing v is the hub. A parent table
//	records how each entry was reached and drives reconstruction.
//
//	WithRelaxation(false) keeps only the merge phase. The tree it returns is
//	still valid but may be larger than optimal once four or more terminals
//	branch at non-terminal vertices.
//
// Complexity
//
//	n terminals, V vertices, E edges:
//	  time   O(3^n·V + 2^n·(V+E) + n·(V+E))
//	  memory O(2^n·V)
//	n is the binding constraint; Solve refuses more than MaxTerminals
//	(DefaultMaxTerminals unless configured).
//
// Errors
//
//   - ErrGraphNil          nil graph.
//   - ErrTerminalNotFound  a label does not name a vertex (checked before seeding).
//   - ErrDisconnected      terminals lie in different components.
//   - ErrTooManyTerminals  distinct terminal count above the cap.
//   - ErrTableTooLarge     2^n·V above the MaxTableCells budget.
//   - ErrOptionViolation   invalid Option.
//   - context errors when the supplied context is done.
package steiner
