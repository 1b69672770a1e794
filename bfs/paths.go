package bfs

import (
	"errors"

	"github.com/katalvlaran/lvsteiner/core"
)

// Distances returns the hop-count distance from source to every vertex of g,
// indexed by the vertex's stable insertion index. Vertices that cannot be
// reached are reported as Unreachable.
//
// The graph is unweighted, so hop count equals shortest-path length.
// State is allocated per call; g is only read.
//
// Complexity: O(V + E log d) time, O(V) memory.
func Distances(g *core.Graph, source string, opts ...Option) ([]int, error) {
	res, err := BFS(g, source, opts...)
	if err != nil {
		return nil, err
	}

	dist := make([]int, g.VertexCount())
	for i := range dist {
		dist[i] = Unreachable
	}
	for id, d := range res.Depth {
		if idx, ok := g.IndexOf(id); ok {
			dist[idx] = d
		}
	}

	return dist, nil
}

// ShortestPath returns the vertex sequence of one shortest path from source
// to target, both ends included. Among equally short paths the one found by
// the deterministic BFS order (neighbors in label order) is returned.
//
// Any OnVisit hook in opts is replaced by the early-stop hook.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound (for source).
//   - ErrUnreachable if target is missing or not connected to source.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, error) {
	// Stop expanding once the target has been dequeued; its parent chain is final.
	stop := errStop{}
	opts = append(opts[:len(opts):len(opts)], WithOnVisit(func(id string, _ int) error {
		if id == target {
			return stop
		}
		return nil
	}))

	res, err := BFS(g, source, opts...)
	if err != nil && !isStop(err) {
		return nil, err
	}

	return res.PathTo(target)
}

// errStop is an internal sentinel used to end a traversal early.
type errStop struct{}

func (errStop) Error() string { return "bfs: stop" }

func isStop(err error) bool {
	var s errStop
	return errors.As(err, &s)
}
