package steiner

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/bfs"
)

// frame is one pending (mask, vertex) expansion.
type frame struct {
	mask int
	v    int
}

// reconstruct expands (full, hub) into the set of tree vertex indices.
//
// A worklist replaces recursion so deep relaxation chains on long paths
// cannot exhaust the stack. Every frame marks its vertex and then:
//   - seed:  adds the BFS path from the terminal to the vertex,
//   - merge: pushes both complementary halves at the same vertex,
//   - relax: pushes the same mask at the predecessor vertex.
func (s *solver) reconstruct(hub int) ([]bool, error) {
	keep := make([]bool, s.v)
	full := 1<<len(s.terms) - 1

	work := []frame{{mask: full, v: hub}}
	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]
		if f.mask == 0 {
			continue
		}
		keep[f.v] = true

		p := s.parent[f.mask*s.v+f.v]
		switch p.kind {
		case stepSeed:
			path, err := bfs.ShortestPath(s.g, s.terms[p.arg], s.labels[f.v], bfs.WithContext(s.opts.Ctx))
			if err != nil {
				return nil, fmt.Errorf("steiner: path from %q to %q: %w", s.terms[p.arg], s.labels[f.v], err)
			}
			for _, id := range path {
				if idx, ok := s.g.IndexOf(id); ok && idx < s.v {
					keep[idx] = true
				}
			}
		case stepMerge:
			work = append(work,
				frame{mask: p.arg, v: f.v},
				frame{mask: f.mask ^ p.arg, v: f.v},
			)
		case stepRelax:
			work = append(work, frame{mask: f.mask, v: p.arg})
		default:
			return nil, fmt.Errorf("steiner: no parent recorded for mask %b at %q", f.mask, s.labels[f.v])
		}
	}

	return keep, nil
}
