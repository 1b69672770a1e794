package steiner

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/spantree"
)

// inf marks a (mask, vertex) pair that no tree has reached yet.
const inf = math.MaxInt

// stepKind tells how a dp entry obtained its value.
type stepKind uint8

const (
	stepNone  stepKind = iota
	stepSeed           // arg: terminal bit; value is the BFS distance from that terminal
	stepMerge          // arg: submask; value is dp[arg][v] + dp[mask^arg][v]
	stepRelax          // arg: neighbor vertex index; value is dp[mask][arg] + 1
)

type step struct {
	kind stepKind
	arg  int
}

// solver owns the tables of a single Solve call.
type solver struct {
	g       *core.Graph
	opts    Options
	terms   []string
	termIdx []int
	labels  []string
	adj     [][]int
	v       int
	dp      []int
	parent  []step
}

// Solve computes a minimum Steiner tree of g spanning terminals.
//
// The graph is treated as unweighted and undirected and must not be mutated
// while Solve runs. Duplicate terminal labels are collapsed; bit positions
// follow first occurrence.
//
// Phases (n = distinct terminals, V = vertices):
//  1. Resolve every terminal; fail with ErrTerminalNotFound on the first miss.
//     Fail with ErrTableTooLarge before allocating when 2^n·V exceeds
//     MaxTableCells.
//  2. Seed dp[{i}][v] with BFS distances from terminal i. Terminals outside
//     the first terminal's component fail with ErrDisconnected.
//  3. For masks 1..2^n-1 in increasing order with two or more bits:
//     merge complementary submasks at each vertex (first strict minimum wins),
//     then, unless disabled, relax the row along edges with a bucket queue.
//  4. Pick the first vertex with minimal dp[full][v] as hub.
//  5. Expand (full, hub) with a worklist into a vertex set and take a
//     spanning tree of the induced subgraph.
//
// Complexity: O(3^n·V + 2^n·(V+E) + n·(V+E)) time, O(2^n·V) memory.
func Solve(g *core.Graph, terminals []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	terms := dedupe(terminals)
	if len(terms) == 0 {
		return emptyResult(), nil
	}
	if len(terms) > o.MaxTerminals {
		return nil, fmt.Errorf("%w: %d distinct terminals, limit %d", ErrTooManyTerminals, len(terms), o.MaxTerminals)
	}

	s, err := newSolver(g, terms, o)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("terminals resolved", "terminals", len(terms), "vertices", s.v)

	if err = s.seed(); err != nil {
		return nil, err
	}
	o.Logger.Debug("dp seeded", "masks", 1<<len(terms))

	if err = s.fill(); err != nil {
		return nil, err
	}

	hub, cost, err := s.finalize()
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("hub chosen", "hub", s.labels[hub], "cost", cost, "relax", o.Relax)

	keep, err := s.reconstruct(hub)
	if err != nil {
		return nil, err
	}

	return s.result(keep, hub, cost)
}

// FindSteinerTree returns the vertex labels of a minimum Steiner tree,
// in graph insertion order, using default options.
func FindSteinerTree(g *core.Graph, terminals []string) ([]string, error) {
	res, err := Solve(g, terminals)
	if err != nil {
		return nil, err
	}
	return res.Vertices, nil
}

func emptyResult() *Result {
	return &Result{
		Terminals:     []string{},
		Vertices:      []string{},
		SteinerPoints: []string{},
		Edges:         []core.Edge{},
	}
}

func dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// newSolver resolves terminals and snapshots the adjacency used by the DP.
func newSolver(g *core.Graph, terms []string, o Options) (*solver, error) {
	termIdx := make([]int, len(terms))
	for i, t := range terms {
		idx, ok := g.IndexOf(t)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrTerminalNotFound, t)
		}
		termIdx[i] = idx
	}

	labels := g.Vertices()
	v := len(labels)
	size, err := tableSize(len(terms), v, o.MaxTableCells)
	if err != nil {
		return nil, err
	}
	adj := g.AdjacencyIndex()

	s := &solver{
		g:       g,
		opts:    o,
		terms:   terms,
		termIdx: termIdx,
		labels:  labels,
		adj:     adj,
		v:       v,
		dp:      make([]int, size),
		parent:  make([]step, size),
	}
	for i := range s.dp {
		s.dp[i] = inf
	}

	return s, nil
}

// tableSize returns 2^n·v, or ErrTableTooLarge when it exceeds limit.
// The comparison is done by division so it cannot overflow.
func tableSize(n, v, limit int) (int, error) {
	if n >= bits.UintSize-1 {
		return 0, fmt.Errorf("%w: 2^%d masks", ErrTableTooLarge, n)
	}
	rows := 1 << n
	if v > 0 && rows > limit/v {
		return 0, fmt.Errorf("%w: 2^%d masks x %d vertices exceeds %d cells", ErrTableTooLarge, n, v, limit)
	}

	return rows * v, nil
}

// seed fills the singleton rows from BFS distances.
func (s *solver) seed() error {
	for i, t := range s.terms {
		dist, err := bfs.Distances(s.g, t, bfs.WithContext(s.opts.Ctx))
		if err != nil {
			return fmt.Errorf("steiner: seeding from %q: %w", t, err)
		}
		if i == 0 {
			for j, idx := range s.termIdx[1:] {
				if idx >= len(dist) || dist[idx] == bfs.Unreachable {
					return fmt.Errorf("%w: %q cannot reach %q", ErrDisconnected, t, s.terms[j+1])
				}
			}
		}

		base := (1 << i) * s.v
		for v := 0; v < s.v && v < len(dist); v++ {
			if dist[v] == bfs.Unreachable {
				continue
			}
			s.dp[base+v] = dist[v]
			s.parent[base+v] = step{kind: stepSeed, arg: i}
		}
	}

	return nil
}

// fill runs the merge and relaxation phases for every non-singleton mask.
func (s *solver) fill() error {
	full := 1<<len(s.terms) - 1
	for mask := 1; mask <= full; mask++ {
		if bits.OnesCount(uint(mask)) < 2 {
			continue
		}
		if err := s.opts.Ctx.Err(); err != nil {
			return err
		}
		s.merge(mask)
		if s.opts.Relax {
			s.relax(mask)
		}
	}

	return nil
}

// merge joins two complementary sub-trees that meet at the same vertex.
// Submasks are enumerated largest first; the first strict minimum is kept.
func (s *solver) merge(mask int) {
	base := mask * s.v
	for v := 0; v < s.v; v++ {
		best := s.dp[base+v]
		for sub := (mask - 1) & mask; sub > 0; sub = (sub - 1) & mask {
			a := s.dp[sub*s.v+v]
			if a == inf {
				continue
			}
			b := s.dp[(mask^sub)*s.v+v]
			if b == inf {
				continue
			}
			if a+b < best {
				best = a + b
				s.parent[base+v] = step{kind: stepMerge, arg: sub}
			}
		}
		s.dp[base+v] = best
	}
}

// relax moves sub-trees along edges: dp[mask][w] = min(dp[mask][w], dp[mask][u]+1)
// for every edge u–w, propagated to a fixed point. Unit weights make a
// bucket queue (Dial's algorithm) sufficient.
func (s *solver) relax(mask int) {
	base := mask * s.v
	row := s.dp[base : base+s.v]

	var buckets [][]int
	push := func(d, v int) {
		for len(buckets) <= d {
			buckets = append(buckets, nil)
		}
		buckets[d] = append(buckets[d], v)
	}
	for v, d := range row {
		if d != inf {
			push(d, v)
		}
	}

	for d := 0; d < len(buckets); d++ {
		for i := 0; i < len(buckets[d]); i++ {
			u := buckets[d][i]
			if row[u] != d {
				continue // stale entry
			}
			for _, w := range s.adj[u] {
				if d+1 < row[w] {
					row[w] = d + 1
					s.parent[base+w] = step{kind: stepRelax, arg: u}
					push(d+1, w)
				}
			}
		}
	}
}

// finalize returns the first vertex with minimal cost for the full mask.
func (s *solver) finalize() (int, int, error) {
	base := (1<<len(s.terms) - 1) * s.v
	hub, cost := -1, inf
	for v := 0; v < s.v; v++ {
		if s.dp[base+v] < cost {
			hub, cost = v, s.dp[base+v]
		}
	}
	if hub < 0 {
		return 0, 0, fmt.Errorf("%w: no vertex joins all terminals", ErrDisconnected)
	}

	return hub, cost, nil
}

// result assembles the public Result from the kept vertex indices.
func (s *solver) result(keep []bool, hub, cost int) (*Result, error) {
	isTerm := make(map[string]bool, len(s.terms))
	for _, t := range s.terms {
		isTerm[t] = true
	}

	res := emptyResult()
	res.Terminals = append(res.Terminals, s.terms...)
	res.Hub = s.labels[hub]

	inTree := make(map[string]bool)
	for v, ok := range keep {
		if !ok {
			continue
		}
		label := s.labels[v]
		inTree[label] = true
		res.Vertices = append(res.Vertices, label)
		if !isTerm[label] {
			res.SteinerPoints = append(res.SteinerPoints, label)
		}
	}

	edges, err := spantree.Kruskal(core.InducedSubgraph(s.g, inTree))
	if err != nil {
		return nil, fmt.Errorf("steiner: building tree edges: %w", err)
	}
	res.Edges = append(res.Edges, edges...)
	res.Cost = len(edges)

	if s.opts.Relax && res.Cost != cost {
		s.opts.Logger.Warn("tree size differs from dp cost", "dp", cost, "edges", res.Cost)
	}

	return res, nil
}
