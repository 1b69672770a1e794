package graphio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// ErrInvalidDocument indicates a document that cannot be turned into a graph.
var ErrInvalidDocument = errors.New("graphio: invalid document")

// Document is the serialized form of a graph plus an optional terminal set.
type Document struct {
	Name      string     `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Vertices  []string   `toml:"vertices,omitempty" yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges     []EdgeSpec `toml:"edges" yaml:"edges" json:"edges"`
	Terminals []string   `toml:"terminals,omitempty" yaml:"terminals,omitempty" json:"terminals,omitempty"`
}

// EdgeSpec is one undirected edge. An empty Name lets the graph assign its edge ID.
type EdgeSpec struct {
	From string `toml:"from" yaml:"from" json:"from"`
	To   string `toml:"to" yaml:"to" json:"to"`
	Name string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
}

// Validate checks that every edge names both endpoints.
func (d *Document) Validate() error {
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge #%d has an empty endpoint", ErrInvalidDocument, i)
		}
	}
	for i, v := range d.Vertices {
		if v == "" {
			return fmt.Errorf("%w: vertex #%d is empty", ErrInvalidDocument, i)
		}
	}

	return nil
}

// Build creates a graph holding the document's vertices (in listed order)
// followed by the edges. Graph options such as core.WithMultiEdges are
// passed through; a rejected edge fails the whole build.
func (d *Document) Build(opts ...core.GraphOption) (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph(opts...)
	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Name); err != nil {
			return nil, fmt.Errorf("%w: edge #%d (%s–%s): %v", ErrInvalidDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g and terminals as a Document. Every vertex is listed so
// isolated vertices and insertion order survive a round trip; names equal to
// the generated edge ID are omitted.
func FromGraph(g *core.Graph, terminals []string) Document {
	doc := Document{
		Vertices:  g.Vertices(),
		Terminals: append([]string(nil), terminals...),
	}
	for _, e := range g.Edges() {
		spec := EdgeSpec{From: e.From, To: e.To}
		if e.Name != e.ID {
			spec.Name = e.Name
		}
		doc.Edges = append(doc.Edges, spec)
	}

	return doc
}
