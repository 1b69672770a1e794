// Package render draws a graph and its Steiner tree as Graphviz DOT and,
// through go-graphviz, as SVG or PNG.
//
// Tree vertices are filled, terminals are double circles and tree edges are
// bold; the rest of the graph is drawn in grey for context.
package render
