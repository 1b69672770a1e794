// Package graphio reads and writes Steiner problem instances as documents in
// TOML, YAML or JSON.
//
// A document lists optional isolated vertices, the edges, and optionally the
// terminal set:
//
//	name = "paper"
//	terminals = ["A", "B", "F"]
//
//	[[edges]]
//	from = "A"
//	to = "B"
//
// The same shape is used by the CLI (files) and the HTTP API (JSON bodies).
package graphio
