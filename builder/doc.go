// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures for the solver,
// its tests, benchmarks and the gen command.
//
// Compose one or more Constructors with BuildGraph:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithIDPrefix("v")},
//	    builder.RandomSparse(12, 0.25),
//	)
//
// Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse. All edges are
// unnamed, so they take the graph's generated edge IDs as names.
//
// Options: WithSeed / WithRand for stochastic constructors; WithIDScheme,
// WithIDPrefix, WithSymbolIDs, WithExcelColumnIDs for vertex labels.
package builder
