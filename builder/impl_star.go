// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center vertex is always CenterVertexID; leaves use cfg.idFn(1..n-1).
//   - Edges Center–leaf in increasing leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterVertexID labels the hub of Star.
	CenterVertexID = "Center"
)

// Star returns a Constructor that builds K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := link(g, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
