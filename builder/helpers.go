// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// helpers.go - shared vertex/edge emission used by the impl_*.go constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// addVertices adds idFn(0..n-1) in ascending order and returns the labels.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// link adds one unnamed edge u–v, tagging failures with the method name.
func link(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v, ""); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s): %w", method, u, v, err)
	}

	return nil
}
