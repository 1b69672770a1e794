package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvsteiner/core"
)

// TestEdge_SymmetricIdentity anchors orientation-free equality.
func TestEdge_SymmetricIdentity(t *testing.T) {
	ab := &core.Edge{ID: "e1", Name: "x", From: "A", To: "B"}
	ba := &core.Edge{ID: "e7", Name: "x", From: "B", To: "A"}
	other := &core.Edge{ID: "e2", Name: "y", From: "A", To: "B"}

	assert.Equal(t, [2]string{"A", "B"}, ab.Key())
	assert.Equal(t, ab.Key(), ba.Key())
	assert.True(t, ab.Equal(ba))
	assert.True(t, ba.Equal(ab))
	assert.False(t, ab.Equal(other), "different names are different connections")

	var nilEdge *core.Edge
	assert.True(t, nilEdge.Equal(nil))
	assert.False(t, ab.Equal(nil))
	assert.True(t, nilEdge.IsNil())
}

func TestEdge_Other(t *testing.T) {
	e := &core.Edge{ID: "e1", Name: "AB", From: "A", To: "B"}
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
	assert.Equal(t, "", e.Other("C"))
	assert.Equal(t, "AB(A - B)", e.String())
}

func TestVertex_IsNil(t *testing.T) {
	var v *core.Vertex
	assert.True(t, v.IsNil())
	assert.False(t, (&core.Vertex{ID: "A"}).IsNil())
}
