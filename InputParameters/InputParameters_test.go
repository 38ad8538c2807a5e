package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceParameters(t *testing.T) {
	// Parse a complete document
	{
		doc := []byte(`
Title: P2 on the unit square
MeshKind: square
Resolution: 4
PolynomialOrder: 2
ShowDofMap: true
`)
		var sp SpaceParameters
		require.NoError(t, sp.Parse(doc))
		assert.Equal(t, "square", sp.MeshKind)
		assert.Equal(t, 4, sp.Resolution)
		assert.Equal(t, 2, sp.PolynomialOrder)
		assert.True(t, sp.ShowDofMap)
	}
	// Reject unknown mesh kinds and bad counts
	{
		var sp SpaceParameters
		assert.Error(t, sp.Parse([]byte("MeshKind: torus\nResolution: 1\nPolynomialOrder: 1")))
		assert.Error(t, sp.Parse([]byte("MeshKind: cube\nResolution: 0\nPolynomialOrder: 1")))
		assert.Error(t, sp.Parse([]byte("MeshKind: cube\nResolution: 1\nPolynomialOrder: 0")))
	}
}
