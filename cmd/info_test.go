package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cluttrdev/sfe/InputParameters"
)

func TestRunInfo(t *testing.T) {
	// Each demo mesh kind builds and reports without error
	for _, kind := range []string{"interval", "square", "cube"} {
		sp := &InputParameters.SpaceParameters{
			Title:      "smoke",
			MeshKind:   kind,
			Resolution: 2,
			PolynomialOrder: 2,
		}
		require.NoError(t, sp.Validate())
		assert.NoError(t, RunInfo(sp))
	}
}

func TestBuildTopology(t *testing.T) {
	sp := &InputParameters.SpaceParameters{MeshKind: "square", Resolution: 3, PolynomialOrder: 1}
	topo, err := buildTopology(sp)
	require.NoError(t, err)
	assert.Equal(t, 2, topo.TopDim())
	assert.Equal(t, 18, topo.NumCells())

	sp.MeshKind = "torus"
	_, err = buildTopology(sp)
	assert.Error(t, err)
}
