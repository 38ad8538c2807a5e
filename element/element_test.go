package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cluttrdev/sfe/utils"
)

func TestShapeTables(t *testing.T) {
	// Dimensions and vertex counts
	{
		assert.Equal(t, 0, Point.Dim())
		assert.Equal(t, 1, Line.Dim())
		assert.Equal(t, 2, Triangle.Dim())
		assert.Equal(t, 3, Tet.Dim())
		assert.Equal(t, 3, Triangle.NumVerts())
		assert.Equal(t, 4, Tet.NumVerts())
	}
	// Sub-entity counts
	{
		assert.Equal(t, 2, Line.NumEntities(0))
		assert.Equal(t, 1, Line.NumEntities(1))
		assert.Equal(t, 3, Triangle.NumEntities(1))
		assert.Equal(t, 6, Tet.NumEntities(1))
		assert.Equal(t, 4, Tet.NumEntities(2))
	}
	// Every edge of the tet names two distinct local vertices
	{
		for _, e := range Tet.LocalEntities(1) {
			require.Len(t, e, 2)
			assert.NotEqual(t, e[0], e[1])
		}
	}
	// Tet face f is opposite vertex f
	{
		for f, face := range Tet.LocalEntities(2) {
			require.Len(t, face, 3)
			assert.NotContains(t, face, f)
		}
	}
	// Simplex family round trip
	{
		for d := 0; d <= 3; d++ {
			assert.Equal(t, d, SimplexOfDim(d).Dim())
		}
		assert.Equal(t, Unknown, SimplexOfDim(4))
	}
}

func TestLagrangeDofTuple(t *testing.T) {
	// P1: one dof per vertex only
	{
		el, err := NewLagrange(Triangle, 1)
		require.NoError(t, err)
		assert.Equal(t, utils.Index{1, 0, 0}, el.DofTuple())
		assert.Equal(t, 3, el.NumDofs())
	}
	// P2 triangle: vertex + edge dofs
	{
		el, err := NewLagrange(Triangle, 2)
		require.NoError(t, err)
		assert.Equal(t, utils.Index{1, 1, 0}, el.DofTuple())
		assert.Equal(t, 6, el.NumDofs())
	}
	// P3 triangle has an interior dof
	{
		el, err := NewLagrange(Triangle, 3)
		require.NoError(t, err)
		assert.Equal(t, utils.Index{1, 2, 1}, el.DofTuple())
		assert.Equal(t, 10, el.NumDofs())
	}
	// P2 tet: 4 vertices + 6 edges
	{
		el, err := NewLagrange(Tet, 2)
		require.NoError(t, err)
		assert.Equal(t, utils.Index{1, 1, 0, 0}, el.DofTuple())
		assert.Equal(t, 10, el.NumDofs())
	}
	// P1 line
	{
		el, err := NewLagrange(Line, 1)
		require.NoError(t, err)
		assert.Equal(t, utils.Index{1, 0}, el.DofTuple())
		assert.Equal(t, 2, el.NumDofs())
	}
	// Invalid inputs
	{
		_, err := NewLagrange(Unknown, 1)
		assert.Error(t, err)
		_, err = NewLagrange(Triangle, 0)
		assert.Error(t, err)
	}
}
