package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.Data())
	}
	// Row / Col copies, not views
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		r := M.Row(1)
		assert.Equal(t, []float64{4, 5, 6}, r)
		r[0] = 99
		assert.Equal(t, 4., M.At(1, 0))
		c := M.Col(2)
		assert.Equal(t, []float64{3, 6}, c)
	}
	// Min / Max
	{
		M := NewMatrix(2, 2, []float64{3, 1, 4, 2})
		assert.Equal(t, 1., M.Min())
		assert.Equal(t, 4., M.Max())
	}
	// SetRow / SetCol
	{
		M := NewMatrix(2, 3)
		M.SetRow(0, []float64{1, 2, 3})
		M.SetCol(2, []float64{7, 8})
		assert.Equal(t, []float64{1, 2, 7, 0, 0, 8}, M.Data())
	}
	// Read only guard
	{
		M := NewMatrix(2, 2)
		M.Set(0, 0, 1)
		R := M.SetReadOnly("M")
		assert.Panics(t, func() { R.Set(0, 1, 2) })
		R.SetWritable()
		assert.NotPanics(t, func() { R.Set(0, 1, 2) })
	}
}

func TestIndex(t *testing.T) {
	// 1-based inclusive ranges convert to 0-based storage indices
	{
		I := NewRangeOffset(1, 4)
		assert.Equal(t, Index{0, 1, 2, 3}, I)
		assert.Equal(t, Index{1, 2, 3, 4}, I.Add(1))
	}
	// Subset and Apply
	{
		I := Index{10, 20, 30}
		assert.Equal(t, Index{30, 10}, I.Subset(Index{2, 0}))
		assert.Equal(t, Index{11, 21, 31}, I.Apply(func(v int) int { return v + 1 }))
	}
	// Max over empty is zero
	{
		assert.Equal(t, 0, Index{}.Max())
		assert.Equal(t, 7, Index{3, 7, 2}.Max())
	}
	// Float conversions used by the Matrix-valued tables
	{
		assert.Equal(t, Index{1, 2}, NewFromFloat([]float64{1, 2}))
		assert.Equal(t, []float64{3, 4}, Index{3, 4}.ToFloat())
		assert.Equal(t, Index{1, 1, 1}, NewOnes(3))
	}
	// Index2D requires matched lengths
	{
		_, err := NewIndex2D(Index{1, 2}, Index{1})
		assert.Error(t, err)
		I2, err := NewIndex2D(Index{1, 2}, Index{3, 4})
		assert.NoError(t, err)
		assert.Equal(t, 2, I2.Len)
	}
}
