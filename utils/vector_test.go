package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	// CyclicShift
	{
		v := []float64{0, 1, 2, 3, 4}
		assert.Equal(t, []float64{1, 2, 3, 4, 0}, CyclicShift(v, 1))
		assert.Equal(t, []float64{4, 0, 1, 2, 3}, CyclicShift(v, -1))
		assert.Equal(t, v, CyclicShift(v, 5))
		assert.Equal(t, CyclicShift(v, 2), CyclicShift(v, -3))
		assert.Equal(t, CyclicShift(v, 13), CyclicShift(v, 3))
		// Receiver unchanged
		assert.Equal(t, []float64{0, 1, 2, 3, 4}, v)
		assert.Equal(t, []float64{}, CyclicShift([]float64{}, 3))
	}
	// Reductions
	{
		v := []float64{1, -3, 2}
		assert.InDeltaf(t, 0., VecSum(v), 1.e-15, "sum")
		assert.InDeltaf(t, 0., VecMean(v), 1.e-15, "mean")
		assert.Equal(t, 3., VecMaxAbs(v))
		assert.Equal(t, []float64{2, -6, 4}, VecScale(v, 2))
		assert.Equal(t, []float64{1, -3, 2}, v)
		c := VecCopy(v)
		c[0] = 10
		assert.Equal(t, 1., v[0])
	}
}
