package FD1D

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/advdiff/utils"
)

func TestCirculant(t *testing.T) {
	// Second derivative, 2nd order on 6 points
	{
		st, _ := NewStencil(2, 2)
		op, err := NewCirculant(st, 6)
		require.NoError(t, err)
		assert.Equal(t, 6, op.N())
		offsets, coeffs := op.Diagonals()
		assert.Equal(t, []int{0, 1, 5}, offsets)
		assert.Equal(t, []float64{-2, 1, 1}, coeffs)
		assert.Equal(t, -2., op.Coefficient(0))
		assert.Equal(t, 1., op.Coefficient(-1))
		assert.Equal(t, 1., op.Coefficient(7))
		assert.Equal(t, 0., op.Coefficient(3))
		// Periodic wrap shows up in the corners of the matrix
		M := op.Dense()
		assert.Equal(t, 1., M.At(0, 5))
		assert.Equal(t, 1., M.At(5, 0))
		assert.Equal(t, -2., M.At(3, 3))
		assert.Equal(t, 0., M.At(0, 3))
		// Apply on a quadratic-free periodic vector
		q := []float64{0, 1, 4, 9, 16, 25}
		r := op.Apply(q)
		assert.Equal(t, []float64{25 + 1, 2, 2, 2, 2, 16 - 50}, r)
	}
	// First derivative: zero centre weight is not stored
	{
		st, _ := NewStencil(1, 2)
		op, err := NewCirculant(st, 8)
		require.NoError(t, err)
		offsets, coeffs := op.Diagonals()
		assert.Equal(t, []int{1, 7}, offsets)
		assert.Equal(t, []float64{0.5, -0.5}, coeffs)
		assert.InDeltaf(t, 0., op.RowSum(), 1.e-15, "row sum")
	}
	// Mass is the identity
	{
		M, err := NewMass(5)
		require.NoError(t, err)
		offsets, coeffs := M.Diagonals()
		assert.Equal(t, []int{0}, offsets)
		assert.Equal(t, []float64{1}, coeffs)
		q := []float64{3, 1, 4, 1, 5}
		assert.Equal(t, q, M.Apply(q))
		_, err = NewMass(1)
		assert.NoError(t, err)
	}
	// Meshes that cannot hold the stencil without aliasing are rejected
	{
		for _, tc := range []struct{ d, a, N int }{
			{1, 2, 2}, {2, 2, 1}, {1, 4, 4}, {2, 6, 6}, {4, 6, 8}, {1, 2, 0}, {1, 2, -5},
		} {
			st, err := NewStencil(tc.d, tc.a)
			require.NoError(t, err)
			_, err = NewCirculant(st, tc.N)
			assert.True(t, errors.Is(err, ErrConfiguration), "%+v", tc)
		}
		st, _ := NewStencil(4, 6)
		_, err := NewCirculant(st, 9)
		assert.NoError(t, err)
		_, err = NewCirculant(Stencil{}, 4)
		assert.True(t, errors.Is(err, ErrConfiguration))
	}
	// Applying with the wrong length panics
	{
		M, _ := NewMass(4)
		assert.Panics(t, func() { M.Apply(make([]float64, 3)) })
	}
}

func TestCirculantShiftInvariance(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, N := range []int{8, 9, 16, 33} {
		for _, d := range SupportedDerivativeOrders {
			for _, a := range SupportedAccuracyOrders {
				st, _ := NewStencil(d, a)
				if N <= 2*st.Offset() {
					continue
				}
				op, err := NewCirculant(st, N)
				require.NoError(t, err)
				q := make([]float64, N)
				for i := range q {
					q[i] = rnd.Float64()*2 - 1
				}
				Aq := op.Apply(q)
				for _, s := range []int{-N - 1, -3, -1, 0, 1, 2, N - 1, N + 5} {
					lhs := op.Apply(utils.CyclicShift(q, s))
					rhs := utils.CyclicShift(Aq, s)
					assert.InDeltaSlicef(t, rhs, lhs, 1.e-10, "N=%d stencil (%d,%d) shift %d", N, d, a, s)
				}
			}
		}
	}
}

func TestCirculantRepeatable(t *testing.T) {
	m, err := NewMesh(32, 2*math.Pi, 0)
	require.NoError(t, err)
	q := m.Evaluate(math.Sin)
	build := func() *Operator {
		K, err := NewAdvectionDiffusion(m, 1, 0.05, 2)
		require.NoError(t, err)
		return K
	}
	expected := build().Apply(q)
	for trial := 0; trial < 100; trial++ {
		// Bitwise equality, independently assembled operators must sum in the same order
		assert.Equal(t, expected, build().Apply(q), "trial %d", trial)
	}
	K := build()
	assert.Equal(t, K.CSR().RawMatrix(), build().CSR().RawMatrix())
}
