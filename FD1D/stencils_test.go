package FD1D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStencils(t *testing.T) {
	// Every tabulated stencil approximates a pure derivative, so the weights sum to zero
	{
		for _, d := range SupportedDerivativeOrders {
			for _, a := range SupportedAccuracyOrders {
				st, err := NewStencil(d, a)
				require.NoError(t, err)
				assert.InDeltaf(t, 0., st.Sum(), 1.e-12, "stencil (%d,%d) sum", d, a)
				assert.Equal(t, 1, st.Len()%2, "stencil (%d,%d) must have odd length", d, a)
				assert.Equal(t, d, st.DerivativeOrder)
				assert.Equal(t, a, st.AccuracyOrder)
				// Symmetric for even derivatives, antisymmetric for odd
				sign := 1.
				if d%2 == 1 {
					sign = -1.
				}
				for j := 1; j <= st.Offset(); j++ {
					assert.InDeltaf(t, st.At(j), sign*st.At(-j), 1.e-15, "stencil (%d,%d) symmetry at %d", d, a, j)
				}
			}
		}
	}
	// Literal values
	{
		st, err := NewStencil(1, 2)
		require.NoError(t, err)
		assert.Equal(t, []float64{-0.5, 0, 0.5}, st.Weights())
		assert.Equal(t, 1, st.Offset())
		st, err = NewStencil(2, 2)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, -2, 1}, st.Weights())
		st, err = NewStencil(4, 2)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, -4, 6, -4, 1}, st.Weights())
		st, err = NewStencil(1, 6)
		require.NoError(t, err)
		assert.Equal(t, 7, st.Len())
		assert.Equal(t, 3, st.Offset())
		assert.Equal(t, 0., st.At(4))
	}
	// Stencils are exact on polynomials up to the accuracy order: check the derivative of x^p at 0
	{
		for _, d := range SupportedDerivativeOrders {
			for _, a := range SupportedAccuracyOrders {
				st, _ := NewStencil(d, a)
				for p := 0; p < d+a; p++ {
					var approx float64
					for j := -st.Offset(); j <= st.Offset(); j++ {
						approx += st.At(j) * math.Pow(float64(j), float64(p))
					}
					exact := 0.
					if p == d {
						exact = math.Gamma(float64(d + 1))
					}
					assert.InDeltaf(t, exact, approx, 1.e-9, "stencil (%d,%d) on x^%d", d, a, p)
				}
			}
		}
	}
	// Returned weights are copies
	{
		st, _ := NewStencil(2, 2)
		w := st.Weights()
		w[1] = 100
		again, _ := NewStencil(2, 2)
		assert.Equal(t, -2., st.At(0))
		assert.Equal(t, -2., again.At(0))
	}
	// Mass
	{
		st := MassStencil()
		assert.Equal(t, []float64{1}, st.Weights())
		assert.Equal(t, 0, st.Offset())
	}
	// Unsupported pairs
	{
		for _, pair := range [][2]int{{3, 2}, {1, 3}, {0, 2}, {2, 8}, {-1, 2}} {
			_, err := NewStencil(pair[0], pair[1])
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedStencil), "pair %v", pair)
		}
	}
}
