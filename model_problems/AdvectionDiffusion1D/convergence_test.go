package AdvectionDiffusion1D

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/advdiff/FD1D"
)

func TestConvergence(t *testing.T) {
	{ // Mesh refinement recovers the nominal order of each stencil family
		for _, acc := range FD1D.SupportedAccuracyOrders {
			cs, err := SpatialStudy(acc, []int{16, 32, 64, 128}, 1, 0.01)
			require.NoError(t, err)
			rmsOrder, maxOrder := cs.ObservedOrders()
			require.Equal(t, 3, len(rmsOrder))
			last := len(rmsOrder) - 1
			assert.InDelta(t, float64(acc), rmsOrder[last], 0.2)
			assert.InDelta(t, float64(acc), maxOrder[last], 0.2)
		}
	}
	{ // Crank-Nicolson is second order in time, backward Euler first order
		for _, theta := range []float64{0.5, 1} {
			cs, err := TemporalStudy(theta, 32, 4, 1, 0.01, 1, []int{20, 40, 80, 160})
			require.NoError(t, err)
			rmsOrder, _ := cs.ObservedOrders()
			assert.InDelta(t, float64(cs.Order), rmsOrder[len(rmsOrder)-1], 0.1)
		}
	}
	{ // The Fourier eigenvalue of the mass operator is one
		m, err := FD1D.NewMesh(16, 2*math.Pi, 0)
		require.NoError(t, err)
		M, err := FD1D.NewMass(16)
		require.NoError(t, err)
		lambda := Eigenvalue(M, m, 3)
		assert.InDelta(t, 1, real(lambda), 1.e-14)
		assert.InDelta(t, 0, imag(lambda), 1.e-14)
	}
	{ // Studies survive a trip through CSV
		cs := NewConvergenceStudy("Spatial accuracy 2", 2)
		cs.Add(16, 0.25, 1.e-2, 2.e-2)
		cs.Add(32, 0.125, 2.5e-3, 5.e-3)
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, cs))
		studies, err := ReadCSV(&buf)
		require.NoError(t, err)
		require.Equal(t, 1, len(studies))
		assert.Equal(t, cs, studies[0])
		rmsOrder, maxOrder := studies[0].ObservedOrders()
		assert.InDeltaSlice(t, []float64{2}, rmsOrder, 1.e-12)
		assert.InDeltaSlice(t, []float64{2}, maxOrder, 1.e-12)
	}
	{ // Title and order together identify a study, with no mixing across similar labels
		a := NewConvergenceStudy("A1", 2)
		a.Add(16, 0.25, 1.e-2, 2.e-2)
		b := NewConvergenceStudy("A", 12)
		b.Add(32, 0.125, 3.e-3, 4.e-3)
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, a, b))
		studies, err := ReadCSV(&buf)
		require.NoError(t, err)
		require.Equal(t, 2, len(studies))
		assert.Equal(t, b, studies[0])
		assert.Equal(t, a, studies[1])
	}
	{ // Short rows are rejected
		_, err := ReadCSV(bytes.NewBufferString("Title,NumPTS\nfoo,16\n"))
		assert.Error(t, err)
	}
}
