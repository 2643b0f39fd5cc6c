package FD1D

import (
	"fmt"
)

// Stencil holds the centred finite difference weights for one derivative at one order of accuracy.
// Weights are indexed from -Offset() to +Offset() around the centre point.
type Stencil struct {
	DerivativeOrder, AccuracyOrder int
	weights                        []float64
}

type stencilKey struct {
	derivative, accuracy int
}

var stencilTable = map[stencilKey][]float64{
	{1, 2}: {-1. / 2., 0, 1. / 2.},
	{1, 4}: {1. / 12., -2. / 3., 0, 2. / 3., -1. / 12.},
	{1, 6}: {-1. / 60., 3. / 20., -3. / 4., 0, 3. / 4., -3. / 20., 1. / 60.},
	{2, 2}: {1, -2, 1},
	{2, 4}: {-1. / 12., 4. / 3., -5. / 2., 4. / 3., -1. / 12.},
	{2, 6}: {1. / 90., -3. / 20., 3. / 2., -49. / 18., 3. / 2., -3. / 20., 1. / 90.},
	{4, 2}: {1, -4, 6, -4, 1},
	{4, 4}: {-1. / 6., 2, -13. / 2., 28. / 3., -13. / 2., 2, -1. / 6.},
	{4, 6}: {7. / 240., -2. / 5., 169. / 60., -122. / 15., 91. / 8., -122. / 15., 169. / 60., -2. / 5., 7. / 240.},
}

var (
	SupportedDerivativeOrders = []int{1, 2, 4}
	SupportedAccuracyOrders   = []int{2, 4, 6}
)

func NewStencil(derivativeOrder, accuracyOrder int) (st Stencil, err error) {
	w, ok := stencilTable[stencilKey{derivativeOrder, accuracyOrder}]
	if !ok {
		err = fmt.Errorf("%w: derivative order %d, accuracy order %d",
			ErrUnsupportedStencil, derivativeOrder, accuracyOrder)
		return
	}
	st = Stencil{
		DerivativeOrder: derivativeOrder,
		AccuracyOrder:   accuracyOrder,
		weights:         append([]float64(nil), w...),
	}
	return
}

// MassStencil is the identity stencil multiplying the time derivative
func MassStencil() Stencil {
	return Stencil{weights: []float64{1}}
}

func (st Stencil) Len() int { return len(st.weights) }

// Offset is the index of the centre weight, which is also the stencil half width
func (st Stencil) Offset() int { return (len(st.weights) - 1) / 2 }

func (st Stencil) Weights() []float64 {
	return append([]float64(nil), st.weights...)
}

// At returns the weight applied to the point j away from the centre, j in [-Offset, Offset]
func (st Stencil) At(j int) float64 {
	k := st.Offset()
	if j < -k || j > k {
		return 0
	}
	return st.weights[j+k]
}

func (st Stencil) Sum() (sum float64) {
	for _, w := range st.weights {
		sum += w
	}
	return
}
