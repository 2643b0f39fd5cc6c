package FD1D

import (
	"fmt"
	"math"
)

// Term is one scaled operand of a linear combination of operators
type Term struct {
	Scale float64
	Op    *Operator
}

// Combine returns sum(Scale*Op) over terms; coefficients on the same diagonal add
func Combine(terms ...Term) (op *Operator, err error) {
	if len(terms) == 0 {
		err = fmt.Errorf("%w: no operators to combine", ErrConfiguration)
		return
	}
	var (
		N     = -1
		diags = make(map[int]float64)
	)
	for i, t := range terms {
		if t.Op == nil {
			err = fmt.Errorf("%w: operator %d is nil", ErrConfiguration, i)
			return
		}
		if math.IsNaN(t.Scale) || math.IsInf(t.Scale, 0) {
			err = fmt.Errorf("%w: operator %d has non finite scale %v", ErrConfiguration, i, t.Scale)
			return
		}
		if N == -1 {
			N = t.Op.n
		} else if t.Op.n != N {
			err = fmt.Errorf("%w: operator size mismatch, %d != %d", ErrConfiguration, t.Op.n, N)
			return
		}
		for d, off := range t.Op.offsets {
			diags[off] += t.Scale * t.Op.coeffs[d]
		}
	}
	op = newOperator(N, diags)
	return
}

func NewMass(N int) (*Operator, error) {
	return NewCirculant(MassStencil(), N)
}

// NewDerivative assembles the periodic operator approximating dx^derivativeOrder * d^n/dx^n
func NewDerivative(N, derivativeOrder, accuracyOrder int) (op *Operator, err error) {
	var (
		st Stencil
	)
	if st, err = NewStencil(derivativeOrder, accuracyOrder); err != nil {
		return
	}
	return NewCirculant(st, N)
}

// NewAdvectionDiffusion assembles the spatial residual of dq/dt + u dq/dx = nu d2q/dx2:
//
//	K = (u/dx) D - (nu/dx^2) L
func NewAdvectionDiffusion(m Mesh, velocity, viscosity float64, accuracyOrder int) (K *Operator, err error) {
	var (
		D, L *Operator
	)
	if m.N <= 0 || !(m.Dx > 0) {
		err = fmt.Errorf("%w: invalid mesh, N = %d, dx = %v", ErrConfiguration, m.N, m.Dx)
		return
	}
	if D, err = NewDerivative(m.N, 1, accuracyOrder); err != nil {
		return
	}
	if L, err = NewDerivative(m.N, 2, accuracyOrder); err != nil {
		return
	}
	return Combine(
		Term{Scale: velocity / m.Dx, Op: D},
		Term{Scale: -viscosity / (m.Dx * m.Dx), Op: L},
	)
}
