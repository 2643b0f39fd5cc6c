package AdvectionDiffusion1D

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/notargets/advdiff/FD1D"
	"github.com/notargets/advdiff/utils"
	"go.uber.org/atomic"
)

// ErrSingularSystem means the implicit operator A1 can not be factored, no step can be taken
var ErrSingularSystem = errors.New("singular implicit system")

// State is the discrete field at one instant
type State []float64

// TimeSeries holds State[0] (the initial condition) through State[nt]
type TimeSeries []State

// ImplicitSystem is one theta method step
//
//	A1 q[n+1] = -A0 q[n]
//	A0 = -(1/dt) M + (1-theta) K
//	A1 =  (1/dt) M + theta K
//
// The LU factors of A1 are computed on first use and shared by every later solve.
type ImplicitSystem struct {
	a0, a1    *FD1D.Operator
	theta, dt float64

	factorOnce     sync.Once
	lu             *utils.LU
	factorErr      error
	factorizations atomic.Int32
}

func NewImplicitSystem(M, K *FD1D.Operator, theta, dt float64) (sys *ImplicitSystem, err error) {
	switch {
	case M == nil || K == nil:
		err = fmt.Errorf("%w: mass and residual operators are required", FD1D.ErrConfiguration)
		return
	case math.IsNaN(theta) || theta < 0 || theta > 1:
		err = fmt.Errorf("%w: theta must be in [0,1], got %v", FD1D.ErrConfiguration, theta)
		return
	case !(dt > 0) || math.IsInf(dt, 1):
		err = fmt.Errorf("%w: timestep must be positive and finite, got %v", FD1D.ErrConfiguration, dt)
		return
	}
	sys = &ImplicitSystem{theta: theta, dt: dt}
	if sys.a0, err = FD1D.Combine(
		FD1D.Term{Scale: -1. / dt, Op: M},
		FD1D.Term{Scale: 1. - theta, Op: K},
	); err != nil {
		return nil, err
	}
	if sys.a1, err = FD1D.Combine(
		FD1D.Term{Scale: 1. / dt, Op: M},
		FD1D.Term{Scale: theta, Op: K},
	); err != nil {
		return nil, err
	}
	return
}

func (sys *ImplicitSystem) N() int { return sys.a1.N() }

// A0 and A1 are fixed at construction, the cached factors always belong to A1
func (sys *ImplicitSystem) A0() *FD1D.Operator { return sys.a0 }
func (sys *ImplicitSystem) A1() *FD1D.Operator { return sys.a1 }
func (sys *ImplicitSystem) Theta() float64     { return sys.theta }
func (sys *ImplicitSystem) Dt() float64        { return sys.dt }

// Factorize computes the LU factors of A1 once. Every call returns the same result.
func (sys *ImplicitSystem) Factorize() error {
	sys.factorOnce.Do(func() {
		var err error
		if sys.lu, err = utils.NewLU(sys.a1.Dense()); err != nil {
			sys.factorErr = fmt.Errorf("%w: theta = %v, dt = %v: %v", ErrSingularSystem, sys.theta, sys.dt, err)
			return
		}
		sys.factorizations.Inc()
	})
	return sys.factorErr
}

// Factorizations is the number of times A1 has been factored, 0 before the first solve and 1 after
func (sys *ImplicitSystem) Factorizations() int { return int(sys.factorizations.Load()) }

func (sys *ImplicitSystem) ConditionNumber() (cond float64, err error) {
	if err = sys.Factorize(); err != nil {
		return
	}
	return sys.lu.ConditionNumber(), nil
}

// SolveTo writes the solution of A1 x = rhs into dst. Concurrent calls are safe given distinct dst.
func (sys *ImplicitSystem) SolveTo(dst, rhs State) (err error) {
	if err = sys.Factorize(); err != nil {
		return
	}
	return sys.lu.SolveTo(dst, rhs)
}

func (sys *ImplicitSystem) Solve(rhs State) (x State, err error) {
	x = make(State, sys.N())
	if err = sys.SolveTo(x, rhs); err != nil {
		return nil, err
	}
	return
}

// RHS computes rhs = -A0 q
func (sys *ImplicitSystem) RHS(rhs, q State) {
	sys.a0.ApplyTo(rhs, q)
	for i := range rhs {
		rhs[i] = -rhs[i]
	}
}
