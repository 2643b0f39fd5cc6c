package AdvectionDiffusion1D

import (
	"fmt"
	"sync"

	"github.com/notargets/advdiff/FD1D"
	"github.com/notargets/advdiff/utils"
	"go.uber.org/multierr"
)

// Observer sees every state as it is produced, step 0 is the initial condition.
// Returning an error stops the march.
type Observer func(step int, q State) error

// March advances q0 by nt theta method steps.
func March(sys *ImplicitSystem, q0 State, nt int) (TimeSeries, error) {
	return MarchEach(sys, q0, nt, nil)
}

// MarchEach is March with an observer called after each step. No partial series is returned on error.
func MarchEach(sys *ImplicitSystem, q0 State, nt int, observe Observer) (series TimeSeries, err error) {
	if nt < 0 {
		err = fmt.Errorf("%w: step count must be non negative, got %d", FD1D.ErrConfiguration, nt)
		return
	}
	// A singular system must stop the run before any state is produced
	if err = sys.Factorize(); err != nil {
		return
	}
	var (
		rhs = make(State, len(q0))
	)
	series = make(TimeSeries, 1, nt+1)
	series[0] = utils.VecCopy(q0)
	if observe != nil {
		if err = observe(0, series[0]); err != nil {
			return nil, err
		}
	}
	for i := 0; i < nt; i++ {
		sys.RHS(rhs, series[i])
		next := make(State, len(q0))
		if err = sys.SolveTo(next, rhs); err != nil {
			return nil, err
		}
		series = append(series, next)
		if observe != nil {
			if err = observe(i+1, next); err != nil {
				return nil, err
			}
		}
	}
	return
}

// MarchEnsemble advances independent initial conditions concurrently through one shared factorization.
// Members are split across at most one worker per CPU. Results are in the order of q0s.
func MarchEnsemble(sys *ImplicitSystem, q0s []State, nt int) (results []TimeSeries, err error) {
	if err = sys.Factorize(); err != nil {
		return
	}
	for n, q0 := range q0s {
		if len(q0) != sys.N() {
			err = multierr.Append(err, fmt.Errorf("initial condition %d: %w: %d points, system has %d",
				n, FD1D.ErrConfiguration, len(q0), sys.N()))
		}
	}
	if err != nil {
		return
	}
	var (
		wg   sync.WaitGroup
		pm   = utils.NewWorkerPartition(len(q0s))
		errs = make([]error, len(q0s))
	)
	results = make([]TimeSeries, len(q0s))
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for n := kMin; n < kMax; n++ {
				results[n], errs[n] = March(sys, q0s[n], nt)
			}
		}(np)
	}
	wg.Wait()
	for n, e := range errs {
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("initial condition %d: %w", n, e))
		}
	}
	if err != nil {
		results = nil
	}
	return
}
