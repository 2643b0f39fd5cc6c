package AdvectionDiffusion1D

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/advdiff/FD1D"
	"github.com/notargets/advdiff/InputParameters"
	"github.com/notargets/advdiff/utils"
)

var ErrDiverged = errors.New("solution diverged")

// Plotter receives states from a running model, it must not modify q
type Plotter interface {
	Plot(step int, time float64, x []float64, q State)
}

type AdvectionDiffusion struct {
	// Input parameters
	Title         string
	Mesh          FD1D.Mesh
	U, Nu, Dt     float64
	Theta         float64
	Nt, Accuracy  int
	Init          InitType
	M, K          *FD1D.Operator
	System        *ImplicitSystem
	LogFrequency  int
	PlotFrequency int
}

type Diagnostics struct {
	MassInitial, MassFinal float64
	MaxInitial, MaxFinal   float64
	Factorizations         int
	Elapsed                time.Duration
}

// MassDrift is the change in the discrete integral relative to its initial magnitude
func (d Diagnostics) MassDrift() float64 {
	if d.MassInitial == 0 {
		return math.Abs(d.MassFinal)
	}
	return math.Abs(d.MassFinal-d.MassInitial) / math.Abs(d.MassInitial)
}

func (d Diagnostics) Print() {
	fmt.Printf("Mass initial, final = %12.8f, %12.8f, relative drift = %8.2e\n", d.MassInitial, d.MassFinal, d.MassDrift())
	fmt.Printf("Max |q| initial, final = %8.5f, %8.5f\n", d.MaxInitial, d.MaxFinal)
	fmt.Printf("Factorizations = %d, Elapsed = %v\n", d.Factorizations, d.Elapsed)
}

func NewAdvectionDiffusion(ip *InputParameters.InputParametersAD1D) (c *AdvectionDiffusion, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	_, nu, dt := ip.Derived()
	c = &AdvectionDiffusion{
		Title:         ip.Title,
		U:             ip.U,
		Nu:            nu,
		Dt:            dt,
		Theta:         ip.Theta,
		Nt:            ip.NT,
		Accuracy:      ip.Accuracy,
		LogFrequency:  50,
		PlotFrequency: 1,
	}
	if c.Init, err = NewInitType(ip.InitType); err != nil {
		return nil, err
	}
	if c.Mesh, err = ip.Mesh(); err != nil {
		return nil, err
	}
	if c.M, err = FD1D.NewMass(c.Mesh.N); err != nil {
		return nil, err
	}
	if c.K, err = FD1D.NewAdvectionDiffusion(c.Mesh, c.U, c.Nu, c.Accuracy); err != nil {
		return nil, err
	}
	if c.System, err = NewImplicitSystem(c.M, c.K, c.Theta, c.Dt); err != nil {
		return nil, err
	}
	return
}

// Run marches the configured initial condition through all Nt steps.
// plotter may be nil, otherwise it is handed every PlotFrequency'th state.
func (c *AdvectionDiffusion) Run(plotter Plotter) (series TimeSeries, diag Diagnostics, err error) {
	var (
		q0    = c.Init.Initialize(c.Mesh)
		x     = c.Mesh.Points()
		start = time.Now()
	)
	fmt.Printf("%s: %s, theta = %5.3f, dt = %8.5f, N = %d, Nt = %d\n",
		c.Title, c.Init, c.Theta, c.Dt, c.Mesh.N, c.Nt)
	fmt.Printf("Umin, Umax = %8.5f, %8.5f\n", floats.Min(q0), floats.Max(q0))
	observe := func(step int, q State) error {
		if utils.IsNan([]float64(q)) || math.IsInf(utils.VecMaxAbs(q), 1) {
			return fmt.Errorf("%w: non finite value found at step %d", ErrDiverged, step)
		}
		Time := float64(step) * c.Dt
		if c.LogFrequency > 0 && step%c.LogFrequency == 0 && step != 0 {
			fmt.Printf("Time = %8.4f, step = %6d, mass = %12.8f, umin = %8.4f, umax = %8.4f\n",
				Time, step, c.Mass(q), floats.Min(q), floats.Max(q))
		}
		if plotter != nil && c.PlotFrequency > 0 && step%c.PlotFrequency == 0 {
			plotter.Plot(step, Time, x, q)
		}
		return nil
	}
	if series, err = MarchEach(c.System, q0, c.Nt, observe); err != nil {
		return
	}
	final := series[len(series)-1]
	diag = Diagnostics{
		MassInitial:    c.Mass(series[0]),
		MassFinal:      c.Mass(final),
		MaxInitial:     utils.VecMaxAbs(series[0]),
		MaxFinal:       utils.VecMaxAbs(final),
		Factorizations: c.System.Factorizations(),
		Elapsed:        time.Since(start),
	}
	fmt.Printf("%s\n", utils.GetMemUsage())
	return
}

// Mass is the discrete integral of q over the periodic domain
func (c *AdvectionDiffusion) Mass(q State) float64 {
	return utils.VecSum(q) * c.Mesh.Dx
}
