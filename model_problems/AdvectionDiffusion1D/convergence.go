package AdvectionDiffusion1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"sort"
	"strconv"

	"github.com/notargets/advdiff/FD1D"
)

// ConvergenceStudy holds error norms over a sequence of refinements of one step size, mesh or time
type ConvergenceStudy struct {
	Title    string
	Order    int // Nominal order of the scheme under study
	NumPTS   []int
	StepSize []float64
	RMS, MAX []float64
}

func NewConvergenceStudy(title string, order int) *ConvergenceStudy {
	return &ConvergenceStudy{
		Title: title,
		Order: order,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, stepSize, rms, max float64) {
	cs.NumPTS = append(cs.NumPTS, numPTS)
	cs.StepSize = append(cs.StepSize, stepSize)
	cs.RMS = append(cs.RMS, rms)
	cs.MAX = append(cs.MAX, max)
}

// ObservedOrders returns log(e[i]/e[i+1]) / log(h[i]/h[i+1]) for each consecutive refinement
func (cs *ConvergenceStudy) ObservedOrders() (rmsOrder, maxOrder []float64) {
	for i := 0; i+1 < len(cs.StepSize); i++ {
		lh := math.Log(cs.StepSize[i] / cs.StepSize[i+1])
		rmsOrder = append(rmsOrder, math.Log(cs.RMS[i]/cs.RMS[i+1])/lh)
		maxOrder = append(maxOrder, math.Log(cs.MAX[i]/cs.MAX[i+1])/lh)
	}
	return
}

func (cs *ConvergenceStudy) Print() {
	rmsOrder, maxOrder := cs.ObservedOrders()
	fmt.Printf("Title = %s, Order = %d\n", cs.Title, cs.Order)
	for i := range cs.NumPTS {
		if i == 0 {
			fmt.Printf("%6d, %10.3e, %10.3e, %10.3e\n", cs.NumPTS[i], cs.StepSize[i], cs.RMS[i], cs.MAX[i])
			continue
		}
		fmt.Printf("%6d, %10.3e, %10.3e, %10.3e, order(rms, max) = %5.2f, %5.2f\n",
			cs.NumPTS[i], cs.StepSize[i], cs.RMS[i], cs.MAX[i], rmsOrder[i-1], maxOrder[i-1])
	}
}

func errorNorms(q, exact []float64) (rms, max float64) {
	for i := range q {
		e := math.Abs(q[i] - exact[i])
		rms += e * e
		if e > max {
			max = e
		}
	}
	rms = math.Sqrt(rms / float64(len(q)))
	return
}

// SpatialStudy refines the mesh and measures the residual error of K against the continuous operator on sin(x)
func SpatialStudy(accuracy int, meshes []int, u, nu float64) (cs *ConvergenceStudy, err error) {
	cs = NewConvergenceStudy(fmt.Sprintf("Spatial accuracy %d", accuracy), accuracy)
	for _, N := range meshes {
		var (
			m FD1D.Mesh
			K *FD1D.Operator
		)
		if m, err = FD1D.NewMesh(N, 2*math.Pi, 0); err != nil {
			return nil, err
		}
		if K, err = FD1D.NewAdvectionDiffusion(m, u, nu, accuracy); err != nil {
			return nil, err
		}
		Kq := K.Apply(m.Evaluate(math.Sin))
		exact := m.Evaluate(func(x float64) float64 { return u*math.Cos(x) + nu*math.Sin(x) })
		rms, max := errorNorms(Kq, exact)
		cs.Add(N, m.Dx, rms, max)
	}
	return
}

// Eigenvalue of a circulant operator for the Fourier mode exp(i*k*x) on mesh m
func Eigenvalue(op *FD1D.Operator, m FD1D.Mesh, k int) (lambda complex128) {
	offsets, coeffs := op.Diagonals()
	for d, off := range offsets {
		lambda += complex(coeffs[d], 0) * cmplx.Exp(complex(0, float64(k*off)*m.Dx*2*math.Pi/m.Length))
	}
	return
}

// TemporalStudy refines the timestep for a fixed mesh and measures the error against the exact
// solution of the spatially discrete system, so only the theta method error is seen
func TemporalStudy(theta float64, N, accuracy int, u, nu, finalTime float64, steps []int) (cs *ConvergenceStudy, err error) {
	var (
		m    FD1D.Mesh
		M, K *FD1D.Operator
	)
	order := 1
	if theta == 0.5 {
		order = 2
	}
	cs = NewConvergenceStudy(fmt.Sprintf("Temporal theta = %4.2f", theta), order)
	if m, err = FD1D.NewMesh(N, 2*math.Pi, 0); err != nil {
		return nil, err
	}
	if M, err = FD1D.NewMass(N); err != nil {
		return nil, err
	}
	if K, err = FD1D.NewAdvectionDiffusion(m, u, nu, accuracy); err != nil {
		return nil, err
	}
	// sin(x) = Im(exp(i x)) decays as Im(exp(-lambda t) exp(i x)) under dq/dt = -K q
	lambda := Eigenvalue(K, m, 1)
	decay := cmplx.Exp(-lambda * complex(finalTime, 0))
	exact := m.Evaluate(func(x float64) float64 {
		return imag(decay * cmplx.Exp(complex(0, x)))
	})
	q0 := State(m.Evaluate(math.Sin))
	for _, nt := range steps {
		var (
			sys    *ImplicitSystem
			series TimeSeries
			dt     = finalTime / float64(nt)
		)
		if sys, err = NewImplicitSystem(M, K, theta, dt); err != nil {
			return nil, err
		}
		if series, err = March(sys, q0, nt); err != nil {
			return nil, err
		}
		rms, max := errorNorms(series[nt], exact)
		cs.Add(nt, dt, rms, max)
	}
	return
}

func WriteCSV(w io.Writer, studies ...*ConvergenceStudy) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"Title", "NumPTS", "Order", "StepSize", "RMS", "MAX"}); err != nil {
		return
	}
	for _, cs := range studies {
		for i := range cs.NumPTS {
			rec := []string{
				cs.Title,
				strconv.Itoa(cs.NumPTS[i]),
				strconv.Itoa(cs.Order),
				strconv.FormatFloat(cs.StepSize[i], 'g', -1, 64),
				strconv.FormatFloat(cs.RMS[i], 'g', -1, 64),
				strconv.FormatFloat(cs.MAX[i], 'g', -1, 64),
			}
			if err = cw.Write(rec); err != nil {
				return
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type studyKey struct {
	title string
	order int
}

// ReadCSV groups the rows written by WriteCSV back into studies, keyed by title and order
func ReadCSV(r io.Reader) (studies []*ConvergenceStudy, err error) {
	var (
		records [][]string
		byKey   = make(map[studyKey]*ConvergenceStudy)
		keys    []studyKey
	)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 6 {
			err = fmt.Errorf("line %d: expected 6 fields, got %d", i+1, len(rec))
			return
		}
		var (
			npts, order    int
			h, rms, maxErr float64
		)
		if npts, err = strconv.Atoi(rec[1]); err != nil {
			return
		}
		if order, err = strconv.Atoi(rec[2]); err != nil {
			return
		}
		if h, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return
		}
		if rms, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return
		}
		if maxErr, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return
		}
		key := studyKey{rec[0], order}
		cs, ok := byKey[key]
		if !ok {
			cs = NewConvergenceStudy(rec[0], order)
			byKey[key] = cs
			keys = append(keys, key)
		}
		cs.Add(npts, h, rms, maxErr)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].title != keys[j].title {
			return keys[i].title < keys[j].title
		}
		return keys[i].order < keys[j].order
	})
	for _, key := range keys {
		studies = append(studies, byKey[key])
	}
	return
}
