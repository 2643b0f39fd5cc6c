package utils

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// DOK is the assembly format: entries are set, then the matrix is frozen into a CSR
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

// ToCSR freezes the matrix with columns ascending within each row, so row products always sum in the same order
func (m DOK) ToCSR() CSR {
	type entry struct {
		i, j int
		v    float64
	}
	var (
		nr, nc  = m.Dims()
		entries = make([]entry, 0, m.NNZ())
	)
	m.M.DoNonZero(func(i, j int, v float64) {
		entries = append(entries, entry{i, j, v})
	})
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].i != entries[b].i {
			return entries[a].i < entries[b].i
		}
		return entries[a].j < entries[b].j
	})
	var (
		ia   = make([]int, nr+1)
		ja   = make([]int, len(entries))
		data = make([]float64, len(entries))
	)
	for k, e := range entries {
		ia[e.i+1]++
		ja[k], data[k] = e.j, e.v
	}
	for i := 0; i < nr; i++ {
		ia[i+1] += ia[i]
	}
	return CSR{
		M:    sparse.NewCSR(nr, nc, ia, ja, data),
		name: m.name,
	}
}

// CSR is read only, it is only produced by freezing a DOK
type CSR struct {
	M    *sparse.CSR
	name string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }
func (m CSR) NNZ() int                      { return m.M.NNZ() }
func (m CSR) Name() string                  { return m.name }
func (m CSR) Data() []float64 {
	return m.RawMatrix().Data
}

// MulVec computes dst = M * x, dst is overwritten
func (m CSR) MulVec(dst, x []float64) {
	var (
		nr, nc = m.Dims()
	)
	if len(dst) != nr || len(x) != nc {
		panic(fmt.Errorf("dimension mismatch in MulVec for \"%s\": matrix is %dx%d, len(dst) = %d, len(x) = %d",
			m.name, nr, nc, len(dst), len(x)))
	}
	for i := range dst {
		dst[i] = 0
	}
	m.M.MulVecTo(dst, false, x)
}

func (m CSR) ToDense() *mat.Dense {
	return m.M.ToDense()
}
