package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LU holds a dense LU factorization that is computed once and is read only afterwards.
// Any number of goroutines may call SolveTo concurrently as long as each passes its own dst.
type LU struct {
	lu   mat.LU
	n    int
	cond float64
}

func NewLU(A mat.Matrix) (F *LU, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc || nr == 0 {
		err = fmt.Errorf("unable to factor, matrix must be square and non empty: dims = %d x %d", nr, nc)
		return
	}
	F = &LU{n: nr}
	F.lu.Factorize(A)
	F.cond = F.lu.Cond()
	if math.IsNaN(F.cond) || math.IsInf(F.cond, 1) || F.cond > mat.ConditionTolerance {
		err = fmt.Errorf("unable to factor, matrix is singular: condition number = %v", F.cond)
		F = nil
	}
	return
}

func (F *LU) Len() int                 { return F.n }
func (F *LU) ConditionNumber() float64 { return F.cond }

// SolveTo writes the solution of A x = b into dst. dst and b must not overlap.
func (F *LU) SolveTo(dst, b []float64) (err error) {
	if len(dst) != F.n || len(b) != F.n {
		err = fmt.Errorf("dimension mismatch in solve: n = %d, len(dst) = %d, len(b) = %d", F.n, len(dst), len(b))
		return
	}
	x := mat.NewVecDense(F.n, dst)
	if err = F.lu.SolveVecTo(x, false, mat.NewVecDense(F.n, b)); err != nil {
		return
	}
	return
}
