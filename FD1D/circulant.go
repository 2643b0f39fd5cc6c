package FD1D

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/advdiff/utils"
)

// Operator is a periodic (circulant) linear map on length N states.
// Row i is row 0 cyclically shifted by i, so the operator is fully described by its diagonals:
//
//	(A q)[i] = sum_d Coeff[d] * q[(i + Offset[d]) mod N]
//
// Offsets are stored in [0, N), sorted and unique. An Operator is immutable after assembly.
type Operator struct {
	n       int
	offsets []int
	coeffs  []float64
	csrOnce sync.Once
	csr     utils.CSR
}

// NewCirculant assembles the periodic operator for a stencil on an N point mesh.
// N must exceed the stencil width, otherwise the near and far wraps of the stencil alias.
func NewCirculant(st Stencil, N int) (op *Operator, err error) {
	var (
		k = st.Offset()
	)
	if st.Len() == 0 {
		err = fmt.Errorf("%w: empty stencil", ErrConfiguration)
		return
	}
	if N <= 2*k || N <= 0 {
		err = fmt.Errorf("%w: mesh of %d points is too small for a stencil of half width %d, need N > %d",
			ErrConfiguration, N, k, 2*k)
		return
	}
	diags := make(map[int]float64, st.Len())
	for j := -k; j <= k; j++ {
		diags[wrap(j, N)] += st.At(j)
	}
	op = newOperator(N, diags)
	return
}

// newOperator expects diagonal offsets already reduced to [0, N)
func newOperator(N int, diags map[int]float64) (op *Operator) {
	op = &Operator{n: N}
	for off, c := range diags {
		if c == 0 {
			continue
		}
		op.offsets = append(op.offsets, off)
	}
	sort.Ints(op.offsets)
	op.coeffs = make([]float64, len(op.offsets))
	for d, off := range op.offsets {
		op.coeffs[d] = diags[off]
	}
	return
}

func (op *Operator) N() int { return op.n }

// Diagonals returns copies of the stored offsets and coefficients
func (op *Operator) Diagonals() (offsets []int, coeffs []float64) {
	offsets = append([]int(nil), op.offsets...)
	coeffs = append([]float64(nil), op.coeffs...)
	return
}

// Coefficient returns the weight on diagonal offset, with offset taken modulo N
func (op *Operator) Coefficient(offset int) float64 {
	off := wrap(offset, op.n)
	d := sort.SearchInts(op.offsets, off)
	if d < len(op.offsets) && op.offsets[d] == off {
		return op.coeffs[d]
	}
	return 0
}

func (op *Operator) IsZero() bool { return len(op.offsets) == 0 }

// RowSum is the sum of every row, which is the same for all rows of a circulant
func (op *Operator) RowSum() (sum float64) {
	for _, c := range op.coeffs {
		sum += c
	}
	return
}

// CSR returns the sparse form of the operator, built on first use
func (op *Operator) CSR() utils.CSR {
	op.csrOnce.Do(func() {
		D := utils.NewDOK(op.n, op.n)
		for i := 0; i < op.n; i++ {
			for d, off := range op.offsets {
				D.Set(i, (i+off)%op.n, op.coeffs[d])
			}
		}
		D.SetReadOnly(fmt.Sprintf("circulant[N=%d, diagonals=%v]", op.n, op.offsets))
		op.csr = D.ToCSR()
	})
	return op.csr
}

func (op *Operator) Dense() *mat.Dense {
	return op.CSR().ToDense()
}

// ApplyTo computes dst = A q, dst must not alias q
func (op *Operator) ApplyTo(dst, q []float64) {
	if len(dst) != op.n || len(q) != op.n {
		panic(fmt.Errorf("operator of size %d applied with len(dst) = %d, len(q) = %d", op.n, len(dst), len(q)))
	}
	if op.IsZero() {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	op.CSR().MulVec(dst, q)
}

func (op *Operator) Apply(q []float64) (r []float64) {
	r = make([]float64, op.n)
	op.ApplyTo(r, q)
	return
}

func (op *Operator) String() string {
	return fmt.Sprintf("Operator{N: %d, Offsets: %v, Coefficients: %v}", op.n, op.offsets, op.coeffs)
}
