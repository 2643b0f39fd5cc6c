package FD1D

import (
	"fmt"
	"math"
)

// Mesh is a uniform periodic 1D point set: X(i) = XMin + i*Dx, point N coincides with point 0
type Mesh struct {
	N                int
	Length, XMin, Dx float64
}

func NewMesh(N int, length, xMin float64) (m Mesh, err error) {
	switch {
	case N <= 0:
		err = fmt.Errorf("%w: mesh point count must be positive, got %d", ErrConfiguration, N)
		return
	case !(length > 0) || math.IsInf(length, 1):
		err = fmt.Errorf("%w: domain length must be positive and finite, got %v", ErrConfiguration, length)
		return
	}
	m = Mesh{
		N:      N,
		Length: length,
		XMin:   xMin,
		Dx:     length / float64(N),
	}
	return
}

func (m Mesh) X(i int) float64 { return m.XMin + float64(i)*m.Dx }

func (m Mesh) Points() (x []float64) {
	x = make([]float64, m.N)
	for i := range x {
		x[i] = m.X(i)
	}
	return
}

// Wrap maps any integer index onto [0, N)
func (m Mesh) Wrap(i int) int { return wrap(i, m.N) }

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Evaluate samples f at every mesh point
func (m Mesh) Evaluate(f func(x float64) float64) (q []float64) {
	q = make([]float64, m.N)
	for i := range q {
		q[i] = f(m.X(i))
	}
	return
}
