package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CyclicShift returns r with r[i] = v[(i+s) mod N], for any integer s
func CyclicShift(v []float64, s int) (r []float64) {
	var (
		N = len(v)
	)
	r = make([]float64, N)
	if N == 0 {
		return
	}
	s %= N
	if s < 0 {
		s += N
	}
	for i := range r {
		r[i] = v[(i+s)%N]
	}
	return
}

func VecSum(v []float64) float64 { return floats.Sum(v) }

func VecMean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Sum(v) / float64(len(v))
}

func VecMaxAbs(v []float64) (max float64) {
	for _, val := range v {
		if a := math.Abs(val); a > max {
			max = a
		}
	}
	return
}

func VecScale(v []float64, a float64) (r []float64) {
	r = make([]float64, len(v))
	copy(r, v)
	floats.Scale(a, r)
	return
}

func VecCopy(v []float64) (r []float64) {
	r = make([]float64, len(v))
	copy(r, v)
	return
}
