package AdvectionDiffusion1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/advdiff/FD1D"
)

type InitType uint

const (
	COSINEPOWER InitType = iota
	SINE
	GAUSSIAN
)

var (
	InitNames = map[string]InitType{
		"cosinepower": COSINEPOWER,
		"sine":        SINE,
		"gaussian":    GAUSSIAN,
	}
	InitPrintNames = []string{"cos(x/2)^4 Pulse", "Sine Wave", "Gaussian Pulse"}
)

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	if len(label) == 0 {
		err = fmt.Errorf("%w: empty init type, must be one of %v", FD1D.ErrConfiguration, InitNames)
		return
	}
	label = strings.ToLower(label)
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("%w: unable to use init type named %s", FD1D.ErrConfiguration, label)
	}
	return
}

func (it InitType) String() string { return InitPrintNames[it] }

// Initialize samples the initial condition on the mesh, every profile is periodic on [XMin, XMin+Length)
func (it InitType) Initialize(m FD1D.Mesh) State {
	var (
		xc = m.XMin + 0.5*m.Length
		k  = 2 * math.Pi / m.Length
	)
	switch it {
	case SINE:
		return m.Evaluate(func(x float64) float64 { return math.Sin(k * (x - m.XMin)) })
	case GAUSSIAN:
		w := m.Length / 20
		return m.Evaluate(func(x float64) float64 {
			r := (x - xc) / w
			return math.Exp(-r * r)
		})
	case COSINEPOWER:
		fallthrough
	default:
		// cos(x/2)^4 on [-pi, pi), scaled to the domain
		return m.Evaluate(func(x float64) float64 {
			c := math.Cos(0.5 * k * (x - xc))
			return c * c * c * c
		})
	}
}
