package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"

	"github.com/notargets/advdiff/FD1D"
)

// Parameters obtained from the YAML input file
type InputParametersAD1D struct {
	Title    string  `json:"Title" yaml:"Title"`
	NX       int     `json:"nx" yaml:"nx"`             // Mesh points
	NT       int     `json:"nt" yaml:"nt"`             // Timesteps
	LX       float64 `json:"lx" yaml:"lx"`             // Domain length
	U        float64 `json:"u" yaml:"u"`               // Advection velocity
	RE       float64 `json:"re" yaml:"re"`             // Reynolds number, nu = lx*u/re
	CFL      float64 `json:"cfl" yaml:"cfl"`           // Courant number, dt = cfl*dx/u
	Theta    float64 `json:"theta" yaml:"theta"`       // 0 = explicit Euler, 0.5 = trapezium, 1 = backward Euler
	DT       float64 `json:"dt" yaml:"dt"`             // Optional, overrides the CFL timestep when > 0
	Accuracy int     `json:"accuracy" yaml:"accuracy"` // Spatial accuracy order, one of 2, 4, 6
	InitType string  `json:"InitType" yaml:"InitType"`
}

func Defaults() *InputParametersAD1D {
	return &InputParametersAD1D{
		Title:    "Periodic advection diffusion",
		NX:       128,
		NT:       256,
		LX:       2 * math.Pi,
		U:        1,
		RE:       500,
		CFL:      0.8,
		Theta:    0.5,
		Accuracy: 2,
		InitType: "CosinePower",
	}
}

// Parse overlays the YAML document onto the receiver, fields absent from data keep their value
func (ip *InputParametersAD1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersAD1D) Print() {
	dx, nu, dt := ip.Derived()
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Mesh Points\n", ip.NX)
	fmt.Printf("[%d]\t\t\t\t= Timesteps\n", ip.NT)
	fmt.Printf("%8.5f\t\t= Domain Length\n", ip.LX)
	fmt.Printf("%8.5f\t\t= Velocity\n", ip.U)
	fmt.Printf("%8.5f\t\t= Reynolds Number\n", ip.RE)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= Theta\n", ip.Theta)
	fmt.Printf("[%d]\t\t\t\t= Accuracy Order\n", ip.Accuracy)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	fmt.Printf("%8.5f\t\t= dx\n", dx)
	fmt.Printf("%8.5f\t\t= nu\n", nu)
	fmt.Printf("%8.5f\t\t= dt\n", dt)
}

// Derived returns the mesh spacing, viscosity and timestep implied by the parameters
func (ip *InputParametersAD1D) Derived() (dx, nu, dt float64) {
	dx = ip.LX / float64(ip.NX)
	if ip.RE != 0 {
		nu = ip.LX * ip.U / ip.RE
	}
	if ip.DT > 0 {
		dt = ip.DT
	} else if ip.U != 0 {
		dt = ip.CFL * dx / ip.U
	}
	return
}

func (ip *InputParametersAD1D) Validate() (err error) {
	var (
		_, nu, dt = ip.Derived()
		bad       = func(format string, args ...interface{}) error {
			return fmt.Errorf("%w: %s", FD1D.ErrConfiguration, fmt.Sprintf(format, args...))
		}
	)
	switch {
	case ip.NX <= 0:
		return bad("nx must be positive, got %d", ip.NX)
	case ip.NT < 0:
		return bad("nt must be non negative, got %d", ip.NT)
	case !(ip.LX > 0) || math.IsInf(ip.LX, 1):
		return bad("lx must be positive and finite, got %v", ip.LX)
	case !(ip.RE > 0):
		return bad("re must be positive, got %v", ip.RE)
	case ip.DT <= 0 && !(ip.CFL > 0):
		return bad("cfl must be positive, got %v", ip.CFL)
	case math.IsNaN(ip.Theta) || ip.Theta < 0 || ip.Theta > 1:
		return bad("theta must be in [0,1], got %v", ip.Theta)
	case !(dt > 0) || math.IsInf(dt, 1):
		return bad("timestep must be positive and finite, got dt = %v (u = %v, cfl = %v)", dt, ip.U, ip.CFL)
	case math.IsNaN(nu) || math.IsInf(nu, 0) || nu < 0:
		return bad("viscosity must be finite and non negative, nu = %v", nu)
	}
	for _, d := range []int{1, 2} {
		var st FD1D.Stencil
		if st, err = FD1D.NewStencil(d, ip.Accuracy); err != nil {
			return
		}
		if ip.NX <= 2*st.Offset() {
			return bad("nx = %d is too small for accuracy order %d, need nx > %d", ip.NX, ip.Accuracy, 2*st.Offset())
		}
	}
	return
}

func (ip *InputParametersAD1D) Mesh() (FD1D.Mesh, error) {
	return FD1D.NewMesh(ip.NX, ip.LX, -ip.LX/2)
}
