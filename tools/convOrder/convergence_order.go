package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/notargets/advdiff/FD1D"
	AD1D "github.com/notargets/advdiff/model_problems/AdvectionDiffusion1D"
)

var (
	csvFile, outFile string
	velocity         = 1.
	viscosity        = 0.01
	finalTime        = 1.
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study, printed with observed orders")
	outFilePtr := flag.String("out", outFile, "write the computed studies to this CSV file")
	uPtr := flag.Float64("u", velocity, "advection velocity")
	nuPtr := flag.Float64("nu", viscosity, "viscosity")
	tPtr := flag.Float64("T", finalTime, "final time for the temporal studies")
	flag.Parse()
	csvFile, outFile = *csvFilePtr, *outFilePtr
	velocity, viscosity, finalTime = *uPtr, *nuPtr, *tPtr

	var (
		studies []*AD1D.ConvergenceStudy
		err     error
	)
	if len(csvFile) != 0 {
		fmt.Printf("Input file: %v\n", csvFile)
		studies = readCSV(csvFile)
	} else {
		studies = runStudies()
	}
	for _, cs := range studies {
		cs.Print()
	}
	if len(outFile) != 0 {
		var f *os.File
		if f, err = os.Create(outFile); err != nil {
			panic(err)
		}
		defer f.Close()
		w := bufio.NewWriter(f)
		if err = AD1D.WriteCSV(w, studies...); err != nil {
			panic(err)
		}
		if err = w.Flush(); err != nil {
			panic(err)
		}
	}
}

func runStudies() (studies []*AD1D.ConvergenceStudy) {
	for _, acc := range FD1D.SupportedAccuracyOrders {
		cs, err := AD1D.SpatialStudy(acc, []int{16, 32, 64, 128, 256}, velocity, viscosity)
		if err != nil {
			panic(err)
		}
		studies = append(studies, cs)
	}
	for _, theta := range []float64{0.5, 1} {
		cs, err := AD1D.TemporalStudy(theta, 64, 6, velocity, viscosity, finalTime, []int{10, 20, 40, 80, 160})
		if err != nil {
			panic(err)
		}
		studies = append(studies, cs)
	}
	return
}

func readCSV(csvFile string) (studies []*AD1D.ConvergenceStudy) {
	var (
		err error
		f   *os.File
	)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	defer f.Close()
	if studies, err = AD1D.ReadCSV(bufio.NewReader(f)); err != nil {
		panic(err)
	}
	return
}
