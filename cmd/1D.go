/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/advdiff/InputParameters"
	"github.com/notargets/advdiff/model_problems/AdvectionDiffusion1D"
	"github.com/notargets/advdiff/utils"
	"github.com/notargets/advdiff/utils/graphics"
)

type Model1D struct {
	ICFile    string
	Graph     bool
	Ascii     bool
	Profile   bool
	PlotSteps int
	Delay     time.Duration
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional periodic advection diffusion",
	Long: `
Executes the centred finite difference, theta method solver for periodic advection diffusion.
Parameters come from the defaults, then the input conditions file, then the config file,
environment (ADVDIFF_*) and command line flags, later sources winning.

advdiff 1D -I input.yaml --theta 1`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("1D called")
		m1d := &Model1D{}
		if m1d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		m1d.Ascii, _ = cmd.Flags().GetBool("ascii")
		m1d.Profile, _ = cmd.Flags().GetBool("profile")
		m1d.PlotSteps, _ = cmd.Flags().GetInt("plotSteps")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr) * time.Millisecond
		ip := processInput(m1d)
		if err = Run1D(m1d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	def := InputParameters.Defaults()
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- nx, nt\n\t- lx, u, re, cfl\n\t- theta")
	OneDCmd.Flags().Int("nx", def.NX, "number of mesh points")
	OneDCmd.Flags().Int("nt", def.NT, "number of timesteps")
	OneDCmd.Flags().Float64("lx", def.LX, "domain length")
	OneDCmd.Flags().Float64("u", def.U, "advection velocity")
	OneDCmd.Flags().Float64("re", def.RE, "Reynolds number, nu = lx*u/re")
	OneDCmd.Flags().Float64("cfl", def.CFL, "CFL - dt = cfl*dx/u")
	OneDCmd.Flags().Float64("theta", def.Theta, "theta - 0 = explicit, 0.5 = trapezium rule, 1 = backward Euler")
	OneDCmd.Flags().Float64("dt", def.DT, "timestep, overrides the CFL derived timestep when > 0")
	OneDCmd.Flags().Int("accuracy", def.Accuracy, "spatial accuracy order: 2, 4 or 6")
	OneDCmd.Flags().String("InitType", def.InitType, "initial condition: CosinePower, Sine or Gaussian")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	OneDCmd.Flags().BoolP("ascii", "a", false, "print a terminal plot of the initial and final states")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile of the run to the current directory")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().IntP("plotSteps", "s", 1, "number of steps before plotting each frame")
	for _, name := range []string{"nx", "nt", "lx", "u", "re", "cfl", "theta", "dt", "accuracy", "InitType"} {
		if err := viper.BindPFlag(name, OneDCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func processInput(m1d *Model1D) (ip *InputParameters.InputParametersAD1D) {
	var (
		err error
	)
	ip = InputParameters.Defaults()
	if len(m1d.ICFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(m1d.ICFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	overrideFromViper(ip)
	return
}

// overrideFromViper applies values set by flag, environment or config file
func overrideFromViper(ip *InputParameters.InputParametersAD1D) {
	if viper.IsSet("nx") {
		ip.NX = viper.GetInt("nx")
	}
	if viper.IsSet("nt") {
		ip.NT = viper.GetInt("nt")
	}
	if viper.IsSet("lx") {
		ip.LX = viper.GetFloat64("lx")
	}
	if viper.IsSet("u") {
		ip.U = viper.GetFloat64("u")
	}
	if viper.IsSet("re") {
		ip.RE = viper.GetFloat64("re")
	}
	if viper.IsSet("cfl") {
		ip.CFL = viper.GetFloat64("cfl")
	}
	if viper.IsSet("theta") {
		ip.Theta = viper.GetFloat64("theta")
	}
	if viper.IsSet("dt") {
		ip.DT = viper.GetFloat64("dt")
	}
	if viper.IsSet("accuracy") {
		ip.Accuracy = viper.GetInt("accuracy")
	}
	if viper.IsSet("InitType") {
		ip.InitType = viper.GetString("InitType")
	}
}

type chartPlotter struct {
	chart *graphics.LineChart
	delay time.Duration
}

func (cp *chartPlotter) Plot(step int, simTime float64, x []float64, q AdvectionDiffusion1D.State) {
	cp.chart.Plot(cp.delay, x, q, -1, "Q")
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParametersAD1D) (err error) {
	var (
		c       *AdvectionDiffusion1D.AdvectionDiffusion
		plotter AdvectionDiffusion1D.Plotter
		series  AdvectionDiffusion1D.TimeSeries
		diag    AdvectionDiffusion1D.Diagnostics
	)
	ip.Print()
	if c, err = AdvectionDiffusion1D.NewAdvectionDiffusion(ip); err != nil {
		return
	}
	if m1d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if m1d.Graph {
		q0 := c.Init.Initialize(c.Mesh)
		scale := 1.1 * utils.VecMaxAbs(q0)
		plotter = &chartPlotter{
			chart: graphics.NewLineChart(1280, 1024, c.Mesh.XMin, c.Mesh.XMin+c.Mesh.Length, -scale, scale),
			delay: m1d.Delay,
		}
		c.PlotFrequency = m1d.PlotSteps
	}
	if series, diag, err = c.Run(plotter); err != nil {
		return
	}
	diag.Print()
	if m1d.Ascii {
		fmt.Println(utils.AsciiPlot("initial and final state", 80, 15, series[0], series[len(series)-1]))
	}
	return
}
