package utils

import (
	"github.com/guptarohit/asciigraph"
)

// AsciiPlot renders one or more series as a terminal line chart
func AsciiPlot(caption string, width, height int, series ...[]float64) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
