package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsciiPlot(t *testing.T) {
	{
		var (
			N    = 64
			a, b = make([]float64, N), make([]float64, N)
		)
		for i := range a {
			a[i] = math.Sin(2 * math.Pi * float64(i) / float64(N))
			b[i] = 0.5 * a[i]
		}
		out := AsciiPlot("initial and final state", 60, 10, a, b)
		assert.True(t, strings.Contains(out, "initial and final state"))
		assert.Greater(t, len(strings.Split(out, "\n")), 10)
	}
	{
		assert.Equal(t, "", AsciiPlot("empty", 60, 10))
	}
}
