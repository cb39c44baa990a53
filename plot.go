package mm2019

import (
	"time"

	mmplt "github.com/maseology/mmPlot"
	"github.com/maseology/mmio"
)

// chart emission; every figure gets a csv twin for inspection

func PlotHydrograph(fp string, dt []time.Time, obs, sim []float64) {
	mmio.WriteCsvDateFloats(mmio.RemoveExtension(fp)+".csv", "date,obs,sim", dt, obs, sim)
	mmplt.ObsSim(fp, obs, sim)
}

func PlotScatter(fp string, obs, sim []float64) {
	mmplt.Scatter11(fp, obs, sim)
}

// PlotComponents draws named series (e.g. budget components per stress
// period) on a shared x-axis.
func PlotComponents(fp string, x []float64, ys map[string][]float64) {
	mmplt.Line(fp, x, ys, 48., 24.)
}
