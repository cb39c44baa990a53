package mm2019

import (
	"fmt"
	"math"
	"time"

	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

func dayDate(t time.Time) int64 {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
}

// MonthEnds returns n consecutive end-of-month anchors beginning with the
// month of t0.
func MonthEnds(t0 time.Time, n int) []time.Time {
	o := make([]time.Time, n)
	y, m := t0.Year(), t0.Month()
	for i := 0; i < n; i++ {
		o[i] = time.Date(y, m+time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	return o
}

// AtAnchors pins per-period aggregates to caller-supplied calendar anchors
// so that modelled and observed series share one time axis. Assignment is
// positional, one anchor per row; no interpolation.
func AtAnchors(v []float64, anchors []time.Time) (Series, error) {
	if len(v) != len(anchors) {
		return Series{}, fmt.Errorf("AtAnchors: %d values to %d anchors", len(v), len(anchors))
	}
	return NewSeries(anchors, v)
}

// Overlap pairs observed daily flows with a simulated series on the days
// both cover; sub-daily simulated values are averaged to daily. Days the
// observed record misses are dropped.
func Overlap(obs *ObsColl, sim Series) (dt []time.Time, o, s []float64) {
	sum, cnt := make(map[int64]float64, sim.Len()), make(map[int64]int, sim.Len())
	for i, t := range sim.T {
		dd := dayDate(t)
		sum[dd] += sim.V[i]
		cnt[dd]++
	}
	for i, t := range obs.T {
		dd := dayDate(t)
		if c, ok := cnt[dd]; ok {
			dt = append(dt, t)
			o = append(o, obs.V[i])
			s = append(s, sum[dd]/float64(c))
		}
	}
	return
}

// Fit holds goodness-of-fit statistics of a simulated series against an
// observed one.
type Fit struct {
	KGE, NSE, RMSE, Bias     float64
	MeanObs, SDObs           float64
	MeanSim, SDSim           float64
	N                        int
}

func NewFit(obs, sim []float64) Fit {
	mo, so := objfunc.Meansd(obs)
	ms, ss := objfunc.Meansd(sim)
	return Fit{
		KGE:     objfunc.KGE(obs, sim),
		NSE:     objfunc.NSE(obs, sim),
		RMSE:    objfunc.RMSE(obs, sim),
		Bias:    objfunc.Bias(obs, sim),
		MeanObs: mo, SDObs: so,
		MeanSim: ms, SDSim: ss,
		N: len(obs),
	}
}

func (f Fit) Print() {
	fmt.Printf("  n: %d  mean(obs): %.3f  mean(sim): %.3f\n", f.N, f.MeanObs, f.MeanSim)
	fmt.Printf("  KGE: %.3f  NSE: %.3f  RMSE: %.3f  Bias: %.3f\n", f.KGE, f.NSE, f.RMSE, f.Bias)
}

// MonthlySums pools a paired daily record to year-month sums, dropping any
// month either side is missing. cf converts summed daily flows to the
// reporting unit (e.g. ts*1000/ca for mm/mo).
func MonthlySums(dt []time.Time, o, s []float64, cf float64) ([]float64, []float64) {
	tso, tss := make(mmio.TimeSeries, len(dt)), make(mmio.TimeSeries, len(dt))
	for i, d := range dt {
		if math.IsNaN(o[i]) || math.IsNaN(s[i]) {
			continue
		}
		tso[d] = o[i]
		tss[d] = s[i]
	}
	os, _ := mmio.MonthlySumCount(tso)
	ss, _ := mmio.MonthlySumCount(tss)
	dn, dx := mmio.MinMaxTimeseries(tso)
	i := 0
	osi, ssi := make([]float64, len(os)*12), make([]float64, len(ss)*12)
	for y := mmio.Yr(dn.Year()); y <= mmio.Yr(dx.Year()); y++ {
		for m := mmio.Mo(1); m <= 12; m++ {
			if v, ok := os[y][m]; ok {
				sv, ok := ss[y][m]
				if !ok || math.IsNaN(v) || math.IsNaN(sv) {
					continue
				}
				osi[i] = v * cf
				ssi[i] = sv * cf
				i++
			}
		}
	}
	return osi[:i], ssi[:i]
}
