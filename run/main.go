package main

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/goHydro/grid"
	mmplt "github.com/maseology/mmPlot"
	"github.com/maseology/mmio"

	mm2019 "github.com/mcekiz/MM2019-FloPy"
	"github.com/mcekiz/MM2019-FloPy/mf"
	"github.com/mcekiz/MM2019-FloPy/opt"
)

const cfgFp = "mm2019.yaml"

func main() {

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\npost-processing complete")

	cfg, err := mm2019.LoadConfig(cfgFp)
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	st, err := cfg.SimTime()
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	mmio.MakeDir(cfg.OutDir)

	// model definition
	nam, err := mf.ReadNam(cfg.NamFile)
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	disfp, ok := nam.File("DIS")
	if !ok {
		log.Fatalf("Fatal error: no DIS package in %s", cfg.NamFile)
	}
	dis, err := mf.ReadDIS(disfp)
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	fmt.Printf(" grid: %d layers, %d rows, %d columns; %d stress periods (%d timesteps)\n",
		dis.Nlay, dis.Nrow, dis.Ncol, dis.Nper, dis.TotalSteps())
	if lat, lng, err := cfg.Stn.LatLon(); err == nil {
		fmt.Printf(" gage station %s: (%.5f, %.5f), SFR segment %d\n", cfg.Stn.Nam, lat, lng, cfg.Stn.Segment)
	}

	// run the solver
	if cfg.Exe != "" {
		if err := mm2019.RunSolver(cfg.Exe, cfg.NamFile, cfg.Wd); err != nil {
			log.Fatalf("Fatal error: %v", err)
		}
		tt.Print("solver complete")
	}

	// mass-balance listing
	lstfp, ok := nam.File("LIST")
	if !ok {
		log.Fatalf("Fatal error: no LIST package in %s", cfg.NamFile)
	}
	buds, err := mf.ReadList(lstfp)
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	perbuds := mf.LastPerPeriod(buds)
	fmt.Printf(" %d budget blocks (%d stress periods); final percent discrepancy: %.2f\n",
		len(buds), len(perbuds), buds[len(buds)-1].RateDiscrepancy)
	plotBudget(cfg.OutDir+"budget.png", perbuds)

	// gage flows to calendar time, compared against observed
	simFlow, gage := gageSeries(nam, st, cfg.FlowConv)

	// one gage row per transient timestep; tag by the DIS schedule and keep
	// each period's final step
	if tags := mm2019.StepIndex(dis.Nstp); len(tags) == len(gage.Flow) {
		pers, pv := mm2019.LastSteps(tags, gage.Flow)
		pg, err := mm2019.AtAnchors(pv, mm2019.MonthEnds(st.T0, len(pers)))
		if err != nil {
			log.Fatalf("Fatal error: %v", err)
		}
		pg = pg.Scale(1. / cfg.FlowConv)
		mmio.WriteCsvDateFloats(cfg.OutDir+"flowperiod.csv", "date,flow", pg.T, pg.V)
	} else {
		fmt.Printf("  note: %d gage rows for %d scheduled timesteps, skipping per-period extraction\n", len(gage.Flow), len(tags))
	}
	obs, err := mm2019.CollectObservations(cfg.Obs, cfg.OutDir)
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	dts, o, s := mm2019.Overlap(obs, simFlow)
	if len(dts) == 0 {
		log.Fatalf("Fatal error: no overlap between observed and simulated records")
	}
	fit := mm2019.NewFit(o, s)
	fit.Print()
	mm2019.PlotHydrograph(cfg.OutDir+"hyd.png", dts, o, s)
	mm2019.PlotScatter(cfg.OutDir+"hyd11.png", o, s)

	mso, mss := mm2019.MonthlySums(dts, o, s, 1.)
	mm2019.PlotScatter(cfg.OutDir+"monthly.png", mso, mss)

	scale, offset, rmse := opt.FitScale(o, s)
	fmt.Printf("  bias correction: sim*%.3f%+.3f (RMSE %.3f)\n", scale, offset, rmse)

	// low-flow months
	mlf := mm2019.MonthlyMeansBelow(simFlow, cfg.LowFlowQ)
	mons := make([]int, 0, len(mlf))
	for m := range mlf {
		mons = append(mons, int(m))
	}
	sort.Ints(mons)
	fmt.Printf("  mean simulated flow below the %.2f quantile [m³/s]:\n", cfg.LowFlowQ)
	for _, m := range mons {
		fmt.Printf("%12s%10.4f\n", time.Month(m), mlf[time.Month(m)])
	}

	// head hydrographs
	plotHeads(nam, cfg.OutDir)
	tt.Print("hydrographs collected")

	// stream-aquifer exchange
	sfrOut(nam, dis, cfg, st)
}

// gageSeries converts the first gage's output to a calendar series in m³/s.
func gageSeries(nam *mf.Nam, st mm2019.SimTime, flowconv float64) (mm2019.Series, *mf.Gage) {
	gpkg, ok := nam.File("GAGE")
	if !ok {
		log.Fatalf("Fatal error: no GAGE package")
	}
	units, err := mf.GageUnits(gpkg)
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	if len(units) == 0 {
		log.Fatalf("Fatal error: %s: no gages", gpkg)
	}
	gfp, ok := nam.ByUnit(units[0])
	if !ok {
		log.Fatalf("Fatal error: gage unit %d not bound in name file", units[0])
	}
	g, err := mf.ReadGage(gfp)
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	ss, err := st.Series(g.Time, g.Flow)
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	return ss.Scale(1. / flowconv), g
}

func plotBudget(fp string, perbuds []mf.Budget) {
	x := make([]float64, len(perbuds))
	for i, b := range perbuds {
		x[i] = float64(b.Period)
	}
	ys := make(map[string][]float64)
	for _, nam := range []string{"RECHARGE", "WELLS", "STREAM LEAKAGE", "STORAGE"} {
		in, iok := mf.Rates(perbuds, nam, true)
		out, ook := mf.Rates(perbuds, nam, false)
		if !iok && !ook {
			continue
		}
		net := make([]float64, len(perbuds))
		for i := range net {
			if iok {
				net[i] = in[i]
			}
			if ook {
				net[i] -= out[i]
			}
		}
		ys[nam] = net
	}
	mm2019.PlotComponents(fp, x, ys)
}

func plotHeads(nam *mf.Nam, odir string) {
	hpkg, ok := nam.File("HYD")
	if !ok {
		return
	}
	unit, err := mf.HydOutUnit(hpkg)
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	hfp, ok := nam.ByUnit(unit)
	if !ok {
		log.Fatalf("Fatal error: hydmod unit %d not bound in name file", unit)
	}
	h, err := mf.ReadHyd(hfp)
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	ys := make(map[string][]float64, len(h.Labels))
	for _, lbl := range h.Labels {
		ys[lbl], _ = h.Point(lbl)
	}
	mmplt.Line(odir+"heads.png", h.Totim, ys, 48., 24.)
}

// sfrOut collects per-period stream-to-aquifer loss at the gaged segment
// and exports the final-step exchange grid.
func sfrOut(nam *mf.Nam, dis *mf.DIS, cfg *mm2019.Config, st mm2019.SimTime) {
	spkg, ok := nam.File("SFR")
	if !ok {
		return
	}
	unit, writes, err := mf.SFROutUnit(spkg)
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	if !writes {
		return
	}
	sfp, ok := nam.ByUnit(unit)
	if !ok {
		log.Fatalf("Fatal error: sfr unit %d not bound in name file", unit)
	}
	sfr, err := mf.ReadSFR(sfp)
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	steps := sfr.Steps()

	uiprogress.Start()
	lbl := make(chan string)
	bar := uiprogress.AddBar(len(steps)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-lbl
	})
	loss := make([]float64, len(steps))
	for i, sp := range steps {
		lbl <- fmt.Sprintf("per %3d stp %3d", sp.Period, sp.Step)
		for _, r := range sfr.Seg(sp, cfg.Stn.Segment) {
			loss[i] += r.Qaquifer
		}
		bar.Incr()
	}
	close(lbl)
	uiprogress.Stop()

	// one representative value per period, pinned to end-of-month anchors
	// (stress periods are monthly in this model)
	tags := make([]mm2019.PerStep, len(steps))
	for i, sp := range steps {
		tags[i] = mm2019.PerStep{Per: sp.Period - 1, Stp: sp.Step - 1}
	}
	pers, perloss := mm2019.LastSteps(tags, loss)
	ls, err := mm2019.AtAnchors(perloss, mm2019.MonthEnds(st.T0, len(pers)))
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	ls = ls.Scale(1. / cfg.FlowConv)
	mmio.WriteCsvDateFloats(cfg.OutDir+"sfrloss.csv", "date,loss", ls.T, ls.V)

	g, err := sfr.LossGrid(steps[len(steps)-1], dis.Nrow, dis.Ncol)
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	if cfg.Gdef != "" {
		gd, err := grid.ReadGDEF(cfg.Gdef, true)
		if err != nil {
			log.Fatalf("Fatal error: read failed: %v", err)
		}
		if err := mf.WriteLossGrid(cfg.OutDir+"sfrloss.bil", gd, g); err != nil {
			log.Fatalf("Fatal error: %v", err)
		}
	}
}
