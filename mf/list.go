package mf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Budget is one volumetric-budget block from the solver listing: cumulative
// volumes and per-step rates for every named flow component, split by the
// IN/OUT sign convention. Step and Period are as printed (1-based).
type Budget struct {
	Step, Period     int
	VolIn, VolOut    map[string]float64
	RateIn, RateOut  map[string]float64
	TotVolIn         float64
	TotVolOut        float64
	TotRateIn        float64
	TotRateOut       float64
	VolDiscrepancy   float64 // percent
	RateDiscrepancy  float64 // percent
}

const budgetHeader = "VOLUMETRIC BUDGET FOR ENTIRE MODEL AT END OF TIME STEP"

// ReadList scans a listing file for volumetric-budget blocks, one per
// written (timestep, stress period).
func ReadList(fp string) ([]Budget, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var o []Budget
	var cur *Budget
	in := true
	s := newScn(f, fp)
	for {
		ln, ok := s.next()
		if !ok {
			break
		}
		t := strings.ToUpper(strings.TrimSpace(ln))
		switch {
		case strings.Contains(t, budgetHeader):
			if cur != nil {
				o = append(o, *cur)
			}
			b, err := newBudget(s, t)
			if err != nil {
				return nil, err
			}
			cur, in = b, true
		case cur == nil:
			continue
		case t == "IN:" || strings.HasPrefix(t, "IN:"):
			in = true
		case t == "OUT:" || strings.HasPrefix(t, "OUT:"):
			in = false
		case strings.Contains(t, "="):
			if err := budgetLine(s, cur, t, in); err != nil {
				return nil, err
			}
		}
	}
	if err := s.s.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		o = append(o, *cur)
	}
	if len(o) == 0 {
		return nil, fmt.Errorf("ReadList: %s: no volumetric budget found", fp)
	}
	return o, nil
}

func newBudget(s *scn, t string) (*Budget, error) {
	// "... AT END OF TIME STEP ks, STRESS PERIOD kp"
	sp := strings.Fields(strings.ReplaceAll(t, ",", " "))
	ints := make([]int, 0, 2)
	for _, v := range sp {
		if iv, err := strconv.Atoi(v); err == nil {
			ints = append(ints, iv)
		}
	}
	if len(ints) < 2 {
		return nil, s.perr(0, fmt.Errorf("cannot locate time step and stress period in budget header"))
	}
	return &Budget{
		Step: ints[0], Period: ints[1],
		VolIn: map[string]float64{}, VolOut: map[string]float64{},
		RateIn: map[string]float64{}, RateOut: map[string]float64{},
	}, nil
}

// budgetLine handles the two-column "NAME = vol NAME = rate" rows, the
// totals, and the discrepancy summary.
func budgetLine(s *scn, b *Budget, t string, in bool) error {
	sp := strings.Split(t, "=")
	if len(sp) != 3 {
		return nil // units banner or similar
	}
	nam1 := strings.TrimSpace(sp[0])
	mid := strings.Fields(sp[1])
	if len(mid) < 1 {
		return s.perr(0, fmt.Errorf("empty budget value for %q", nam1))
	}
	v1, err := strconv.ParseFloat(mid[0], 64)
	if err != nil {
		return s.perr(0, fmt.Errorf("%s: %v", nam1, err))
	}
	v2, err := strconv.ParseFloat(strings.TrimSpace(sp[2]), 64)
	if err != nil {
		return s.perr(0, fmt.Errorf("%s: %v", nam1, err))
	}

	switch {
	case nam1 == "TOTAL IN":
		b.TotVolIn, b.TotRateIn = v1, v2
	case nam1 == "TOTAL OUT":
		b.TotVolOut, b.TotRateOut = v1, v2
	case nam1 == "PERCENT DISCREPANCY":
		b.VolDiscrepancy, b.RateDiscrepancy = v1, v2
	case nam1 == "IN - OUT":
		// redundant with the totals
	case in:
		b.VolIn[nam1], b.RateIn[nam1] = v1, v2
	default:
		b.VolOut[nam1], b.RateOut[nam1] = v1, v2
	}
	return nil
}

// LastPerPeriod keeps the final written timestep of each stress period: the
// representative budget compared against coarser observed data.
func LastPerPeriod(bs []Budget) []Budget {
	var o []Budget
	for _, b := range bs {
		if n := len(o); n > 0 && o[n-1].Period == b.Period {
			o[n-1] = b
		} else {
			o = append(o, b)
		}
	}
	return o
}

// Rates extracts one component's per-block rate series; in selects the
// IN or OUT table. Absent components yield (nil, false).
func Rates(bs []Budget, nam string, in bool) ([]float64, bool) {
	nam = strings.ToUpper(nam)
	o, found := make([]float64, len(bs)), false
	for i, b := range bs {
		m := b.RateOut
		if in {
			m = b.RateIn
		}
		if v, ok := m[nam]; ok {
			o[i], found = v, true
		}
	}
	if !found {
		return nil, false
	}
	return o, true
}

// Net is a component's in-minus-out rate for one block.
func (b *Budget) Net(nam string) float64 {
	nam = strings.ToUpper(nam)
	return b.RateIn[nam] - b.RateOut[nam]
}
