package mf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Gage is one gage-file record: simulated stage and flow per output
// timestep, keyed by elapsed time in the model's time unit. Columns beyond
// the third (depth, width, ...) are ignored.
type Gage struct {
	Time, Stage, Flow []float64
}

// GageUnits reads a GAGE package file for the output unit number of each
// gage; the records themselves land on files bound to those units in the
// name file. Negative units (binary-output flag) are returned positive.
func GageUnits(fp string) ([]int, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := newScn(f, fp)
	sp, ok := s.fields()
	if !ok {
		return nil, s.perr(0, fmt.Errorf("empty gage package file"))
	}
	numgage, err := strconv.Atoi(sp[0])
	if err != nil {
		return nil, s.perr(1, err)
	}
	units := make([]int, 0, numgage)
	for i := 0; i < numgage; i++ {
		sp, ok := s.fields()
		if !ok {
			return nil, s.perr(0, fmt.Errorf("gage %d of %d missing", i+1, numgage))
		}
		iu := 2 // stream gage: GAGESEG GAGERCH UNIT OUTTYPE
		if strings.HasPrefix(sp[0], "-") {
			iu = 1 // lake gage: -LAKE UNIT {OUTTYPE}
		}
		if len(sp) <= iu {
			return nil, s.perr(0, fmt.Errorf("gage %d: %d fields, need %d", i+1, len(sp), iu+1))
		}
		u, err := strconv.Atoi(sp[iu])
		if err != nil {
			return nil, s.perr(iu+1, err)
		}
		if u < 0 {
			u = -u
		}
		units = append(units, u)
	}
	return units, nil
}

func ReadGage(fp string) (*Gage, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var g Gage
	s := newScn(f, fp)
	for {
		ln, ok := s.next()
		if !ok {
			break
		}
		if strings.HasPrefix(strings.TrimSpace(ln), `"`) {
			continue // header lines are double-quoted
		}
		sp := strings.Fields(ln)
		if len(sp) < 3 {
			return nil, s.perr(0, fmt.Errorf("gage row needs TIME STAGE FLOW, found %d fields", len(sp)))
		}
		row := make([]float64, 3)
		for i := 0; i < 3; i++ {
			if row[i], err = strconv.ParseFloat(sp[i], 64); err != nil {
				return nil, s.perr(i+1, err)
			}
		}
		g.Time = append(g.Time, row[0])
		g.Stage = append(g.Stage, row[1])
		g.Flow = append(g.Flow, row[2])
	}
	if err := s.s.Err(); err != nil {
		return nil, err
	}
	return &g, nil
}
