package mf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/maseology/goHydro/grid"
)

// StepPeriod keys streamflow-routing output by printed (1-based) timestep
// and stress period.
type StepPeriod struct{ Step, Period int }

// Reach is one stream reach's exchange record for a single timestep: flows
// are in model units; Qaquifer is positive for stream-to-aquifer loss.
type Reach struct {
	Lay, Row, Col, Seg, Rch        int
	Qin, Qaquifer, Qout, Qovr, Qet float64
}

// SFR holds streamflow-routing output grouped by (timestep, stress period).
type SFR struct {
	recs map[StepPeriod][]Reach
}

const sfrHeader = "STREAM LISTING"

// SFROutUnit reads an SFR package file for ISTCB2, the unit reach records
// are written to; (0, false) when the package does not write them.
func SFROutUnit(fp string) (int, bool, error) {
	f, err := os.Open(fp)
	if err != nil {
		return 0, false, err
	}
	defer f.Close()

	s := newScn(f, fp)
	for {
		sp, ok := s.fields()
		if !ok {
			return 0, false, fmt.Errorf("SFROutUnit: %s: no item-1 record", fp)
		}
		if strings.HasPrefix(strings.ToUpper(sp[0]), "REACH") || strings.HasPrefix(strings.ToUpper(sp[0]), "OPTIONS") {
			continue // MF-2005 option records precede item 1
		}
		// item 1: NSTRM NSS NSFRPAR NPARSEG CONST DLEAK ISTCB1 ISTCB2 ...
		if len(sp) < 8 {
			return 0, false, s.perr(0, fmt.Errorf("item 1 needs 8 fields, found %d", len(sp)))
		}
		u, err := strconv.Atoi(sp[7])
		if err != nil {
			return 0, false, s.perr(8, err)
		}
		return u, u > 0, nil
	}
}

func ReadSFR(fp string) (*SFR, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	o := SFR{recs: map[StepPeriod][]Reach{}}
	var cur StepPeriod
	have := false
	s := newScn(f, fp)
	for {
		ln, ok := s.next()
		if !ok {
			break
		}
		t := strings.ToUpper(strings.TrimSpace(ln))
		if strings.Contains(t, sfrHeader) {
			sp, err := sfrBlock(s, t)
			if err != nil {
				return nil, err
			}
			cur, have = sp, true
			continue
		}
		if !have {
			continue
		}
		sp := strings.Fields(t)
		if len(sp) < 10 {
			continue // column headers and unit banners
		}
		if _, err := strconv.Atoi(sp[0]); err != nil {
			continue
		}
		r, err := sfrRow(s, sp)
		if err != nil {
			return nil, err
		}
		o.recs[cur] = append(o.recs[cur], r)
	}
	if err := s.s.Err(); err != nil {
		return nil, err
	}
	if len(o.recs) == 0 {
		return nil, fmt.Errorf("ReadSFR: %s: no stream listing found", fp)
	}
	return &o, nil
}

func sfrBlock(s *scn, t string) (StepPeriod, error) {
	sp := strings.Fields(strings.ReplaceAll(t, ",", " "))
	ints := make([]int, 0, 2)
	for _, v := range sp {
		if iv, err := strconv.Atoi(v); err == nil {
			ints = append(ints, iv)
		}
	}
	if len(ints) < 2 {
		return StepPeriod{}, s.perr(0, fmt.Errorf("cannot locate period and step in stream listing header"))
	}
	// header prints PERIOD before STEP
	return StepPeriod{Step: ints[1], Period: ints[0]}, nil
}

// sfrRow parses "LAY ROW COL SEG RCH QIN QAQ QOUT QOVR QPPT QET ..."; the
// first ten columns are required.
func sfrRow(s *scn, sp []string) (Reach, error) {
	var r Reach
	iptr := []*int{&r.Lay, &r.Row, &r.Col, &r.Seg, &r.Rch}
	for i, p := range iptr {
		v, err := strconv.Atoi(sp[i])
		if err != nil {
			return r, s.perr(i+1, err)
		}
		*p = v
	}
	fptr := []*float64{&r.Qin, &r.Qaquifer, &r.Qout, &r.Qovr}
	for i, p := range fptr {
		v, err := strconv.ParseFloat(sp[i+5], 64)
		if err != nil {
			return r, s.perr(i+6, err)
		}
		*p = v
	}
	v, err := strconv.ParseFloat(sp[len(sp)-1], 64) // ET is the trailing column in either layout
	if err != nil {
		return r, s.perr(len(sp), err)
	}
	r.Qet = v
	return r, nil
}

// Steps lists the written (timestep, period) keys in simulation order.
func (s *SFR) Steps() []StepPeriod {
	o := make([]StepPeriod, 0, len(s.recs))
	for k := range s.recs {
		o = append(o, k)
	}
	sort.Slice(o, func(i, j int) bool {
		if o[i].Period != o[j].Period {
			return o[i].Period < o[j].Period
		}
		return o[i].Step < o[j].Step
	})
	return o
}

// Get returns all reach records for one output step.
func (s *SFR) Get(sp StepPeriod) []Reach { return s.recs[sp] }

// Seg filters one output step to a single segment; an absent segment id
// returns an empty slice, not an error.
func (s *SFR) Seg(sp StepPeriod, seg int) []Reach {
	var o []Reach
	for _, r := range s.recs[sp] {
		if r.Seg == seg {
			o = append(o, r)
		}
	}
	return o
}

// LossGrid rasterizes stream-to-aquifer loss for one output step onto the
// model grid, NaN where no reach sits. Rows/cols are 1-based in the file.
func (s *SFR) LossGrid(sp StepPeriod, nrow, ncol int) ([]float64, error) {
	o := make([]float64, nrow*ncol)
	for i := range o {
		o[i] = math.NaN()
	}
	for _, r := range s.recs[sp] {
		if r.Row < 1 || r.Row > nrow || r.Col < 1 || r.Col > ncol {
			return nil, &ShapeMismatch{Nam: fmt.Sprintf("SFR reach (%d,%d)", r.Row, r.Col), Want: nrow * ncol, Got: (r.Row-1)*ncol + r.Col}
		}
		cid := (r.Row-1)*ncol + r.Col - 1
		if math.IsNaN(o[cid]) {
			o[cid] = 0.
		}
		o[cid] += r.Qaquifer
	}
	return o, nil
}

// WriteLossGrid exports a rasterized grid against a grid definition as
// float32 raster with sidecar header.
func WriteLossGrid(fp string, gd *grid.Definition, g []float64) error {
	if len(g) != gd.Ncells() {
		return &ShapeMismatch{File: fp, Nam: "loss grid", Want: gd.Ncells(), Got: len(g)}
	}
	f32 := make([]float32, len(g))
	for i, v := range g {
		if math.IsNaN(v) {
			f32[i] = -9999.
			continue
		}
		f32[i] = float32(v)
	}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("WriteLossGrid: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("WriteLossGrid: %v", err)
	}
	if err := gd.ToHDR(fp+".hdr", 1, 32); err != nil {
		return fmt.Errorf("WriteLossGrid: %v", err)
	}
	return nil
}
