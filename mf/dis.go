package mf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DIS is a structured-grid discretization file: grid shape, layer
// elevations and the stress-period/timestep schedule the rest of the
// pipeline keys on.
type DIS struct {
	Nlay, Nrow, Ncol, Nper int
	Itmuni, Lenuni         int
	Laycbd                 []int
	Delr, Delc, Top        []float64
	Botm                   [][]float64 // [layer][cell]
	Perlen, Tsmult         []float64
	Nstp                   []int
	Steady                 []bool // SS periods
}

func (d *DIS) Ncells() int { return d.Nrow * d.Ncol }

// TotalSteps is the number of transient output rows the schedule produces.
func (d *DIS) TotalSteps() int {
	n := 0
	for _, s := range d.Nstp {
		n += s
	}
	return n
}

func ReadDIS(fp string) (*DIS, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := newScn(f, fp)
	sp, ok := s.fields()
	if !ok || len(sp) < 6 {
		return nil, s.perr(0, fmt.Errorf("header needs NLAY NROW NCOL NPER ITMUNI LENUNI"))
	}
	var d DIS
	hdr := []*int{&d.Nlay, &d.Nrow, &d.Ncol, &d.Nper, &d.Itmuni, &d.Lenuni}
	for i, p := range hdr {
		if *p, err = strconv.Atoi(sp[i]); err != nil {
			return nil, s.perr(i+1, err)
		}
	}

	if d.Laycbd, err = readInts(s, d.Nlay); err != nil {
		return nil, err
	}
	if d.Delr, err = readArray(s, d.Ncol, "DELR"); err != nil {
		return nil, err
	}
	if d.Delc, err = readArray(s, d.Nrow, "DELC"); err != nil {
		return nil, err
	}
	if d.Top, err = readArray(s, d.Ncells(), "TOP"); err != nil {
		return nil, err
	}
	nbot := d.Nlay
	for _, c := range d.Laycbd {
		if c != 0 {
			nbot++ // confining beds carry their own bottom array
		}
	}
	d.Botm = make([][]float64, nbot)
	for i := range d.Botm {
		if d.Botm[i], err = readArray(s, d.Ncells(), fmt.Sprintf("BOTM(%d)", i+1)); err != nil {
			return nil, err
		}
	}

	d.Perlen, d.Tsmult = make([]float64, d.Nper), make([]float64, d.Nper)
	d.Nstp, d.Steady = make([]int, d.Nper), make([]bool, d.Nper)
	for i := 0; i < d.Nper; i++ {
		sp, ok := s.fields()
		if !ok || len(sp) < 4 {
			return nil, s.perr(0, fmt.Errorf("stress period %d needs PERLEN NSTP TSMULT SS/TR", i+1))
		}
		if d.Perlen[i], err = strconv.ParseFloat(sp[0], 64); err != nil {
			return nil, s.perr(1, err)
		}
		if d.Nstp[i], err = strconv.Atoi(sp[1]); err != nil {
			return nil, s.perr(2, err)
		}
		if d.Tsmult[i], err = strconv.ParseFloat(sp[2], 64); err != nil {
			return nil, s.perr(3, err)
		}
		d.Steady[i] = strings.EqualFold(sp[3], "SS")
	}
	return &d, nil
}

func readInts(s *scn, n int) ([]int, error) {
	o := make([]int, 0, n)
	for len(o) < n {
		sp, ok := s.fields()
		if !ok {
			return nil, &ShapeMismatch{File: s.fp, Nam: "LAYCBD", Want: n, Got: len(o)}
		}
		for _, v := range sp {
			iv, err := strconv.Atoi(v)
			if err != nil {
				return nil, s.perr(len(o)+1, err)
			}
			o = append(o, iv)
		}
	}
	if len(o) != n {
		return nil, &ShapeMismatch{File: s.fp, Nam: "LAYCBD", Want: n, Got: len(o)}
	}
	return o, nil
}

// readArray reads a 1- or 2-D real array with its control record:
// CONSTANT c, INTERNAL cnstnt (fmt) iprn, or OPEN/CLOSE fname. Free-format
// values may wrap over any number of lines but must total exactly n.
func readArray(s *scn, n int, nam string) ([]float64, error) {
	sp, ok := s.fields()
	if !ok {
		return nil, s.perr(0, fmt.Errorf("%s: missing array control record", nam))
	}
	switch strings.ToUpper(sp[0]) {
	case "CONSTANT":
		if len(sp) < 2 {
			return nil, s.perr(0, fmt.Errorf("%s: CONSTANT needs a value", nam))
		}
		c, err := strconv.ParseFloat(sp[1], 64)
		if err != nil {
			return nil, s.perr(2, err)
		}
		o := make([]float64, n)
		for i := range o {
			o[i] = c
		}
		return o, nil
	case "INTERNAL":
		cnstnt := 1.
		if len(sp) > 1 {
			c, err := strconv.ParseFloat(sp[1], 64)
			if err != nil {
				return nil, s.perr(2, err)
			}
			cnstnt = c
		}
		o := make([]float64, 0, n)
		for len(o) < n {
			vsp, ok := s.fields()
			if !ok {
				return nil, &ShapeMismatch{File: s.fp, Nam: nam, Want: n, Got: len(o)}
			}
			for _, v := range vsp {
				fv, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, s.perr(0, fmt.Errorf("%s: %v", nam, err))
				}
				o = append(o, fv*cnstnt)
			}
		}
		if len(o) != n {
			return nil, &ShapeMismatch{File: s.fp, Nam: nam, Want: n, Got: len(o)}
		}
		return o, nil
	case "OPEN/CLOSE":
		if len(sp) < 2 {
			return nil, s.perr(0, fmt.Errorf("%s: OPEN/CLOSE needs a file name", nam))
		}
		return readExternalArray(filepath.Join(filepath.Dir(s.fp), sp[1]), n, nam)
	}
	return nil, s.perr(1, fmt.Errorf("%s: unrecognized array control %q", nam, sp[0]))
}

func readExternalArray(fp string, n int, nam string) ([]float64, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s := newScn(f, fp)
	o := make([]float64, 0, n)
	for {
		sp, ok := s.fields()
		if !ok {
			break
		}
		for _, v := range sp {
			fv, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, s.perr(0, fmt.Errorf("%s: %v", nam, err))
			}
			o = append(o, fv)
		}
	}
	if len(o) != n {
		return nil, &ShapeMismatch{File: fp, Nam: nam, Want: n, Got: len(o)}
	}
	return o, nil
}
