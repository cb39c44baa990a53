package mf

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// Hyd is a HYDMOD binary hydrograph file: a label per observation point and
// one record of (TOTIM, values...) per output timestep. A negative item
// count flags a double-precision file.
type Hyd struct {
	Labels []string
	Itmuni int
	Totim  []float64
	V      [][]float64 // [timestep][point]
}

// HydOutUnit reads a HYDMOD package file for IHYDUN, the unit its binary
// output is written to.
func HydOutUnit(fp string) (int, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return 0, err
	}
	for i, ln := range lns {
		t := strings.TrimSpace(ln)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		sp := strings.Fields(t)
		if len(sp) < 2 {
			return 0, &ParseError{File: fp, Line: i + 1, Err: fmt.Errorf("header needs NHYD IHYDUN")}
		}
		u, err := strconv.Atoi(sp[1])
		if err != nil {
			return 0, &ParseError{File: fp, Line: i + 1, Col: 2, Err: err}
		}
		return u, nil
	}
	return 0, fmt.Errorf("HydOutUnit: %s: empty file", fp)
}

func ReadHyd(fp string) (*Hyd, error) {
	b := mmio.OpenBinary(fp)

	var nhyd, itmuni int32
	if err := binary.Read(b, binary.LittleEndian, &nhyd); err != nil {
		return nil, fmt.Errorf("ReadHyd: %s: %v", fp, err)
	}
	if err := binary.Read(b, binary.LittleEndian, &itmuni); err != nil {
		return nil, fmt.Errorf("ReadHyd: %s: %v", fp, err)
	}
	dbl := nhyd < 0
	if dbl {
		nhyd = -nhyd
	}
	if nhyd == 0 {
		return nil, fmt.Errorf("ReadHyd: %s: no hydrograph points", fp)
	}

	h := Hyd{Itmuni: int(itmuni), Labels: make([]string, nhyd)}
	lbl := make([]byte, 20)
	for i := range h.Labels {
		if err := binary.Read(b, binary.LittleEndian, lbl); err != nil {
			return nil, fmt.Errorf("ReadHyd: %s: label %d: %v", fp, i+1, err)
		}
		h.Labels[i] = strings.TrimSpace(string(lbl))
	}

	read := func(out []float64) error { // one record: TOTIM then nhyd values
		if dbl {
			rec := make([]float64, nhyd+1)
			if err := binary.Read(b, binary.LittleEndian, rec); err != nil {
				return err
			}
			copy(out, rec)
			return nil
		}
		rec := make([]float32, nhyd+1)
		if err := binary.Read(b, binary.LittleEndian, rec); err != nil {
			return err
		}
		for i, v := range rec {
			out[i] = float64(v)
		}
		return nil
	}

	for {
		rec := make([]float64, nhyd+1)
		if err := read(rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("ReadHyd: %s: record %d: %v", fp, len(h.Totim)+1, err)
		}
		h.Totim = append(h.Totim, rec[0])
		h.V = append(h.V, rec[1:])
	}
	return &h, nil
}

// Point extracts one labelled point's series; false when the label is
// absent.
func (h *Hyd) Point(label string) ([]float64, bool) {
	for j, l := range h.Labels {
		if l == label {
			o := make([]float64, len(h.V))
			for i, rec := range h.V {
				o[i] = rec[j]
			}
			return o, true
		}
	}
	return nil, false
}
