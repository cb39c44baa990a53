package mf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeHydBin(t *testing.T, nhyd int32, labels []string, recs [][]float64, dbl bool) string {
	t.Helper()
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, nhyd)
	binary.Write(buf, binary.LittleEndian, int32(4)) // ITMUNI: days
	for _, l := range labels {
		binary.Write(buf, binary.LittleEndian, []byte(fmt.Sprintf("%-20s", l)))
	}
	for _, r := range recs {
		if dbl {
			binary.Write(buf, binary.LittleEndian, r)
		} else {
			f32 := make([]float32, len(r))
			for i, v := range r {
				f32[i] = float32(v)
			}
			binary.Write(buf, binary.LittleEndian, f32)
		}
	}
	fp := filepath.Join(t.TempDir(), "mm2019.hyd.bin")
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fp
}

func TestReadHyd(t *testing.T) {
	fp := writeHydBin(t, 2, []string{"HDI01_042_023", "HDI01_050_011"}, [][]float64{
		{1., 187.25, 190.5},
		{2., 187.21, 190.4},
		{2.5, 187.2, 190.33},
	}, false)
	h, err := ReadHyd(fp)
	if err != nil {
		t.Fatalf("ReadHyd: %v", err)
	}
	if h.Itmuni != 4 {
		t.Fatalf("itmuni = %d", h.Itmuni)
	}
	if len(h.Labels) != 2 || h.Labels[0] != "HDI01_042_023" {
		t.Fatalf("labels = %v", h.Labels)
	}
	if len(h.Totim) != 3 || h.Totim[2] != 2.5 {
		t.Fatalf("totim = %v", h.Totim)
	}
	p, ok := h.Point("HDI01_050_011")
	if !ok || len(p) != 3 {
		t.Fatalf("Point: %v (%v)", p, ok)
	}
	if math.Abs(p[1]-190.4) > 1e-4 { // single precision on disk
		t.Fatalf("p[1] = %v", p[1])
	}
	if _, ok := h.Point("HDI01_999_999"); ok {
		t.Fatalf("absent label should return ok=false")
	}
}

func TestReadHydDouble(t *testing.T) {
	// negative item count flags a double-precision file
	fp := writeHydBin(t, -1, []string{"HDI01_042_023"}, [][]float64{
		{59.5, 187.123456789},
	}, true)
	h, err := ReadHyd(fp)
	if err != nil {
		t.Fatalf("ReadHyd: %v", err)
	}
	if len(h.Labels) != 1 || len(h.V) != 1 {
		t.Fatalf("unexpected shape: %v %v", h.Labels, h.V)
	}
	if h.V[0][0] != 187.123456789 {
		t.Fatalf("double-precision value = %v", h.V[0][0])
	}
}
