package mf

import (
	"errors"
	"testing"
)

const disSmall = `# MM2019 discretization
 1  2  3  2  4  2
 0
CONSTANT  250.
CONSTANT  250.
INTERNAL  1.0  (FREE)  -1
 10. 11. 12.
 13. 14. 15.
CONSTANT  -50.
 365.  2  1.0  TR
 365.  3  1.2  TR
`

func TestReadDIS(t *testing.T) {
	d, err := ReadDIS(writeTemp(t, "mm2019.dis", disSmall))
	if err != nil {
		t.Fatalf("ReadDIS: %v", err)
	}
	if d.Nlay != 1 || d.Nrow != 2 || d.Ncol != 3 || d.Nper != 2 {
		t.Fatalf("shape = %d %d %d %d", d.Nlay, d.Nrow, d.Ncol, d.Nper)
	}
	if d.Itmuni != 4 || d.Lenuni != 2 {
		t.Fatalf("units = %d %d", d.Itmuni, d.Lenuni)
	}
	if len(d.Delr) != 3 || d.Delr[0] != 250. {
		t.Fatalf("delr = %v", d.Delr)
	}
	if len(d.Top) != 6 || d.Top[5] != 15. {
		t.Fatalf("top = %v", d.Top)
	}
	if len(d.Botm) != 1 || d.Botm[0][0] != -50. {
		t.Fatalf("botm = %v", d.Botm)
	}
	if d.Nstp[0] != 2 || d.Nstp[1] != 3 || d.TotalSteps() != 5 {
		t.Fatalf("nstp = %v", d.Nstp)
	}
	if d.Steady[0] || d.Steady[1] {
		t.Fatalf("both periods are transient")
	}
}

func TestReadDISShapeMismatch(t *testing.T) {
	bad := `# truncated TOP array
 1  2  3  1  4  2
 0
CONSTANT  250.
CONSTANT  250.
INTERNAL  1.0  (FREE)  -1
 10. 11. 12. 13.
CONSTANT  -50.
 365.  2  1.0  TR
`
	// the short INTERNAL block runs into the next control record
	_, err := ReadDIS(writeTemp(t, "bad.dis", bad))
	if err == nil {
		t.Fatalf("expected error on truncated array")
	}
}

func TestReadDISMultiplier(t *testing.T) {
	src := `# multiplier applies to all internal values
 1  1  2  1  4  2
 0
CONSTANT  1.
CONSTANT  1.
INTERNAL  2.0  (FREE)  -1
 5. 6.
CONSTANT  0.
 1.  1  1.0  SS
`
	d, err := ReadDIS(writeTemp(t, "m.dis", src))
	if err != nil {
		t.Fatalf("ReadDIS: %v", err)
	}
	if d.Top[0] != 10. || d.Top[1] != 12. {
		t.Fatalf("top = %v", d.Top)
	}
	if !d.Steady[0] {
		t.Fatalf("period 1 is steady state")
	}
}

func TestShapeMismatchError(t *testing.T) {
	var sm error = &ShapeMismatch{File: "x.dis", Nam: "TOP", Want: 6, Got: 4}
	var tgt *ShapeMismatch
	if !errors.As(sm, &tgt) {
		t.Fatalf("errors.As failed")
	}
	if tgt.Want != 6 {
		t.Fatalf("want = %d", tgt.Want)
	}
}
