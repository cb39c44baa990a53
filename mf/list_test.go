package mf

import "testing"

const lstExcerpt = `                                    MODFLOW-NWT
 Solving:  Stress period:     1    Time step:     1

  VOLUMETRIC BUDGET FOR ENTIRE MODEL AT END OF TIME STEP    1, STRESS PERIOD    1
  ------------------------------------------------------------------------------

     CUMULATIVE VOLUMES      L**3       RATES FOR THIS TIME STEP      L**3/T

           IN:                                      IN:
           ---                                      ---
            RECHARGE =      500.0000                RECHARGE =       50.0000

            TOTAL IN =      500.0000                TOTAL IN =       50.0000

          OUT:                                     OUT:
          ----                                     ----
               WELLS =      400.0000                   WELLS =       40.0000

           TOTAL OUT =      400.0000               TOTAL OUT =       40.0000

            IN - OUT =      100.0000                IN - OUT =       10.0000

 PERCENT DISCREPANCY =           0.02     PERCENT DISCREPANCY =           0.02

  VOLUMETRIC BUDGET FOR ENTIRE MODEL AT END OF TIME STEP    2, STRESS PERIOD    1
  ------------------------------------------------------------------------------

     CUMULATIVE VOLUMES      L**3       RATES FOR THIS TIME STEP      L**3/T

           IN:                                      IN:
           ---                                      ---
             STORAGE =      112.5000                 STORAGE =        5.2500
       CONSTANT HEAD =        0.0000           CONSTANT HEAD =        0.0000
            RECHARGE =     1000.0000                RECHARGE =       50.0000
      STREAM LEAKAGE =      200.0000          STREAM LEAKAGE =       10.0000

            TOTAL IN =     1312.5000                TOTAL IN =       65.2500

          OUT:                                     OUT:
          ----                                     ----
             STORAGE =      300.0000                 STORAGE =       15.0000
               WELLS =      800.0000                   WELLS =       40.0000
      STREAM LEAKAGE =      212.0000          STREAM LEAKAGE =       10.2000

           TOTAL OUT =     1312.0000               TOTAL OUT =       65.2000

            IN - OUT =        0.5000                IN - OUT =        0.0500

 PERCENT DISCREPANCY =           0.04     PERCENT DISCREPANCY =           0.08

  VOLUMETRIC BUDGET FOR ENTIRE MODEL AT END OF TIME STEP    1, STRESS PERIOD    2
  ------------------------------------------------------------------------------

     CUMULATIVE VOLUMES      L**3       RATES FOR THIS TIME STEP      L**3/T

           IN:                                      IN:
           ---                                      ---
            RECHARGE =     1600.0000                RECHARGE =       60.0000

            TOTAL IN =     1600.0000                TOTAL IN =       60.0000

          OUT:                                     OUT:
          ----                                     ----
               WELLS =     1500.0000                   WELLS =       45.0000

           TOTAL OUT =     1500.0000               TOTAL OUT =       45.0000

            IN - OUT =      100.0000                IN - OUT =       15.0000

 PERCENT DISCREPANCY =           0.11     PERCENT DISCREPANCY =           0.15
`

func TestReadList(t *testing.T) {
	bs, err := ReadList(writeTemp(t, "mm2019.lst", lstExcerpt))
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	if len(bs) != 3 {
		t.Fatalf("expected 3 budget blocks, got %d", len(bs))
	}
	b := bs[1]
	if b.Step != 2 || b.Period != 1 {
		t.Fatalf("block 2 = step %d period %d", b.Step, b.Period)
	}
	if b.RateIn["RECHARGE"] != 50. || b.VolIn["RECHARGE"] != 1000. {
		t.Fatalf("recharge = %v / %v", b.RateIn["RECHARGE"], b.VolIn["RECHARGE"])
	}
	if b.RateOut["WELLS"] != 40. {
		t.Fatalf("wells out = %v", b.RateOut["WELLS"])
	}
	if b.Net("STREAM LEAKAGE") != 10.-10.2 {
		t.Fatalf("net stream leakage = %v", b.Net("STREAM LEAKAGE"))
	}
	if b.TotRateIn != 65.25 || b.TotVolOut != 1312. {
		t.Fatalf("totals = %v %v", b.TotRateIn, b.TotVolOut)
	}
	if b.RateDiscrepancy != .08 || b.VolDiscrepancy != .04 {
		t.Fatalf("discrepancy = %v %v", b.RateDiscrepancy, b.VolDiscrepancy)
	}
}

func TestLastPerPeriod(t *testing.T) {
	bs, err := ReadList(writeTemp(t, "mm2019.lst", lstExcerpt))
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	pb := LastPerPeriod(bs)
	if len(pb) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(pb))
	}
	if pb[0].Step != 2 || pb[0].Period != 1 || pb[1].Period != 2 {
		t.Fatalf("unexpected selection: %+v", pb)
	}
}

func TestRates(t *testing.T) {
	bs, _ := ReadList(writeTemp(t, "mm2019.lst", lstExcerpt))
	pb := LastPerPeriod(bs)
	rch, ok := Rates(pb, "recharge", true)
	if !ok || len(rch) != 2 || rch[0] != 50. || rch[1] != 60. {
		t.Fatalf("recharge rates = %v (%v)", rch, ok)
	}
	if _, ok := Rates(pb, "EVAPOTRANSPIRATION", false); ok {
		t.Fatalf("absent component should return ok=false")
	}
}
