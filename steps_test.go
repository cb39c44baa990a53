package mm2019

import "testing"

func TestStepIndex(t *testing.T) {
	got := StepIndex([]int{2, 3})
	want := []PerStep{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("StepIndex([2,3]) returned %d rows, want %d", len(got), len(want))
	}
	for i, ps := range want {
		if got[i] != ps {
			t.Fatalf("row %d = %v, want %v", i, got[i], ps)
		}
	}
}

func TestStepIndexZeroStepPeriod(t *testing.T) {
	got := StepIndex([]int{2, 0, 3})
	want := []PerStep{{0, 0}, {0, 1}, {2, 0}, {2, 1}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("returned %d rows, want %d", len(got), len(want))
	}
	for i, ps := range want {
		if got[i] != ps {
			t.Fatalf("row %d = %v, want %v", i, got[i], ps)
		}
	}
}

func TestStepIndexLastSteps(t *testing.T) {
	// per-timestep rows tagged by the schedule collapse to one value per
	// period, the period's final step
	nstp := []int{2, 3, 1}
	v := []float64{10., 20., 30., 40., 50., 60.}
	pers, out := LastSteps(StepIndex(nstp), v)
	if len(pers) != 3 || pers[0] != 0 || pers[1] != 1 || pers[2] != 2 {
		t.Fatalf("unexpected periods: %v", pers)
	}
	if out[0] != 20. || out[1] != 50. || out[2] != 60. {
		t.Fatalf("last-step values = %v, want [20 50 60]", out)
	}
}

func TestStepIndexLength(t *testing.T) {
	for _, nstp := range [][]int{{}, {1}, {5, 5, 5}, {0, 0}, {3, 1, 0, 7}} {
		n := 0
		for _, s := range nstp {
			n += s
		}
		if got := StepIndex(nstp); len(got) != n {
			t.Fatalf("StepIndex(%v) returned %d rows, want %d", nstp, len(got), n)
		}
	}
}
