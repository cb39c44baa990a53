package mm2019

// PerStep tags one solver output row with its (stress period, timestep),
// both zero-based.
type PerStep struct{ Per, Stp int }

// StepIndex unfolds per-period timestep counts into one tag per output row:
// rows take periods in order and the step index resets at each period
// boundary. A period with zero steps contributes no rows and does not shift
// the mapping. len(StepIndex(nstp)) == sum(nstp).
func StepIndex(nstp []int) []PerStep {
	n := 0
	for _, s := range nstp {
		n += s
	}
	o := make([]PerStep, 0, n)
	for ip, s := range nstp {
		for k := 0; k < s; k++ {
			o = append(o, PerStep{ip, k})
		}
	}
	return o
}
