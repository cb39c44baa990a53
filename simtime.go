package mm2019

import "time"

// TimeUnit is the number of seconds per solver time unit. Solvers report
// elapsed time in whatever unit the model was built with; nothing here
// attempts to infer it from file content.
type TimeUnit float64

const (
	Seconds TimeUnit = 1.
	Minutes TimeUnit = 60.
	Hours   TimeUnit = 3600.
	Days    TimeUnit = secperday
)

// SimTime converts between solver elapsed time and calendar time given the
// simulation start date.
type SimTime struct {
	T0   time.Time
	Unit TimeUnit
}

// At returns T0 plus an elapsed-time offset; fractional offsets give
// sub-daily resolution.
func (st SimTime) At(delta float64) time.Time {
	return st.T0.Add(time.Duration(delta * float64(st.Unit) * float64(time.Second)))
}

// Elapsed inverts At.
func (st SimTime) Elapsed(t time.Time) float64 {
	return t.Sub(st.T0).Seconds() / float64(st.Unit)
}

// Calendar maps a set of elapsed-time offsets to calendar timestamps.
func (st SimTime) Calendar(deltas []float64) []time.Time {
	o := make([]time.Time, len(deltas))
	for i, d := range deltas {
		o[i] = st.At(d)
	}
	return o
}

// Series builds a calendar-keyed series from solver elapsed times.
func (st SimTime) Series(deltas, v []float64) (Series, error) {
	return NewSeries(st.Calendar(deltas), v)
}
