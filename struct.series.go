package mm2019

import (
	"fmt"
	"time"
)

// Series is a calendar-keyed sequence of values. Timestamps are strictly
// increasing; the constructor enforces it.
type Series struct {
	T []time.Time
	V []float64
}

func NewSeries(t []time.Time, v []float64) (Series, error) {
	if len(t) != len(v) {
		return Series{}, fmt.Errorf("NewSeries: %d timestamps to %d values", len(t), len(v))
	}
	for i := 1; i < len(t); i++ {
		if !t[i].After(t[i-1]) {
			return Series{}, fmt.Errorf("NewSeries: timestamps not strictly increasing at row %d (%v)", i, t[i])
		}
	}
	return Series{t, v}, nil
}

func (s Series) Len() int { return len(s.T) }

// Crop returns the sub-series within [dtb, dte] inclusive.
func (s Series) Crop(dtb, dte time.Time) Series {
	var t []time.Time
	var v []float64
	for i, d := range s.T {
		if d.Before(dtb) || d.After(dte) {
			continue
		}
		t = append(t, d)
		v = append(v, s.V[i])
	}
	return Series{t, v}
}

// Scale returns a copy with every value multiplied by f, e.g. a flow-unit
// conversion.
func (s Series) Scale(f float64) Series {
	v := make([]float64, len(s.V))
	for i, vv := range s.V {
		v[i] = vv * f
	}
	return Series{s.T, v}
}
