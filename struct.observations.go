package mm2019

import "time"

// ObsColl holds one station's observed daily flows [m³/s].
type ObsColl struct {
	T   []time.Time
	V   []float64
	Nam string
}

// Crop returns the record within [dtb, dte] inclusive.
func (o *ObsColl) Crop(dtb, dte time.Time) *ObsColl {
	var t []time.Time
	var v []float64
	for i, d := range o.T {
		if d.Before(dtb) || d.After(dte) {
			continue
		}
		t = append(t, d)
		v = append(v, o.V[i])
	}
	return &ObsColl{t, v, o.Nam}
}

func (o *ObsColl) Series() (Series, error) { return NewSeries(o.T, o.V) }
