package mm2019

import (
	"math"
	"sort"
	"time"
)

// LastSteps selects, for each distinct stress period, the row at its final
// timestep; one value per period, in period order. Rows are assumed
// period-ordered, as the solver writes them, so ties collapse to the
// last-occurring row.
func LastSteps(tags []PerStep, v []float64) (pers []int, out []float64) {
	for i, ps := range tags {
		if n := len(pers); n > 0 && pers[n-1] == ps.Per {
			out[n-1] = v[i]
		} else {
			pers = append(pers, ps.Per)
			out = append(out, v[i])
		}
	}
	return
}

// Quantile returns the q-th quantile of v, q in [0,1], by linear
// interpolation between order statistics. NaN on an empty set or a q
// outside [0,1].
func Quantile(v []float64, q float64) float64 {
	if len(v) == 0 || q < 0. || q > 1. {
		return math.NaN()
	}
	c := make([]float64, len(v))
	copy(c, v)
	sort.Float64s(c)
	h := q * float64(len(c)-1)
	i := int(math.Floor(h))
	if i >= len(c)-1 {
		return c[len(c)-1]
	}
	return c[i] + (h-float64(i))*(c[i+1]-c[i])
}

// MonthlyMeansBelow retains values strictly below the q-th quantile and
// averages them by calendar month, pooling years. Months with nothing
// retained are absent from the result.
func MonthlyMeansBelow(s Series, q float64) map[time.Month]float64 {
	thresh := Quantile(s.V, q)
	sum, cnt := make(map[time.Month]float64), make(map[time.Month]int)
	for i, t := range s.T {
		if s.V[i] < thresh {
			sum[t.Month()] += s.V[i]
			cnt[t.Month()]++
		}
	}
	o := make(map[time.Month]float64, len(sum))
	for m, sm := range sum {
		o[m] = sm / float64(cnt[m])
	}
	return o
}
