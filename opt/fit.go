package opt

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"github.com/maseology/objfunc"
)

// FitScale finds the multiplier and additive offset minimizing the RMSE of
// scale*sim+offset against obs by shuffled complex evolution over the unit
// square.
func FitScale(obs, sim []float64) (scale, offset, rmse float64) {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	gen := func(u []float64) float64 {
		s, o := Par2(u)
		adj := make([]float64, len(sim))
		for i, v := range sim {
			adj[i] = s*v + o
		}
		return objfunc.RMSE(obs, adj)
	}

	uFinal, of := glbopt.SCE(runtime.GOMAXPROCS(0), 2, rng, gen, true)
	scale, offset = Par2(uFinal)
	return scale, offset, of
}
