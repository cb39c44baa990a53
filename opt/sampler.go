// Package opt fits a simple bias correction of simulated to observed flows:
// a post-run diagnostic of systematic error, never a recalibration of the
// model itself.
package opt

import "github.com/maseology/mmaths"

// Par2 maps unit-interval samples to (scale, offset) correction parameters.
func Par2(u []float64) (scale, offset float64) {
	scale = mmaths.LogLinearTransform(.1, 10., u[0])
	offset = mmaths.LinearTransform(-1., 1., u[1]) // [m³/s]
	return
}
