// Package mm2019 post-processes outputs of an external MODFLOW-style
// groundwater-flow solver: calendar mapping of simulation time, stress-period
// aggregation, and comparison of simulated flows against observed records.
// File-format readers live in mf; the solver itself is never reimplemented.
package mm2019

const secperday = 86400.
