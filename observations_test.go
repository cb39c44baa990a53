package mm2019

import (
	"strings"
	"testing"
	"time"
)

const rdbSnippet = `# U.S. Geological Survey daily values
# retrieved 2019-06-14
agency_cd	site_no	datetime	code	flow	qual
5s	15s	20d	10s	14n	10s
USGS	04087000	2014-01-01	A	12.3	A
USGS	04087000	2014-01-02	A	11.9	A
USGS	04087000	2014-01-03	A		P
USGS	04087000	2014-01-04	A	13.1	A
`

func TestParseObs(t *testing.T) {
	var src ObsSource
	src.Station = "04087000"
	src.setDefaults()
	obs, err := parseObs(strings.NewReader(rdbSnippet), src)
	if err != nil {
		t.Fatalf("parseObs: %v", err)
	}
	if len(obs.T) != 3 { // the empty provisional cell is skipped
		t.Fatalf("expected 3 rows, got %d", len(obs.T))
	}
	if !obs.T[0].Equal(time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)) || obs.V[0] != 12.3 {
		t.Fatalf("row 0 = %v %v", obs.T[0], obs.V[0])
	}
	if obs.V[2] != 13.1 {
		t.Fatalf("row 2 = %v", obs.V[2])
	}
}

func TestParseObsMalformed(t *testing.T) {
	var src ObsSource
	src.Station = "x"
	src.setDefaults()
	bad := "a\tb\t2014-01-01\tA\ttwelve\tA\n"
	src.SkipHeader = 0 // no header lines in this snippet
	if _, err := parseObs(strings.NewReader(bad), src); err == nil {
		t.Fatalf("expected error on non-numeric flow")
	}
}

func TestObsCollCrop(t *testing.T) {
	o := &ObsColl{
		T: []time.Time{
			time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2014, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		V:   []float64{1., 2., 3.},
		Nam: "x",
	}
	c := o.Crop(time.Date(2014, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2014, 12, 31, 0, 0, 0, 0, time.UTC))
	if len(c.T) != 1 || c.V[0] != 2. {
		t.Fatalf("unexpected crop: %v %v", c.T, c.V)
	}
}
