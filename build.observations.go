package mm2019

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/maseology/mmio"
)

// ObsSource locates one station's observed daily-flow record: a local path
// or URL to a delimited text resource, with its column layout made
// explicit. Defaults (date in column 2, flow in column 4, tab-delimited,
// '#' comments) match the NWIS-style daily-values layout.
type ObsSource struct {
	Source     string `yaml:"source"`
	Station    string `yaml:"station"`
	DateCol    int    `yaml:"date_col"`
	FlowCol    int    `yaml:"flow_col"`
	DateFmt    string `yaml:"date_format"`
	Delim      string `yaml:"delimiter"`
	Comment    string `yaml:"comment_prefix"`
	SkipHeader int    `yaml:"skip_header"`
}

func (oc *ObsSource) setDefaults() {
	if oc.DateCol == 0 && oc.FlowCol == 0 {
		oc.DateCol, oc.FlowCol = 2, 4
	}
	if oc.DateFmt == "" {
		oc.DateFmt = "2006-01-02"
	}
	if oc.Delim == "" {
		oc.Delim = "\t"
	}
	if oc.Comment == "" {
		oc.Comment = "#"
	}
	if oc.SkipHeader == 0 {
		oc.SkipHeader = 2 // column-name and field-format lines
	}
}

// CollectObservations fetches a station record and caches it as gob beside
// odir; subsequent runs load the cache. Rows with an empty flow cell are
// skipped (provisional gaps); anything else malformed fails.
func CollectObservations(src ObsSource, odir string) (*ObsColl, error) {
	src.setDefaults()
	gfp := odir + src.Station + ".obs.gob"
	if _, ok := mmio.FileExists(gfp); ok {
		return loadGobObs(gfp)
	}

	fmt.Printf(" %s: gathering observed flows from %s\n", src.Station, src.Source)
	r, err := openSource(src.Source)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	obs, err := parseObs(r, src)
	if err != nil {
		return nil, err
	}
	fmt.Printf(" %s: count = %d: %s to %s\n", src.Station, len(obs.T),
		obs.T[0].Format("2006-01-02"), obs.T[len(obs.T)-1].Format("2006-01-02"))
	if err := saveGobObs(gfp, obs); err != nil {
		return nil, err
	}
	return obs, nil
}

func openSource(src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := http.Get(src)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("openSource: unexpected http GET status: %s", resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(src)
}

func parseObs(r io.Reader, src ObsSource) (*ObsColl, error) {
	var dts []time.Time
	var vals []float64
	nhead := src.SkipHeader
	scn, ln := bufio.NewScanner(r), 0
	for scn.Scan() {
		ln++
		s := scn.Text()
		if strings.HasPrefix(s, src.Comment) || strings.TrimSpace(s) == "" {
			continue
		}
		if nhead > 0 {
			nhead--
			continue
		}
		sp := strings.Split(s, src.Delim)
		if len(sp) <= src.FlowCol || len(sp) <= src.DateCol {
			return nil, fmt.Errorf("parseObs: line %d: %d columns, need %d", ln, len(sp), src.FlowCol+1)
		}
		t, err := time.Parse(src.DateFmt, sp[src.DateCol])
		if err != nil {
			return nil, fmt.Errorf("parseObs: line %d: %v", ln, err)
		}
		fs := strings.TrimSpace(sp[src.FlowCol])
		if fs == "" {
			continue
		}
		v, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return nil, fmt.Errorf("parseObs: line %d: %v", ln, err)
		}
		dts = append(dts, t)
		vals = append(vals, v)
	}
	if err := scn.Err(); err != nil {
		return nil, err
	}
	if len(dts) == 0 {
		return nil, fmt.Errorf("parseObs: %s: no data found", src.Station)
	}
	return &ObsColl{dts, vals, src.Station}, nil
}

func saveGobObs(fp string, obs *ObsColl) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" saveGobObs %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(obs); err != nil {
		return fmt.Errorf(" saveGobObs %v", err)
	}
	return nil
}

func loadGobObs(fp string) (*ObsColl, error) {
	var obs ObsColl
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&obs); err != nil {
		return nil, err
	}
	return &obs, nil
}
