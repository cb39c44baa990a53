package mf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Nam is a solver name file: the table binding package types (DIS, LIST,
// GAGE, HYD, SFR, ...) to unit numbers and file names.
type Nam struct {
	Dir string
	ent []namEntry
}

type namEntry struct {
	ftype string
	unit  int
	fname string
}

func ReadNam(fp string) (*Nam, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n := Nam{Dir: filepath.Dir(fp)}
	s := newScn(f, fp)
	for {
		sp, ok := s.fields()
		if !ok {
			break
		}
		if len(sp) < 3 {
			return nil, s.perr(0, fmt.Errorf("name file entry needs FTYPE NUNIT FNAME, found %d fields", len(sp)))
		}
		u, err := strconv.Atoi(sp[1])
		if err != nil {
			return nil, s.perr(2, err)
		}
		n.ent = append(n.ent, namEntry{strings.ToUpper(sp[0]), u, sp[2]})
	}
	if err := s.s.Err(); err != nil {
		return nil, err
	}
	return &n, nil
}

// File returns the path bound to a package type, joined to the name file's
// directory. Case-insensitive.
func (n *Nam) File(ftype string) (string, bool) {
	ftype = strings.ToUpper(ftype)
	for _, e := range n.ent {
		if e.ftype == ftype {
			return filepath.Join(n.Dir, e.fname), true
		}
	}
	return "", false
}

// ByUnit returns the path bound to a unit number.
func (n *Nam) ByUnit(u int) (string, bool) {
	for _, e := range n.ent {
		if e.unit == u {
			return filepath.Join(n.Dir, e.fname), true
		}
	}
	return "", false
}
