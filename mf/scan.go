package mf

import (
	"bufio"
	"io"
	"strings"
)

// scn walks a solver text file line by line, tracking position for error
// reporting.
type scn struct {
	s  *bufio.Scanner
	fp string
	ln int
}

func newScn(r io.Reader, fp string) *scn {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 1024*1024), 1024*1024) // listing files carry long lines
	return &scn{s: s, fp: fp}
}

// next returns the following non-blank, non-comment line.
func (s *scn) next() (string, bool) {
	for s.s.Scan() {
		s.ln++
		ln := s.s.Text()
		t := strings.TrimSpace(ln)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		return ln, true
	}
	return "", false
}

// fields returns the following line split on whitespace.
func (s *scn) fields() ([]string, bool) {
	ln, ok := s.next()
	if !ok {
		return nil, false
	}
	return strings.Fields(ln), true
}

func (s *scn) perr(col int, err error) *ParseError {
	return &ParseError{File: s.fp, Line: s.ln, Col: col, Err: err}
}
