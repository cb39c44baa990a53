package mm2019

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// RunSolver invokes the external groundwater solver on a name file and
// blocks until it exits. MODFLOW-family codes print a termination banner
// and may still exit 0 after a failed run, so both are checked. No retry,
// no timeout: a failed run is for the operator to inspect.
func RunSolver(exe, namfile, wd string) error {
	cmd := exec.Command(exe, namfile)
	cmd.Dir = wd
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("RunSolver: %s %s: %v: %s", exe, namfile, err, strings.TrimSpace(stderr.String()))
	}
	if !strings.Contains(stdout.String(), "Normal termination") {
		return fmt.Errorf("RunSolver: %s %s exited without normal termination:\n%s", exe, namfile, strings.TrimSpace(stdout.String()))
	}
	return nil
}
