package executil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gopak/depsort/internal/config"
)

type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// RunShell runs c under bash -ceu, through sudo when it requires root and the
// process is not already root. env entries are KEY=VALUE pairs added to the
// environment.
func RunShell(c config.Command, env ...string) Result {
	final := c.Command
	if c.RequireRoot && os.Geteuid() != 0 {
		esc := strings.ReplaceAll(c.Command, "'", "'\"'\"'")
		final = fmt.Sprintf("sudo --preserve-env bash -ceu '%s'", esc)
	}
	cmd := exec.Command("bash", "-ceu", final)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	code := 0
	if err != nil {
		var e *exec.ExitError
		if errors.As(err, &e) {
			code = e.ExitCode()
		} else {
			code = 1
		}
	}
	return Result{Stdout: out.String(), Stderr: errb.String(), Code: code}
}
