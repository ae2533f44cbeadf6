package manager

import (
	"fmt"
	"io"
	"os"

	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/executil"
	"github.com/gopak/depsort/internal/logging"
)

type Runner interface {
	Run(name, step string, cmd config.Command) error
}

// ShellRunner runs package commands through bash and copies their output to
// Out. The package name is exported to the command as DEPSORT_PACKAGE.
type ShellRunner struct {
	Out io.Writer
}

func NewShellRunner() *ShellRunner { return &ShellRunner{Out: os.Stdout} }

func (r *ShellRunner) Run(name, step string, cmd config.Command) error {
	logging.Debug(fmt.Sprintf("%s [%s]: %s", name, step, cmd.Command))
	res := executil.RunShell(cmd, "DEPSORT_PACKAGE="+name)
	if r.Out != nil {
		if res.Stdout != "" {
			fmt.Fprint(r.Out, res.Stdout)
		}
		if res.Stderr != "" {
			fmt.Fprint(r.Out, res.Stderr)
		}
	}
	if res.Code != 0 {
		return fmt.Errorf("command failed for %s [%s]: exit %d", name, step, res.Code)
	}
	return nil
}
