package executil

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/gopak/depsort/internal/config"
)

func requireBash(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
}

func TestRunShell(t *testing.T) {
	requireBash(t)
	res := RunShell(config.Command{Command: "echo out; echo err >&2; exit 3"})
	if res.Code != 3 {
		t.Fatalf("code = %d, want 3", res.Code)
	}
	if strings.TrimSpace(res.Stdout) != "out" || strings.TrimSpace(res.Stderr) != "err" {
		t.Fatalf("unexpected output: %+v", res)
	}
}

func TestRunShell_Env(t *testing.T) {
	requireBash(t)
	res := RunShell(config.Command{Command: `echo "$DEPSORT_PACKAGE"`}, "DEPSORT_PACKAGE=Ice")
	if res.Code != 0 || strings.TrimSpace(res.Stdout) != "Ice" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
