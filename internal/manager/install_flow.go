package manager

import (
	"fmt"
)

const (
	msgInstalled = "installed"
	msgSkipped   = "skipped (no install command)"
	msgBlocked   = "not installed: a dependency failed"
)

// InstallSelected installs the selected packages and their dependencies one at
// a time in install order. After the first failure the rest of the plan is
// reported as blocked and the failure is returned.
func (m *Manager) InstallSelected(names []string, runner Runner, onInstall func(name string, ok bool, msg string)) error {
	plan, err := m.Plan(names)
	if err != nil {
		return err
	}
	return m.installPlan(plan, runner, onInstall)
}

func (m *Manager) installPlan(plan []string, runner Runner, onInstall func(name string, ok bool, msg string)) error {
	report := func(n string, ok bool, msg string) {
		if onInstall != nil {
			onInstall(n, ok, msg)
		}
	}
	var failed error
	for _, n := range plan {
		if failed != nil {
			report(n, false, msgBlocked)
			continue
		}
		p := m.pkgByName(n)
		if p.Install.Command == "" {
			report(n, true, msgSkipped)
			continue
		}
		if err := runner.Run(n, "install", p.Install); err != nil {
			failed = err
			report(n, false, err.Error())
			continue
		}
		report(n, true, msgInstalled)
	}
	return failed
}

// DescribePlan renders one line per planned step, as printed by --dry-run.
func (m *Manager) DescribePlan(plan []string) []string {
	out := make([]string, 0, len(plan))
	for i, n := range plan {
		p := m.pkgByName(n)
		switch {
		case p.Install.Command == "":
			out = append(out, fmt.Sprintf("%d. %s: no install command", i+1, n))
		case p.Install.RequireRoot:
			out = append(out, fmt.Sprintf("%d. %s: sudo %s", i+1, n, p.Install.Command))
		default:
			out = append(out, fmt.Sprintf("%d. %s: %s", i+1, n, p.Install.Command))
		}
	}
	return out
}
