package manager

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/graph"
	"github.com/gopak/depsort/internal/logging"
)

var ErrUnknownPackage = errors.New("unknown package")

type Manager struct {
	cfg      config.Manifest
	pkgByIdx map[string]int
	g        graph.Graph
}

func New(cfg config.Manifest) *Manager {
	m := &Manager{
		cfg:      cfg,
		pkgByIdx: make(map[string]int, len(cfg.Packages)),
		g:        graph.BuildGraph(cfg.Declarations()),
	}
	for i, p := range cfg.Packages {
		m.pkgByIdx[p.Name] = i
	}
	return m
}

// Order returns every package in the manifest, dependencies first.
func (m *Manager) Order() ([]string, error) {
	return graph.Order(m.cfg.Declarations())
}

// InDegrees returns how many packages depend directly on each package.
func (m *Manager) InDegrees() map[string]int {
	return graph.InDegrees(m.g)
}

// Resolve returns name and the chain of packages it depends on, in install
// order.
func (m *Manager) Resolve(name string) ([]string, error) {
	return m.Plan([]string{name})
}

// Plan returns the named packages plus everything they depend on, in install
// order.
func (m *Manager) Plan(names []string) ([]string, error) {
	for _, n := range names {
		if !m.known(n) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPackage, n)
		}
	}
	ord, err := m.Order()
	if err != nil {
		return nil, err
	}
	closure := map[string]bool{}
	for _, n := range names {
		for cur, ok := n, true; ok && !closure[cur]; cur, ok = m.g[cur] {
			closure[cur] = true
		}
	}
	res := []string{}
	for _, n := range ord {
		if closure[n] {
			res = append(res, n)
		}
	}
	logging.Debug(fmt.Sprintf("plan for %s: %s", strings.Join(names, ", "), strings.Join(res, " -> ")))
	return res, nil
}

// Dependents returns the packages that depend directly on name, sorted.
func (m *Manager) Dependents(name string) []string {
	out := m.g.Dependents(name)
	sort.Strings(out)
	return out
}

// Packages returns the declared packages in manifest order.
func (m *Manager) Packages() []config.Package {
	return append([]config.Package{}, m.cfg.Packages...)
}

func (m *Manager) Install(name string, runner Runner) error {
	plan, err := m.Resolve(name)
	if err != nil {
		return err
	}
	return m.installPlan(plan, runner, func(n string, ok bool, msg string) {
		if ok {
			logging.Success(msg + ": " + n)
			return
		}
		logging.Error("failed: " + n)
	})
}

// Remove runs the remove command of name. Packages other packages still
// depend on are refused.
func (m *Manager) Remove(name string, runner Runner) error {
	if !m.known(name) {
		return fmt.Errorf("%w: %s", ErrUnknownPackage, name)
	}
	if deps := m.Dependents(name); len(deps) > 0 {
		return fmt.Errorf("cannot remove %s: required by %s", name, strings.Join(deps, ", "))
	}
	p := m.pkgByName(name)
	if p.Remove.Command == "" {
		return fmt.Errorf("missing remove script for package: %s", name)
	}
	return runner.Run(name, "remove", p.Remove)
}

// known reports whether name is declared or named as a dependency.
func (m *Manager) known(name string) bool {
	if _, ok := m.pkgByIdx[name]; ok {
		return true
	}
	_, ok := m.g.Vertices()[name]
	return ok
}

func (m *Manager) pkgByName(name string) config.Package {
	if i, ok := m.pkgByIdx[name]; ok {
		return m.cfg.Packages[i]
	}
	return config.Package{Name: name}
}
