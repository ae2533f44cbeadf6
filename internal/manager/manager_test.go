package manager

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/graph"
)

type fakeRunner struct {
	calls []string
	fail  map[string]bool
}

func (r *fakeRunner) Run(name, step string, cmd config.Command) error {
	r.calls = append(r.calls, name+":"+step)
	if r.fail[name] {
		return errors.New("command failed for " + name)
	}
	return nil
}

func exampleManifest() config.Manifest {
	install := func(n string) config.Command { return config.Command{Command: "echo install " + n} }
	return config.Manifest{Packages: []config.Package{
		{Name: "KittenService", Install: install("KittenService")},
		{Name: "Leetmeme", DependsOn: "Cyberportal", Install: install("Leetmeme")},
		{Name: "Cyberportal", DependsOn: "Ice", Install: install("Cyberportal"), Remove: config.Command{Command: "echo rm"}},
		{Name: "CamelCaser", DependsOn: "KittenService", Install: install("CamelCaser")},
		{Name: "Fraudstream", DependsOn: "Leetmeme", Install: install("Fraudstream"), Remove: config.Command{Command: "echo rm"}},
		{Name: "Ice", Install: install("Ice")},
	}}
}

func TestOrder(t *testing.T) {
	m := New(exampleManifest())
	order, err := m.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"Ice", "Cyberportal", "Leetmeme", "KittenService", "Fraudstream", "CamelCaser"}, order)
}

func TestResolveOrder(t *testing.T) {
	m := New(exampleManifest())
	order, err := m.Resolve("Fraudstream")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ice", "Cyberportal", "Leetmeme", "Fraudstream"}, order)

	order, err = m.Resolve("Ice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ice"}, order)
}

func TestPlanUnion(t *testing.T) {
	m := New(exampleManifest())
	order, err := m.Plan([]string{"CamelCaser", "Cyberportal"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ice", "Cyberportal", "KittenService", "CamelCaser"}, order)
}

func TestResolveUnknown(t *testing.T) {
	m := New(config.Manifest{})
	_, err := m.Resolve("missing")
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestResolveUndeclaredDependency(t *testing.T) {
	m := New(config.Manifest{Packages: []config.Package{{Name: "a", DependsOn: "libc"}}})
	order, err := m.Resolve("libc")
	require.NoError(t, err)
	assert.Equal(t, []string{"libc"}, order)
}

func TestResolveCycle(t *testing.T) {
	m := New(config.Manifest{Packages: []config.Package{
		{Name: "a", DependsOn: "b"},
		{Name: "b", DependsOn: "a"},
	}})
	_, err := m.Resolve("a")
	assert.ErrorIs(t, err, graph.ErrCycleDetected)
}

func TestInDegrees(t *testing.T) {
	m := New(exampleManifest())
	got := m.InDegrees()
	assert.Equal(t, 1, got["Ice"])
	assert.Equal(t, 0, got["CamelCaser"])
	_, ok := got["Nope"]
	assert.False(t, ok)
}

func TestInstallSelected(t *testing.T) {
	m := New(exampleManifest())
	r := &fakeRunner{}
	var events []string
	err := m.InstallSelected([]string{"Leetmeme"}, r, func(n string, ok bool, msg string) {
		events = append(events, n+"="+msg)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ice:install", "Cyberportal:install", "Leetmeme:install"}, r.calls)
	assert.Equal(t, []string{"Ice=installed", "Cyberportal=installed", "Leetmeme=installed"}, events)
}

func TestInstallStopsAfterFailure(t *testing.T) {
	m := New(exampleManifest())
	r := &fakeRunner{fail: map[string]bool{"Cyberportal": true}}
	okBy := map[string]bool{}
	err := m.InstallSelected([]string{"Fraudstream"}, r, func(n string, ok bool, msg string) {
		okBy[n] = ok
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cyberportal")
	assert.Equal(t, []string{"Ice:install", "Cyberportal:install"}, r.calls)
	assert.Equal(t, map[string]bool{"Ice": true, "Cyberportal": false, "Leetmeme": false, "Fraudstream": false}, okBy)

	err = m.Install("Fraudstream", &fakeRunner{fail: map[string]bool{"Ice": true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ice")
}

func TestInstallSkipsMissingCommand(t *testing.T) {
	m := New(config.Manifest{Packages: []config.Package{
		{Name: "app", DependsOn: "libc", Install: config.Command{Command: "echo app"}},
	}})
	r := &fakeRunner{}
	require.NoError(t, m.Install("app", r))
	assert.Equal(t, []string{"app:install"}, r.calls)
}

func TestRemove(t *testing.T) {
	m := New(exampleManifest())
	r := &fakeRunner{}

	err := m.Remove("Cyberportal", r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Leetmeme")

	require.NoError(t, m.Remove("Fraudstream", r))
	assert.Equal(t, []string{"Fraudstream:remove"}, r.calls)

	assert.Error(t, m.Remove("CamelCaser", r), "missing remove command")
	assert.ErrorIs(t, m.Remove("ghost", r), ErrUnknownPackage)
}

func TestDescribePlan(t *testing.T) {
	m := New(config.Manifest{Packages: []config.Package{
		{Name: "a", DependsOn: "b", Install: config.Command{Command: "make a", RequireRoot: true}},
		{Name: "b", Install: config.Command{Command: "make b"}},
		{Name: "c"},
	}})
	got := m.DescribePlan([]string{"b", "a", "c"})
	assert.Equal(t, []string{"1. b: make b", "2. a: sudo make a", "3. c: no install command"}, got)
}

func TestShellRunner(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
	var out bytes.Buffer
	r := &ShellRunner{Out: &out}
	require.NoError(t, r.Run("Ice", "install", config.Command{Command: `echo "installing $DEPSORT_PACKAGE"`}))
	assert.Equal(t, "installing Ice", strings.TrimSpace(out.String()))

	err := r.Run("Ice", "install", config.Command{Command: "exit 2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit 2")
}
