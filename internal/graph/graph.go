// Package graph turns "package: dependency" declarations into a dependency
// graph and linearizes it into an install order.
package graph

import (
	"errors"
	"fmt"
	"strings"
)

// Graph maps a package to the single package it depends on.
// Packages without a dependency have no key.
type Graph map[string]string

// Declaration is one parsed "package: dependency" line.
type Declaration struct {
	Package    string
	Dependency string
}

var ErrMalformedDeclaration = errors.New("malformed declaration")

// ParseDeclaration splits a line on its first colon. A missing or blank
// right-hand side declares a package with no dependency.
func ParseDeclaration(line string) (Declaration, error) {
	name, dep, _ := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	dep = strings.TrimSpace(dep)
	if name == "" {
		return Declaration{}, fmt.Errorf("%w: %q", ErrMalformedDeclaration, line)
	}
	return Declaration{Package: name, Dependency: dep}, nil
}

func ParseDeclarations(lines []string) ([]Declaration, error) {
	out := make([]Declaration, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		d, err := ParseDeclaration(l)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// BuildGraph keeps only declarations that name a dependency. When a package is
// declared with a dependency more than once the last one wins.
func BuildGraph(decls []Declaration) Graph {
	g := Graph{}
	for _, d := range decls {
		if d.Dependency == "" {
			continue
		}
		g[d.Package] = d.Dependency
	}
	return g
}

// Vertices returns every package named in g, as source or target.
func (g Graph) Vertices() map[string]struct{} {
	vs := make(map[string]struct{}, len(g)*2)
	for from, to := range g {
		vs[from] = struct{}{}
		vs[to] = struct{}{}
	}
	return vs
}

// Dependents returns the packages that depend directly on name.
func (g Graph) Dependents(name string) []string {
	var out []string
	for from, to := range g {
		if to == name {
			out = append(out, from)
		}
	}
	return out
}
