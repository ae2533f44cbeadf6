package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrCycleDetected = errors.New("dependency cycle detected")

// CycleError reports the packages left unresolved when no package with
// in-degree zero remains.
type CycleError struct {
	Remaining []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s among: %s", ErrCycleDetected, strings.Join(e.Remaining, ", "))
}

func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// InDegrees counts incoming edges for every vertex of g. Sources nothing
// points to are present with 0.
func InDegrees(g Graph) map[string]int {
	indeg := make(map[string]int, len(g)*2)
	for from, to := range g {
		if _, ok := indeg[from]; !ok {
			indeg[from] = 0
		}
		indeg[to]++
	}
	return indeg
}

// Linearize orders the vertices of g so that every package comes before the
// package it depends on (dependent first). Use Order for install order.
func Linearize(g Graph) ([]string, error) {
	return LinearizeWithInDegrees(g, InDegrees(g))
}

// LinearizeWithInDegrees works on a copy of indeg. Ties between packages with
// no remaining dependents are broken by name.
func LinearizeWithInDegrees(g Graph, indeg map[string]int) ([]string, error) {
	work := make(map[string]int, len(indeg))
	for v, n := range indeg {
		work[v] = n
	}
	order := make([]string, 0, len(work))
	for len(work) > 0 {
		var sources []string
		for v, n := range work {
			if n == 0 {
				sources = append(sources, v)
			}
		}
		if len(sources) == 0 {
			remaining := make([]string, 0, len(work))
			for v := range work {
				remaining = append(remaining, v)
			}
			sort.Strings(remaining)
			return nil, &CycleError{Remaining: remaining}
		}
		sort.Strings(sources)
		src := sources[0]
		order = append(order, src)
		if next, ok := g[src]; ok {
			work[next]--
		}
		delete(work, src)
	}
	return order, nil
}
