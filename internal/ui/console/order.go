package console

import (
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gopak/depsort/internal/graph"
)

// RenderOrder prints the install order as a numbered table with each
// package's dependency.
func RenderOrder(order []string, g graph.Graph) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Package", "Depends on"})
	for i, n := range order {
		dep := g[n]
		if dep == "" {
			dep = colorGray("-")
		}
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), n, dep})
	}
	return tw.Render() + "\n"
}

// RenderInDegrees prints every package with the number of packages depending
// on it, most depended-on first.
func RenderInDegrees(indeg map[string]int) string {
	names := make([]string, 0, len(indeg))
	for n := range indeg {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if indeg[names[i]] != indeg[names[j]] {
			return indeg[names[i]] > indeg[names[j]]
		}
		return names[i] < names[j]
	})
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Package", "Dependents"})
	total := 0
	for _, n := range names {
		tw.AppendRow(table.Row{n, indeg[n]})
		total += indeg[n]
	}
	tw.AppendFooter(table.Row{"Edges", total})
	return tw.Render() + "\n"
}
