package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/depsort/internal/manager"
)

func (c *ConsoleUI) RunListImperative() error {
	fmt.Print(renderList(c.m))
	return nil
}

func renderList(m *manager.Manager) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("packages") + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Package", "Depends on", "Required by", "Install"})
	for _, p := range m.Packages() {
		dep := p.DependsOn
		if dep == "" {
			dep = "-"
		}
		req := strings.Join(m.Dependents(p.Name), ", ")
		if req == "" {
			req = "-"
		}
		inst := p.Install.Command
		if inst == "" {
			inst = colorGray("-")
		}
		tw.AppendRow(table.Row{p.Name, dep, req, inst})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
