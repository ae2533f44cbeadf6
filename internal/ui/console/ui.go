package console

import (
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/depsort/internal/manager"
)

type ConsoleUI struct {
	m *manager.Manager
}

func NewConsoleUI(m *manager.Manager) *ConsoleUI { return &ConsoleUI{m: m} }

func colorGreen(s string) string { return text.FgGreen.Sprint(s) }
func colorRed(s string) string   { return text.FgRed.Sprint(s) }
func colorGray(s string) string  { return text.FgHiBlack.Sprint(s) }
