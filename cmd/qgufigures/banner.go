package main

import "github.com/charmbracelet/lipgloss"

// banner styles the console framing of a run. Plain mode returns text unchanged.
type banner struct {
	plain bool
	head  lipgloss.Style
	file  lipgloss.Style
}

func newBanner(noColor bool) banner {
	return banner{
		plain: noColor,
		head:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		file:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(2),
	}
}

func (b banner) title(s string) string {
	if b.plain {
		return "== " + s + " =="
	}
	return b.head.Render("== " + s + " ==")
}

func (b banner) item(s string) string {
	if b.plain {
		return "  " + s
	}
	return b.file.Render(s)
}
