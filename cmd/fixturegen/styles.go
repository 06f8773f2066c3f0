package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mllab/fixturegen/internal/fixture"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// renderSummary lists the files a generate run wrote.
func renderSummary(results []fixture.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d fixture files", len(results))))
	b.WriteByte('\n')
	for _, r := range results {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			pathStyle.Render(r.Path),
			countStyle.Render(fmt.Sprintf("%d rows", r.Rows)),
			mutedStyle.Render(r.Elapsed.Round(time.Microsecond).String()),
		)
	}
	return b.String()
}
