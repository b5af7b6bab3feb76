package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const maxRenderWidth = 100

var scopeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Padding(0, 1)

// renderWidth clamps the terminal width to something readable.
func renderWidth() int {
	w := termWidth()
	if w > maxRenderWidth {
		return maxRenderWidth
	}
	return w
}

// renderMarkdown renders the analysis markdown for the terminal. On any
// renderer failure it falls back to the raw text so the answer is never
// lost to a styling problem.
func renderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(renderWidth()-2),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}

// renderScopePanel draws the focus line in a bordered panel above the
// analysis.
func renderScopePanel(focus string, activityCount int) string {
	label := formatScope("Focus: " + focus)
	count := formatProgress(plural(activityCount, "activity", "activities"))
	return scopeStyle.Render(label + "\n" + count)
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
