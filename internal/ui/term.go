package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Progress: dim/grey for fetch and analyze status lines
	colorProgress = color.New(color.FgWhite, color.Faint)

	// Scope: cyan, shown before the analysis
	colorScope = color.New(color.FgCyan)

	// Success: green for confirmations
	colorSuccess = color.New(color.FgGreen)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatProgress formats a status line.
func formatProgress(s string) string {
	return colorProgress.Sprint(s)
}

// formatScope formats the analysis scope line.
func formatScope(s string) string {
	return colorScope.Sprint(s)
}

// formatSuccess formats a confirmation.
func formatSuccess(s string) string {
	return colorSuccess.Sprint(s)
}
