// Package styles holds the terminal styles of the mdpress CLI.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Palette
const (
	Red    = "#FF6188" // Errors
	Orange = "#FC9867" // Warnings, hints
	Yellow = "#FFD866" // Counts
	Green  = "#A9DC76" // Success
	Cyan   = "#78DCE8" // Paths
	Grey   = "#727072" // Dim text
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Grey))
	PathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	CountStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	TitleStyle   = lipgloss.NewStyle().Bold(true)
)

// Progress formats one per-file progress line: "[current/total] filename".
func Progress(current, total int, filename string) string {
	return DimStyle.Render(fmt.Sprintf("[%d/%d]", current, total)) + " " + filename
}

// Summary formats the end-of-batch counts.
func Summary(succeeded, failed int) string {
	s := SuccessStyle.Render("succeeded") + " " + CountStyle.Render(fmt.Sprint(succeeded))
	if failed == 0 {
		return s + ", " + DimStyle.Render("failed 0")
	}
	return s + ", " + ErrorStyle.Render("failed") + " " + CountStyle.Render(fmt.Sprint(failed))
}
