package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hhtools/hhparse/internal/batch"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// printSummary renders the end-of-run totals. Plain output is used
// when the terminal reports no color support, so piped output stays
// clean.
func printSummary(result *batch.Result, opts runOptions, elapsed time.Duration) {
	if termenv.ColorProfile() == termenv.Ascii {
		fmt.Printf("parsed %d hands (%d actions) from %d files in %.2fs, %d failed\n",
			len(result.Hands), result.TotalActions(), result.Files,
			elapsed.Seconds(), len(result.Failures))
		fmt.Printf("hands table: %s\n", opts.handsOut)
		if opts.actionsOut != "" {
			fmt.Printf("actions table: %s\n", opts.actionsOut)
		}
		return
	}

	fmt.Println(titleStyle.Render("hhparse complete"))
	fmt.Printf("  %s %s from %s files in %.2fs\n",
		countStyle.Render(fmt.Sprintf("%d hands", len(result.Hands))),
		labelStyle.Render(fmt.Sprintf("(%d actions)", result.TotalActions())),
		countStyle.Render(fmt.Sprintf("%d", result.Files)),
		elapsed.Seconds())
	if n := len(result.Failures); n > 0 {
		fmt.Printf("  %s\n", failStyle.Render(fmt.Sprintf("%d blocks discarded", n)))
	}
	fmt.Printf("  %s %s\n", labelStyle.Render("hands table:"), opts.handsOut)
	if opts.actionsOut != "" {
		fmt.Printf("  %s %s\n", labelStyle.Render("actions table:"), opts.actionsOut)
	}
}
