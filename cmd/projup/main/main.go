package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/projup/projup/cmd/projup"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/ui"
)

func main() {
	rootCmd := projup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		styles := ui.NewStyles(lipgloss.NewRenderer(os.Stderr))
		fmt.Fprintln(os.Stderr, styles.Error.Render(fmt.Sprintf("Error: %v", err)))

		if line := errors.Line(err); line > 0 {
			fmt.Fprintln(os.Stderr, styles.Muted.Render(fmt.Sprintf("  at line %d", line)))
		}

		os.Exit(1)
	}
}
