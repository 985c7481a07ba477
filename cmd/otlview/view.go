package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"otlview/internal/driver"
	"otlview/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] file.otl",
	Short: "Browse an outline file in the terminal",
	Long: `View opens a read-only terminal browser over the decoded outline:
scroll, fold and unfold subtrees, toggle note display. Folding happens
in the view layer only; the file is never modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	opts, err := resolveOpts(cmd)
	if err != nil {
		return err
	}

	res, err := driver.Decode(args[0], opts.Options)
	if err != nil {
		return err
	}

	reportFindings(res, opts)

	if !isTerminal(os.Stdout) {
		return fmt.Errorf("view needs a terminal; use canon or json for piped output")
	}

	model := ui.NewBrowserModel(res.File.Path, res.Doc, opts.Encoding)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
