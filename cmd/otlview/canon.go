package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"otlview/internal/driver"
)

var canonCmd = &cobra.Command{
	Use:   "canon [flags] file.otl",
	Short: "Emit the canonical plain-text form of an outline file",
	Long: `Canon decodes an outline file and prints its deterministic canonical
text: one line per headline with level indentation, fold and mark
markers, and delimited note blocks. The output is stable across runs
and platforms, suitable for diffing and archival.

Pass "-" to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runCanon,
}

func runCanon(cmd *cobra.Command, args []string) error {
	opts, err := resolveOpts(cmd)
	if err != nil {
		return err
	}

	// Декодируем полностью до любого вывода: при ошибке stdout остаётся пустым.
	res, err := driver.Decode(args[0], opts.Options)
	if err != nil {
		return err
	}

	reportFindings(res, opts)

	text, err := driver.Canonical(res, opts.Options)
	if err != nil {
		return err
	}
	_, err = io.WriteString(os.Stdout, text)
	return err
}
