package main

import (
	"os"

	"github.com/spf13/cobra"

	"otlview/internal/driver"
	"otlview/internal/otldiff"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] prev.otl curr.otl",
	Short: "Compare two outline files structurally",
	Long: `Diff decodes both files independently (the two passes run
concurrently) and compares their canonical texts line by line with a
conservative LCS, zero context. Identical files produce no output.

With --structure-only, note bodies are elided behind a placeholder so
large notes cannot drown structural changes. With --show-cursor, the
second file's saved cursor position is resolved and printed alongside
the diff without altering it.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().Bool("show-cursor", false, "resolve and print the second file's cursor position")
	diffCmd.Flags().Bool("structure-only", false, "elide note bodies from the comparison")
}

func runDiff(cmd *cobra.Command, args []string) error {
	opts, err := resolveOpts(cmd)
	if err != nil {
		return err
	}
	showCursor, err := cmd.Flags().GetBool("show-cursor")
	if err != nil {
		return err
	}
	structureOnly, err := cmd.Flags().GetBool("structure-only")
	if err != nil {
		return err
	}

	report, prev, curr, err := driver.DiffPaths(args[0], args[1], opts.Options, otldiff.Options{
		StructureOnly: structureOnly,
		ShowCursor:    showCursor,
	})
	if err != nil {
		return err
	}

	reportFindings(prev, opts)
	reportFindings(curr, opts)

	return otldiff.Format(os.Stdout, report, otldiff.FormatOpts{Color: opts.colorOut})
}
