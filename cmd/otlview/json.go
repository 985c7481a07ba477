package main

import (
	"os"

	"github.com/spf13/cobra"

	"otlview/internal/driver"
	"otlview/internal/outfmt"
)

var jsonCmd = &cobra.Command{
	Use:   "json [flags] file.otl",
	Short: "Emit the structured JSON form of an outline file",
	Long: `Json decodes an outline file and prints a machine-readable tree:
document metadata (declared counts, cursor, block marks) and nested
headlines with raw levels and flag bits. Lossless with respect to the
decoded model.`,
	Args: cobra.ExactArgs(1),
	RunE: runJSON,
}

func runJSON(cmd *cobra.Command, args []string) error {
	opts, err := resolveOpts(cmd)
	if err != nil {
		return err
	}

	res, err := driver.Decode(args[0], opts.Options)
	if err != nil {
		return err
	}

	reportFindings(res, opts)

	return outfmt.JSON(os.Stdout, res.Doc, outfmt.JSONOpts{Encoding: opts.Encoding})
}
