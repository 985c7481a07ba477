package main

import (
	"os"

	"github.com/spf13/cobra"

	"otlview/internal/driver"
	"otlview/internal/outfmt"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] file.otl",
	Short: "List raw outline records",
	Long: `Dump prints one line per decoded record: index, level, raw attribute
byte, fold/mark/sibling flags, note length and headline text. Useful
when poking at unfamiliar or damaged files.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().Int("width", 0, "truncate the text column to this many cells (0 = unbounded)")
}

func runDump(cmd *cobra.Command, args []string) error {
	opts, err := resolveOpts(cmd)
	if err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}

	res, err := driver.Decode(args[0], opts.Options)
	if err != nil {
		return err
	}

	reportFindings(res, opts)

	return outfmt.Dump(os.Stdout, res.Doc, outfmt.DumpOpts{
		Encoding:  opts.Encoding,
		TextWidth: width,
	})
}
