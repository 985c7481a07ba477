package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"otlview/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "otlview",
	Short: "Inspect binary outline files of the legacy DOS outliner",
	Long: `otlview decodes the undocumented binary outline format (.OTL) of a
1988-era DOS outliner and exposes the structure for inspection,
comparison and validation. It never writes outline files.`,
	SilenceUsage: true,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(canonCmd)
	rootCmd.AddCommand(jsonCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("validate", false, "run the structural validator and print findings to stderr")
	rootCmd.PersistentFlags().String("enc", "", "render encoding for text and notes (cp437|latin1|ascii|utf8)")
	rootCmd.PersistentFlags().Int("max-findings", 100, "maximum number of findings to collect")
	rootCmd.PersistentFlags().Bool("cache", false, "cache canonical text on disk keyed by input hash")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
