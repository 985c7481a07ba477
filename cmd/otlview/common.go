package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"otlview/internal/config"
	"otlview/internal/driver"
	"otlview/internal/outfmt"
)

// runtimeOpts resolves persistent flags against the optional otlview.toml.
// Flags win over the config file; the config file wins over defaults.
type runtimeOpts struct {
	driver.Options
	validate bool
	quiet    bool
	colorOut bool // stdout attached to a terminal and color enabled
	colorErr bool
}

func resolveOpts(cmd *cobra.Command) (runtimeOpts, error) {
	var opts runtimeOpts

	cfg := config.Default()
	if path := config.Discover(); path != "" {
		loaded, _, err := config.Load(path)
		if err != nil {
			return opts, err
		}
		cfg = loaded
	}

	flags := cmd.Root().PersistentFlags()

	encName, err := flags.GetString("enc")
	if err != nil {
		return opts, fmt.Errorf("failed to get enc flag: %w", err)
	}
	if encName == "" {
		encName = cfg.Encoding
	}
	enc, err := outfmt.ParseEncoding(encName)
	if err != nil {
		return opts, err
	}
	opts.Encoding = enc

	opts.MaxFindings, err = flags.GetInt("max-findings")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-findings flag: %w", err)
	}

	opts.validate, err = flags.GetBool("validate")
	if err != nil {
		return opts, fmt.Errorf("failed to get validate flag: %w", err)
	}

	opts.quiet, err = flags.GetBool("quiet")
	if err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !flags.Changed("color") && cfg.Color != "" {
		colorFlag = cfg.Color
	}
	opts.colorOut = colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	opts.colorErr = colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))

	useCache, err := flags.GetBool("cache")
	if err != nil {
		return opts, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if useCache || cfg.Cache {
		var cache *driver.DiskCache
		if cfg.CacheDir != "" {
			cache, err = driver.OpenDiskCacheAt(cfg.CacheDir)
		} else {
			cache, err = driver.OpenDiskCache("otlview")
		}
		if err != nil {
			// Кэш — оптимизация; не фатально.
			if !opts.quiet {
				fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}

	return opts, nil
}

// reportFindings runs the validator when --validate is set and prints the
// merged findings to stderr. Findings never change the exit status.
func reportFindings(res *driver.Result, opts runtimeOpts) {
	if !opts.validate {
		return
	}
	driver.Validate(res)
	if res.Bag.Len() == 0 {
		return
	}
	outfmt.PrettyFindings(os.Stderr, res.Bag, res.FileSet, outfmt.PrettyOpts{
		Color:     opts.colorErr,
		ShowNotes: true,
	})
}
