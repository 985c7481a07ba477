// Package config loads the optional otlview.toml file. Everything in it is
// an output preference (color, render encoding, cache); nothing here can
// change how a file is parsed.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest looked up in the working directory and in the
// user config directory.
const FileName = "otlview.toml"

// Config captures output preferences.
type Config struct {
	// Color: auto|on|off, same semantics as the --color flag.
	Color string `toml:"color"`
	// Encoding: cp437|latin1|ascii|utf8, default render encoding.
	Encoding string `toml:"encoding"`
	// Cache enables the canonical-text disk cache by default.
	Cache bool `toml:"cache"`
	// CacheDir overrides the XDG cache location when set.
	CacheDir string `toml:"cache_dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Color:    "auto",
		Encoding: "cp437",
	}
}

// Load parses a config file. A missing file is not an error: it returns the
// defaults and found=false.
func Load(path string) (cfg Config, found bool, err error) {
	cfg = Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), false, nil
		}
		return Default(), false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Default(), false, fmt.Errorf("%s: unknown key %q", path, undec[0].String())
	}
	return cfg, true, nil
}

// Discover finds the effective config file: otlview.toml in the working
// directory first, then in the user config directory. Returns "" when
// neither exists.
func Discover() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "otlview", FileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
