package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "color = \"off\"\nencoding = \"latin1\"\ncache = true\n")
	cfg, found, err := Load(path)
	if err != nil || !found {
		t.Fatalf("Load = %v, found=%v", err, found)
	}
	if cfg.Color != "off" || cfg.Encoding != "latin1" || !cfg.Cache {
		t.Fatalf("cfg = %+v", cfg)
	}
	// Незаданные ключи остаются на значениях по умолчанию.
	if cfg.CacheDir != "" {
		t.Fatalf("cache_dir = %q, want empty", cfg.CacheDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, found, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if found {
		t.Fatal("missing file reported found")
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "colur = \"on\"\n")
	if _, _, err := Load(path); err == nil {
		t.Fatal("typo key accepted")
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, "color = [broken\n")
	if _, _, err := Load(path); err == nil {
		t.Fatal("malformed TOML accepted")
	}
}

func TestDefaults(t *testing.T) {
	d := Default()
	if d.Color != "auto" || d.Encoding != "cp437" || d.Cache {
		t.Fatalf("defaults = %+v", d)
	}
}
