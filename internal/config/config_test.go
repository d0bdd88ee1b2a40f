package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingYieldsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ShowHidden || cfg.ShowIcons || cfg.Debug {
		t.Fatal("expected boolean defaults to be false")
	}
	if cfg.Accent != "red" {
		t.Fatalf("expected default accent red, got %q", cfg.Accent)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "show_hidden: true\nicons: true\ncolor: blue\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.ShowHidden || !cfg.ShowIcons {
		t.Fatal("expected set booleans to be true")
	}
	if cfg.Accent != "blue" {
		t.Fatalf("expected accent blue, got %q", cfg.Accent)
	}
	if cfg.Debug {
		t.Fatal("unset debug should stay false")
	}
}

func TestLoadFilePartialKeepsAccentDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("show_hidden: true\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Accent != "red" {
		t.Fatalf("expected accent to keep its default, got %q", cfg.Accent)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("show_hidden: [oops\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
