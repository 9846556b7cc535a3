package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Catalog != "" || cfg.Shuffle != nil || cfg.Topics != nil {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
catalog: /tmp/custom.json
shuffle: false
topics:
  custom:
    - Fundamentals of gen AI
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog != "/tmp/custom.json" {
		t.Errorf("Catalog = %q", cfg.Catalog)
	}
	if cfg.Shuffle == nil || *cfg.Shuffle {
		t.Error("shuffle: false not parsed")
	}
	if got := cfg.Topics["custom"]; len(got) != 1 || got[0] != "Fundamentals of gen AI" {
		t.Errorf("Topics = %v", cfg.Topics)
	}
}

func TestLoad_MalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("topics: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should error")
	}
}

func TestShuffleEnabled(t *testing.T) {
	off := false
	on := true

	if !(Config{}).ShuffleEnabled() {
		t.Error("unset shuffle should default to enabled")
	}
	if (Config{Shuffle: &off}).ShuffleEnabled() {
		t.Error("shuffle: false should disable")
	}
	if !(Config{Shuffle: &on}).ShuffleEnabled() {
		t.Error("shuffle: true should enable")
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("GAIL_PRAC_CONFIG", want)

	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}
