package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultConfiguration(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("unexpected version: %d", cfg.Version)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Fatalf("unexpected console level: %q", cfg.Logging.ConsoleLogger.Level)
	}
	if len(cfg.Document.Extensions) == 0 || cfg.Document.Extensions[0] != ".twee" {
		t.Fatalf("unexpected extensions: %v", cfg.Document.Extensions)
	}
}

func TestLoadConfigurationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twee.yaml")
	override := `version: 1

logging:
  console:
    level: debug
`
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration: %v", err)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Fatalf("file override ignored: %q", cfg.Logging.ConsoleLogger.Level)
	}
	// defaults not named in the file survive
	if len(cfg.Document.Extensions) == 0 {
		t.Fatalf("defaults lost on file load: %v", cfg.Document.Extensions)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration: %v", err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty dump")
	}
}
