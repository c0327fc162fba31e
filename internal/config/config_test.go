package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Tokenizer.MinTokenLength != 4 {
		t.Errorf("expected MinTokenLength=4, got %d", cfg.Tokenizer.MinTokenLength)
	}
	if cfg.Export.Threshold != 250 {
		t.Errorf("expected Threshold=250, got %d", cfg.Export.Threshold)
	}
	if cfg.Export.Top != 20 {
		t.Errorf("expected Top=20, got %d", cfg.Export.Top)
	}
	if len(cfg.Tokenizer.ExtraStopwords) == 0 {
		t.Error("expected default extra stopwords to be non-empty")
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("TEXTMINER_INPUT", "")
	t.Setenv("TEXTMINER_OUTPUT_DIR", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "textminer.yaml")

	cfg := DefaultConfig()
	cfg.Corpus.Input = "data/tickets.txt"
	cfg.Export.Threshold = 10

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Corpus.Input != "data/tickets.txt" {
		t.Errorf("expected Input=data/tickets.txt, got %s", loaded.Corpus.Input)
	}
	if loaded.Export.Threshold != 10 {
		t.Errorf("expected Threshold=10, got %d", loaded.Export.Threshold)
	}
}

func TestConfig_LoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("TEXTMINER_INPUT", "")
	t.Setenv("TEXTMINER_OUTPUT_DIR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Export.Threshold != 250 {
		t.Errorf("expected default Threshold=250, got %d", cfg.Export.Threshold)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TEXTMINER_INPUT", "/srv/corpora/support.txt")
	t.Setenv("TEXTMINER_OUTPUT_DIR", "/srv/out")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.Corpus.Input != "/srv/corpora/support.txt" {
		t.Errorf("expected Input from env, got %s", cfg.Corpus.Input)
	}
	if cfg.Export.OutputDir != "/srv/out" {
		t.Errorf("expected OutputDir from env, got %s", cfg.Export.OutputDir)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got: %v", err)
	}

	cfg.Corpus.Input = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty input")
	}

	cfg = DefaultConfig()
	cfg.Tokenizer.MinTokenLength = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for min_token_length=0")
	}

	cfg = DefaultConfig()
	cfg.Export.Threshold = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for threshold=0")
	}

	cfg = DefaultConfig()
	cfg.Export.Top = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for top=0")
	}
}
