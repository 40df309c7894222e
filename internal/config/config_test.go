package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Timeline.StartBuffer != 3 || cfg.Timeline.EndBuffer != 3 {
		t.Errorf("unexpected default buffers: %+v", cfg.Timeline)
	}
	if cfg.Timeline.MaxCutawaySeconds != 4 {
		t.Errorf("unexpected default cutaway cap: %v", cfg.Timeline.MaxCutawaySeconds)
	}
	if cfg.Captions.ChunkSize != 3 {
		t.Errorf("unexpected default chunk size: %v", cfg.Captions.ChunkSize)
	}
	if cfg.Output.Width != 1080 || cfg.Output.Height != 1920 {
		t.Errorf("unexpected default frame: %+v", cfg.Output)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
work_dir: /tmp/cs-work
timeline:
  max_cutaway_seconds: 2.5
captions:
  chunk_size: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.WorkDir != "/tmp/cs-work" {
		t.Errorf("work_dir not applied: %q", cfg.WorkDir)
	}
	if cfg.Timeline.MaxCutawaySeconds != 2.5 {
		t.Errorf("cutaway cap not applied: %v", cfg.Timeline.MaxCutawaySeconds)
	}
	if cfg.Captions.ChunkSize != 5 {
		t.Errorf("chunk size not applied: %v", cfg.Captions.ChunkSize)
	}
	// Untouched fields keep defaults
	if cfg.Timeline.StartBuffer != 3 {
		t.Errorf("start buffer lost its default: %v", cfg.Timeline.StartBuffer)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := defaultConfig()
	cfg.LibraryDir = "/media/broll"
	cfg.Timeline.CutawayCount = 5
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LibraryDir != "/media/broll" {
		t.Errorf("library dir not round-tripped: %q", loaded.LibraryDir)
	}
	if loaded.Timeline.CutawayCount != 5 {
		t.Errorf("cutaway count not round-tripped: %d", loaded.Timeline.CutawayCount)
	}
	if loaded.Captions.ChunkSize != cfg.Captions.ChunkSize {
		t.Errorf("chunk size not round-tripped: %d", loaded.Captions.ChunkSize)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CLIPSTITCH_OUTPUT_DIR", "/tmp/cs-out")
	t.Setenv("CLIPSTITCH_CONCURRENCY", "8")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "/tmp/cs-out" {
		t.Errorf("output dir override not applied: %q", cfg.OutputDir)
	}
	if cfg.Concurrency != 8 {
		t.Errorf("concurrency override not applied: %d", cfg.Concurrency)
	}
}
