package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clipstitch/clipstitch/internal/ffmpeg"
	"github.com/clipstitch/clipstitch/internal/timeline"
)

// fakeProber serves canned durations keyed by file base name.
type fakeProber struct {
	durations map[string]time.Duration
}

func (f *fakeProber) ProbeVideo(_ context.Context, path string) (*ffmpeg.VideoInfo, error) {
	d, ok := f.durations[filepath.Base(path)]
	if !ok {
		return nil, errors.New("unknown file")
	}
	return &ffmpeg.VideoInfo{FilePath: path, Duration: d}, nil
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func TestCatalogScan(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.mp4", "a.mov", "notes.txt")

	prober := &fakeProber{durations: map[string]time.Duration{
		"a.mov": 2 * time.Second,
		"b.mp4": 5 * time.Second,
	}}
	catalog := NewCatalog(zerolog.Nop(), prober, dir)

	clips, err := catalog.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(clips) != 2 {
		t.Fatalf("expected 2 clips (txt skipped), got %d", len(clips))
	}
	// Stable path ordering
	if filepath.Base(clips[0].Path) != "a.mov" || filepath.Base(clips[1].Path) != "b.mp4" {
		t.Errorf("unexpected ordering: %v", clips)
	}
	if clips[0].Duration != 2 || clips[1].Duration != 5 {
		t.Errorf("unexpected durations: %v", clips)
	}
}

func TestCatalogScanMissingDir(t *testing.T) {
	catalog := NewCatalog(zerolog.Nop(), &fakeProber{}, filepath.Join(t.TempDir(), "nope"))

	_, err := catalog.Scan(context.Background())
	var mErr *MissingInputError
	if !errors.As(err, &mErr) {
		t.Errorf("expected MissingInputError, got %T: %v", err, err)
	}
}

func TestCatalogScanZeroDurationClip(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "broken.mp4")

	prober := &fakeProber{durations: map[string]time.Duration{"broken.mp4": 0}}
	catalog := NewCatalog(zerolog.Nop(), prober, dir)

	_, err := catalog.Scan(context.Background())
	var dErr *timeline.InvalidDurationError
	if !errors.As(err, &dErr) {
		t.Errorf("expected InvalidDurationError, got %T: %v", err, err)
	}
}
