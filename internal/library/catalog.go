// Package library manages the cutaway (B-roll) clip catalog: discovering
// clips on disk, probing their durations, and selecting which ones a
// composition uses.
package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/clipstitch/clipstitch/internal/ffmpeg"
	"github.com/clipstitch/clipstitch/internal/timeline"
	"github.com/clipstitch/clipstitch/pkg/util"
)

// Clip is one catalog entry: a readable file and its natural duration in
// seconds. Immutable once scanned.
type Clip struct {
	Path     string
	Duration float64
}

// MissingInputError reports a referenced source that cannot be read. It is a
// hard failure for the whole composition: silently dropping a cutaway would
// desynchronize the caption track.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input %s: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// Prober supplies clip metadata. Satisfied by *ffmpeg.Executor.
type Prober interface {
	ProbeVideo(ctx context.Context, filePath string) (*ffmpeg.VideoInfo, error)
}

// Catalog scans a directory of cutaway clips.
type Catalog struct {
	logger zerolog.Logger
	prober Prober
	dir    string
}

// NewCatalog creates a catalog over the given clip directory.
func NewCatalog(logger zerolog.Logger, prober Prober, dir string) *Catalog {
	return &Catalog{
		logger: logger.With().Str("component", "library").Logger(),
		prober: prober,
		dir:    dir,
	}
}

// Scan lists the catalog's clips with probed durations, sorted by path for a
// stable ordering. Clips reporting a zero or negative duration fail the scan.
func (c *Catalog) Scan(ctx context.Context) ([]Clip, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, &MissingInputError{Path: c.dir, Err: err}
	}

	var clips []Clip
	for _, entry := range entries {
		if entry.IsDir() || !util.HasVideoExtension(entry.Name()) {
			continue
		}
		path := filepath.Join(c.dir, entry.Name())

		info, err := c.prober.ProbeVideo(ctx, path)
		if err != nil {
			return nil, &MissingInputError{Path: path, Err: err}
		}
		dur := info.Duration.Seconds()
		if dur <= 0 {
			return nil, &timeline.InvalidDurationError{Reason: "clip " + path + " reports no duration", Value: dur}
		}

		clips = append(clips, Clip{Path: path, Duration: dur})
	}

	sort.Slice(clips, func(i, j int) bool { return clips[i].Path < clips[j].Path })

	c.logger.Info().
		Str("dir", c.dir).
		Int("clips", len(clips)).
		Msg("catalog scanned")

	return clips, nil
}
