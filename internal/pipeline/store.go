package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clipstitch/clipstitch/pkg/util"
)

// Store is the artifact sink: final outputs land in its directory under
// collision-free names and are addressed by a retrieval handle.
type Store struct {
	logger zerolog.Logger
	dir    string
}

// NewStore creates a store over the given output directory.
func NewStore(logger zerolog.Logger, dir string) *Store {
	return &Store{
		logger: logger.With().Str("component", "store").Logger(),
		dir:    dir,
	}
}

// Allocate reserves a destination for one artifact: the path to write to and
// the handle returned to the caller.
func (s *Store) Allocate(ext string) (path string, handle string, err error) {
	if err := util.EnsureDir(s.dir); err != nil {
		return "", "", fmt.Errorf("failed to create output dir: %w", err)
	}

	name := uuid.NewString() + ext
	path = filepath.Join(s.dir, name)

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	handle = "file://" + abs

	s.logger.Debug().Str("path", path).Str("handle", handle).Msg("artifact allocated")
	return path, handle, nil
}
