// Package pipeline orchestrates a composition request end to end: a pure
// planning phase (scheduling, segment composition, caption cues) followed by
// an execution phase that materializes the plan through ffmpeg. Failure at
// any stage abandons the whole request; intermediates are cleaned up
// best-effort without masking the original error.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clipstitch/clipstitch/internal/config"
	"github.com/clipstitch/clipstitch/internal/ffmpeg"
	"github.com/clipstitch/clipstitch/internal/library"
)

// Engine is the rendering/execution collaborator. *ffmpeg.Executor satisfies
// it; tests substitute a fake.
type Engine interface {
	ProbeVideo(ctx context.Context, filePath string) (*ffmpeg.VideoInfo, error)
	ExtractSegment(ctx context.Context, input string, opts ffmpeg.SegmentOptions) error
	Concat(ctx context.Context, opts ffmpeg.ConcatOptions) error
	MuxAudio(ctx context.Context, videoSource, audioSource, output string, progressFunc ffmpeg.ProgressFunc) error
	Render(ctx context.Context, opts ffmpeg.RenderOptions) error
}

// ComposeRequest is one composition job.
type ComposeRequest struct {
	Input        string // primary talking-head video
	Transcript   string // word-level transcript JSON; empty means no captions
	CutawayCount int
	Seed         int64 // 0 = derive from clock
}

// Pipeline wires the planner, the clip catalog, and the execution engine.
type Pipeline struct {
	logger  zerolog.Logger
	cfg     *config.Config
	engine  Engine
	catalog *library.Catalog
	store   *Store
}

// New creates a pipeline backed by a real ffmpeg executor.
func New(logger zerolog.Logger, cfg *config.Config) (*Pipeline, error) {
	engine, err := ffmpeg.New(logger, cfg.FFmpeg.Threads)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ffmpeg: %w", err)
	}
	return NewWithEngine(logger, cfg, engine), nil
}

// NewWithEngine creates a pipeline over an injected execution engine.
func NewWithEngine(logger zerolog.Logger, cfg *config.Config, engine Engine) *Pipeline {
	return &Pipeline{
		logger:  logger.With().Str("component", "pipeline").Logger(),
		cfg:     cfg,
		engine:  engine,
		catalog: library.NewCatalog(logger, engine, cfg.LibraryDir),
		store:   NewStore(logger, cfg.OutputDir),
	}
}

// Compose plans and executes one request, returning the stored artifact's
// retrieval handle.
func (p *Pipeline) Compose(ctx context.Context, req ComposeRequest) (string, error) {
	plan, err := p.Plan(ctx, req)
	if err != nil {
		return "", err
	}
	return p.Execute(ctx, plan)
}
