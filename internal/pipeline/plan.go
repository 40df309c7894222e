package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clipstitch/clipstitch/internal/captions"
	"github.com/clipstitch/clipstitch/internal/effects"
	"github.com/clipstitch/clipstitch/internal/library"
	"github.com/clipstitch/clipstitch/internal/timeline"
)

// Source describes the primary talking-head video.
type Source struct {
	Path     string
	Duration float64
	Width    int
	Height   int
	FPS      float64
	HasAudio bool
}

// Plan is the complete, side-effect-free description of one composition:
// where cutaways go, which segments make up the timeline, the caption cues,
// and the effect tuning. Execute consumes it without recomputing anything.
type Plan struct {
	RequestID string
	Source    Source
	Points    []float64
	Segments  []timeline.Segment
	Cues      []captions.Cue
	Effect    effects.Params
}

// PlanOptions carries the planning knobs, resolved from config and flags by
// the caller.
type PlanOptions struct {
	CutawayCount int
	StartBuffer  float64
	EndBuffer    float64
	MaxCutaway   float64
	ChunkSize    int
	Seed         int64
	Effect       effects.Params
}

// BuildPlan runs the pure planning phase: sample cutaways, schedule insertion
// points, compose the segment plan, and build caption cues. No external
// process is touched, which is what makes this testable on its own.
func BuildPlan(source Source, catalog []library.Clip, words []captions.Word, opts PlanOptions) (*Plan, error) {
	if source.Duration <= 0 {
		return nil, &timeline.InvalidDurationError{Reason: "primary source reports no duration", Value: source.Duration}
	}

	points, err := timeline.InsertionPoints(source.Duration, opts.CutawayCount, opts.StartBuffer, opts.EndBuffer)
	if err != nil {
		return nil, err
	}

	picked, err := library.Sample(catalog, opts.CutawayCount, opts.Seed)
	if err != nil {
		return nil, err
	}
	cutaways := make([]timeline.Cutaway, len(picked))
	for i, c := range picked {
		cutaways[i] = timeline.Cutaway{Ref: c.Path, Duration: c.Duration}
	}

	segments, err := timeline.Compose(source.Path, source.Duration, points, cutaways, opts.MaxCutaway)
	if err != nil {
		return nil, err
	}

	cues, err := captions.BuildCues(words, opts.ChunkSize)
	if err != nil {
		return nil, err
	}

	return &Plan{
		RequestID: uuid.NewString(),
		Source:    source,
		Points:    points,
		Segments:  segments,
		Cues:      cues,
		Effect:    opts.Effect,
	}, nil
}

// Plan gathers the plan's inputs (probe the source, scan the catalog, load
// the transcript) and runs the planning phase.
func (p *Pipeline) Plan(ctx context.Context, req ComposeRequest) (*Plan, error) {
	info, err := p.engine.ProbeVideo(ctx, req.Input)
	if err != nil {
		return nil, &library.MissingInputError{Path: req.Input, Err: err}
	}
	source := Source{
		Path:     req.Input,
		Duration: info.Duration.Seconds(),
		Width:    info.Width,
		Height:   info.Height,
		FPS:      info.FPS,
		HasAudio: info.HasAudio,
	}

	var catalog []library.Clip
	if req.CutawayCount > 0 {
		catalog, err = p.catalog.Scan(ctx)
		if err != nil {
			return nil, err
		}
	}

	var words []captions.Word
	if req.Transcript != "" {
		words, err = captions.LoadTranscript(req.Transcript)
		if err != nil {
			return nil, &library.MissingInputError{Path: req.Transcript, Err: err}
		}
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := PlanOptions{
		CutawayCount: req.CutawayCount,
		StartBuffer:  p.cfg.Timeline.StartBuffer,
		EndBuffer:    p.cfg.Timeline.EndBuffer,
		MaxCutaway:   p.cfg.Timeline.MaxCutawaySeconds,
		ChunkSize:    p.cfg.Captions.ChunkSize,
		Seed:         seed,
		Effect: effects.Params{
			ZoomDelta: p.cfg.Effect.ZoomDelta,
			RampIn:    p.cfg.Effect.RampIn,
			RampOut:   p.cfg.Effect.RampOut,
		},
	}

	plan, err := BuildPlan(source, catalog, words, opts)
	if err != nil {
		return nil, err
	}

	p.logger.Info().
		Str("request", plan.RequestID).
		Float64("duration", source.Duration).
		Int("segments", len(plan.Segments)).
		Int("cues", len(plan.Cues)).
		Floats64("points", plan.Points).
		Msg("composition planned")

	return plan, nil
}
