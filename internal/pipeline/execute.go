package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/clipstitch/clipstitch/internal/captions"
	"github.com/clipstitch/clipstitch/internal/ffmpeg"
	"github.com/clipstitch/clipstitch/internal/library"
	"github.com/clipstitch/clipstitch/internal/timeline"
	"github.com/clipstitch/clipstitch/pkg/util"
)

// Execute materializes a plan: extract every segment as video-only, stitch
// them in order, reattach the original soundtrack, then run the final render
// with captions and the pan/zoom effect. All intermediates live in a
// per-request work directory that is removed whether or not the run succeeds.
func (p *Pipeline) Execute(ctx context.Context, plan *Plan) (string, error) {
	workDir := filepath.Join(p.cfg.WorkDir, plan.RequestID)
	if err := util.EnsureDir(workDir); err != nil {
		return "", stageErr("workspace", -1, err)
	}
	// Best-effort cleanup; never masks the stage error.
	defer os.RemoveAll(workDir)

	if err := p.checkSources(plan); err != nil {
		return "", err
	}

	stitched, err := p.stitch(ctx, plan, workDir)
	if err != nil {
		return "", err
	}

	var subtitles string
	if len(plan.Cues) > 0 {
		subtitles = filepath.Join(workDir, "captions.srt")
		if err := captions.WriteSRT(subtitles, plan.Cues); err != nil {
			return "", stageErr("captions", -1, err)
		}
	}

	outPath, handle, err := p.store.Allocate(".mp4")
	if err != nil {
		return "", stageErr("store", -1, err)
	}

	fps := plan.Source.FPS
	if p.cfg.Output.FPS > 0 {
		fps = p.cfg.Output.FPS
	}
	effectFilter := plan.Effect.ZoompanFilter(p.cfg.Output.Width, p.cfg.Output.Height, fps)

	renderOpts := ffmpeg.RenderOptions{
		Input:         stitched,
		Output:        outPath,
		Subtitles:     subtitles,
		SubtitleStyle: p.subtitleStyle(),
		Filters: ffmpeg.NewFilterBuilder().
			FitFrame(p.cfg.Output.Width, p.cfg.Output.Height).
			Custom(effectFilter).
			BuildAll(),
		CRF:    p.cfg.FFmpeg.CRF,
		Preset: p.cfg.FFmpeg.Preset,
	}
	if err := p.engine.Render(ctx, renderOpts); err != nil {
		return "", stageErr("render", -1, err)
	}

	p.logger.Info().
		Str("request", plan.RequestID).
		Str("handle", handle).
		Msg("composition complete")

	return handle, nil
}

// subtitleStyle renders the configured caption styling as a libass
// force_style clause.
func (p *Pipeline) subtitleStyle() string {
	c := p.cfg.Captions
	if c.FontName == "" && c.FontSize == 0 && c.OutlineWidth == 0 {
		return ""
	}
	style := fmt.Sprintf("FontName=%s,FontSize=%d", c.FontName, c.FontSize)
	if c.OutlineWidth > 0 {
		style += fmt.Sprintf(",Outline=%d", c.OutlineWidth)
	}
	return style
}

// checkSources verifies every referenced source is readable before any
// extraction starts. A missing cutaway is a hard failure: dropping it would
// break the timing the caption track promises.
func (p *Pipeline) checkSources(plan *Plan) error {
	seen := make(map[string]bool)
	for _, s := range plan.Segments {
		if seen[s.SourceRef] {
			continue
		}
		seen[s.SourceRef] = true
		if _, err := os.Stat(s.SourceRef); err != nil {
			return &library.MissingInputError{Path: s.SourceRef, Err: err}
		}
	}
	return nil
}

// stitch produces the silent concatenated timeline and reattaches the
// primary's original audio. With no cutaways it is a passthrough of the
// source.
func (p *Pipeline) stitch(ctx context.Context, plan *Plan, workDir string) (string, error) {
	if len(plan.Segments) == 1 && plan.Segments[0].Kind == timeline.KindPrimary {
		p.logger.Info().Str("request", plan.RequestID).Msg("no cutaways, passing source through")
		return plan.Source.Path, nil
	}

	parts, err := p.extractSegments(ctx, plan, workDir)
	if err != nil {
		return "", err
	}

	silent := filepath.Join(workDir, "timeline_video.mp4")
	if err := p.engine.Concat(ctx, ffmpeg.ConcatOptions{Inputs: parts, Output: silent}); err != nil {
		return "", stageErr("concat", -1, err)
	}

	stitched := filepath.Join(workDir, "timeline.mp4")
	if err := p.engine.MuxAudio(ctx, silent, plan.Source.Path, stitched, nil); err != nil {
		return "", stageErr("mux", -1, err)
	}

	return stitched, nil
}

// extractSegments realizes each segment as its own intermediate file.
// Extractions are independent, so they run in parallel bounded by the
// configured concurrency; ordering only matters at concatenation, which the
// returned slice preserves.
func (p *Pipeline) extractSegments(ctx context.Context, plan *Plan, workDir string) ([]string, error) {
	parts := make([]string, len(plan.Segments))

	workers := p.cfg.Concurrency
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, seg := range plan.Segments {
		i, seg := i, seg
		out := filepath.Join(workDir, fmt.Sprintf("seg_%03d.mp4", i))
		parts[i] = out

		g.Go(func() error {
			opts := ffmpeg.SegmentOptions{
				Start:    util.Seconds(seg.SourceOffset),
				Duration: util.Seconds(seg.Duration),
				Output:   out,
				CRF:      p.cfg.FFmpeg.CRF,
				Preset:   p.cfg.FFmpeg.Preset,
			}
			// Cutaways come from arbitrary sources and must match the
			// primary's frame before concat.
			if seg.Kind == timeline.KindCutaway {
				opts.Width = plan.Source.Width
				opts.Height = plan.Source.Height
			}

			if err := p.engine.ExtractSegment(gctx, seg.SourceRef, opts); err != nil {
				return stageErr("extract", i, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}
