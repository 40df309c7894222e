package ffmpeg

import (
	"context"
	"fmt"

	"github.com/clipstitch/clipstitch/pkg/util"
)

// ExtractSegment cuts a video-only sub-range out of input. Audio is dropped
// here on purpose: the stitcher reattaches the original soundtrack after
// concatenation, so per-segment audio would only get in the way. Segments are
// always re-encoded so they concatenate cleanly regardless of source codec.
func (e *Executor) ExtractSegment(ctx context.Context, input string, opts SegmentOptions) error {
	if opts.Duration <= 0 {
		return fmt.Errorf("invalid segment duration: must be positive")
	}
	if opts.Output == "" {
		return fmt.Errorf("output path is required")
	}

	e.logger.Info().
		Str("input", input).
		Str("output", opts.Output).
		Dur("start", opts.Start).
		Dur("duration", opts.Duration).
		Msg("extracting segment")

	args := []string{
		"-i", input,
		"-ss", util.FormatDuration(opts.Start),
		"-t", util.FormatDuration(opts.Duration),
		"-an",
	}

	if opts.Width > 0 && opts.Height > 0 {
		fit := NewFilterBuilder().FitFrame(opts.Width, opts.Height).Build()
		args = append(args, "-vf", fit)
	}

	codec := opts.VideoCodec
	if codec == "" {
		codec = DefaultVideoCodec
	}
	crf := opts.CRF
	if crf == 0 {
		crf = DefaultCRF
	}
	preset := opts.Preset
	if preset == "" {
		preset = DefaultPreset
	}

	args = append(args,
		"-c:v", codec,
		"-crf", fmt.Sprintf("%d", crf),
		"-preset", preset,
		opts.Output,
	)

	runOpts := RunOptions{
		Args:            args,
		ProgressHandler: opts.ProgressFunc,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("segment extraction")
		},
	}

	if err := e.Run(ctx, runOpts); err != nil {
		return fmt.Errorf("segment extraction failed: %w", err)
	}

	e.logger.Info().Str("output", opts.Output).Msg("segment extraction complete")
	return nil
}
