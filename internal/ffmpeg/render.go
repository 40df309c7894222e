package ffmpeg

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Render performs the final encode: burned-in subtitles plus any additional
// filters (the pan/zoom effect among them), on top of the stitched input.
func (e *Executor) Render(ctx context.Context, opts RenderOptions) error {
	if opts.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if opts.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if opts.CRF < 0 || opts.CRF > 51 {
		return fmt.Errorf("CRF must be between 0 and 51")
	}

	e.logger.Info().
		Str("input", opts.Input).
		Str("output", opts.Output).
		Str("subtitles", opts.Subtitles).
		Msg("starting render")

	args := []string{"-i", opts.Input}

	var filters []string
	filters = append(filters, opts.Filters...)
	if opts.Subtitles != "" {
		sub := fmt.Sprintf("subtitles=%s", escapeSubtitlePath(opts.Subtitles))
		if opts.SubtitleStyle != "" {
			sub += fmt.Sprintf(":force_style='%s'", opts.SubtitleStyle)
		}
		filters = append(filters, sub)
	}
	if len(filters) > 0 {
		args = append(args, "-vf", strings.Join(filters, ","))
	}

	videoCodec := opts.VideoCodec
	if videoCodec == "" {
		videoCodec = DefaultVideoCodec
	}
	crf := opts.CRF
	if crf == 0 {
		crf = DefaultCRF
	}
	preset := opts.Preset
	if preset == "" {
		preset = DefaultPreset
	}
	audioCodec := opts.AudioCodec
	if audioCodec == "" {
		audioCodec = "copy"
	}

	args = append(args,
		"-c:v", videoCodec,
		"-crf", fmt.Sprintf("%d", crf),
		"-preset", preset,
		"-c:a", audioCodec,
		opts.Output,
	)

	runOpts := RunOptions{
		Args:            args,
		ProgressHandler: opts.ProgressFunc,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("render output")
		},
	}

	if err := e.Run(ctx, runOpts); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	e.logger.Info().Str("output", opts.Output).Msg("render completed")
	return nil
}

// escapeSubtitlePath escapes the subtitle file path for ffmpeg filters
func escapeSubtitlePath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	// Windows: forward slashes and an escaped drive-letter colon
	if runtime.GOOS == "windows" {
		absPath = strings.ReplaceAll(absPath, "\\", "/")
		if len(absPath) >= 2 && absPath[1] == ':' {
			absPath = absPath[0:1] + "\\:" + absPath[2:]
		}
	}

	escaped := strings.ReplaceAll(absPath, ":", "\\:")
	escaped = strings.ReplaceAll(escaped, "'", "\\'")

	return escaped
}
