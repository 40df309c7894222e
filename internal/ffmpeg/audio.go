package ffmpeg

import (
	"context"
	"fmt"
)

// AudioFormat defines audio extraction format options
type AudioFormat struct {
	Codec      string
	SampleRate int
	Channels   int
}

// DefaultTranscriptionFormat returns the format speech-to-text services
// expect: 16kHz mono PCM.
func DefaultTranscriptionFormat() AudioFormat {
	return AudioFormat{
		Codec:      "pcm_s16le",
		SampleRate: 16000,
		Channels:   1,
	}
}

// ExtractAudio extracts the audio stream to a separate file.
func (e *Executor) ExtractAudio(ctx context.Context, input, output string, format AudioFormat, progressFunc ProgressFunc) error {
	e.logger.Info().
		Str("input", input).
		Str("output", output).
		Str("codec", format.Codec).
		Msg("extracting audio")

	args := []string{
		"-i", input,
		"-vn",
		"-acodec", format.Codec,
	}
	if format.SampleRate > 0 {
		args = append(args, "-ar", fmt.Sprintf("%d", format.SampleRate))
	}
	if format.Channels > 0 {
		args = append(args, "-ac", fmt.Sprintf("%d", format.Channels))
	}
	args = append(args, output)

	opts := RunOptions{
		Args:            args,
		ProgressHandler: progressFunc,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("audio extraction")
		},
	}

	return e.Run(ctx, opts)
}

// MuxAudio attaches the audio track of audioSource to the video track of
// videoSource. Both streams are copied untouched; if the output container
// rejects the source audio codec, the audio is re-encoded as a fallback.
// -shortest truncates to the shorter stream when the two disagree by
// rounding error.
func (e *Executor) MuxAudio(ctx context.Context, videoSource, audioSource, output string, progressFunc ProgressFunc) error {
	if videoSource == "" || audioSource == "" || output == "" {
		return fmt.Errorf("video, audio, and output paths are required")
	}

	e.logger.Info().
		Str("video", videoSource).
		Str("audio", audioSource).
		Str("output", output).
		Msg("reattaching audio")

	logHandler := func(line string) {
		e.logger.Debug().Str("ffmpeg", line).Msg("audio mux")
	}

	err := e.Run(ctx, RunOptions{
		Args:            muxArgs(videoSource, audioSource, output, "copy"),
		ProgressHandler: progressFunc,
		LogHandler:      logHandler,
	})
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		e.logger.Warn().Err(err).
			Str("codec", DefaultAudioCodec).
			Msg("audio stream copy failed, re-encoding")
		err = e.Run(ctx, RunOptions{
			Args:            muxArgs(videoSource, audioSource, output, DefaultAudioCodec),
			ProgressHandler: progressFunc,
			LogHandler:      logHandler,
		})
	}
	if err != nil {
		return fmt.Errorf("audio mux failed: %w", err)
	}

	e.logger.Info().Str("output", output).Msg("audio reattached")
	return nil
}

func muxArgs(videoSource, audioSource, output, audioCodec string) []string {
	return []string{
		"-i", videoSource,
		"-i", audioSource,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "copy",
		"-c:a", audioCodec,
		"-shortest",
		output,
	}
}
