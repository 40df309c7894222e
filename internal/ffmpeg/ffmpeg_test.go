package ffmpeg

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// skipIfNoFFmpeg skips the test if ffmpeg is not available
func skipIfNoFFmpeg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not found in PATH")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not found in PATH")
	}
}

// generateTestVideo renders a short synthetic clip with a sine audio track.
func generateTestVideo(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "source.mp4")
	cmd := exec.Command("ffmpeg",
		"-f", "lavfi", "-i", "testsrc=duration=10:size=320x240:rate=30",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=10",
		"-t", "10",
		"-pix_fmt", "yuv420p", "-y", path)
	if err := cmd.Run(); err != nil {
		t.Skipf("could not generate test video: %v", err)
	}
	return path
}

func TestExecutorCreation(t *testing.T) {
	skipIfNoFFmpeg(t)

	logger := zerolog.New(os.Stderr)
	e, err := New(logger, 4)
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}
	if e.ffmpegPath == "" {
		t.Error("ffmpeg path is empty")
	}
	if e.ffprobePath == "" {
		t.Error("ffprobe path is empty")
	}
}

func TestExtractConcatMux(t *testing.T) {
	skipIfNoFFmpeg(t)

	dir := t.TempDir()
	source := generateTestVideo(t, dir)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	e, err := New(logger, 2)
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}
	ctx := context.Background()

	info, err := e.ProbeVideo(ctx, source)
	if err != nil {
		t.Fatalf("ProbeVideo failed: %v", err)
	}
	if info.Width != 320 || info.Height != 240 {
		t.Errorf("expected 320x240, got %dx%d", info.Width, info.Height)
	}
	if !info.HasAudio {
		t.Error("expected an audio stream")
	}

	segA := filepath.Join(dir, "seg_a.mp4")
	segB := filepath.Join(dir, "seg_b.mp4")

	if err := e.ExtractSegment(ctx, source, SegmentOptions{
		Start: 0, Duration: 2 * time.Second, Output: segA,
	}); err != nil {
		t.Fatalf("ExtractSegment(a) failed: %v", err)
	}
	if err := e.ExtractSegment(ctx, source, SegmentOptions{
		Start: 5 * time.Second, Duration: 2 * time.Second, Output: segB,
		Width: 320, Height: 240,
	}); err != nil {
		t.Fatalf("ExtractSegment(b) failed: %v", err)
	}

	// Extracted segments must be video-only.
	segInfo, err := e.ProbeVideo(ctx, segA)
	if err != nil {
		t.Fatalf("probe of segment failed: %v", err)
	}
	if segInfo.HasAudio {
		t.Error("segment should not carry audio")
	}

	stitched := filepath.Join(dir, "stitched.mp4")
	if err := e.Concat(ctx, ConcatOptions{Inputs: []string{segA, segB}, Output: stitched}); err != nil {
		t.Fatalf("Concat failed: %v", err)
	}

	muxed := filepath.Join(dir, "muxed.mp4")
	if err := e.MuxAudio(ctx, stitched, source, muxed, nil); err != nil {
		t.Fatalf("MuxAudio failed: %v", err)
	}

	muxInfo, err := e.ProbeVideo(ctx, muxed)
	if err != nil {
		t.Fatalf("probe of muxed output failed: %v", err)
	}
	if !muxInfo.HasAudio {
		t.Error("muxed output lost its audio track")
	}
	// The soundtrack is stream-copied, not re-encoded.
	if muxInfo.AudioCodec != info.AudioCodec {
		t.Errorf("muxed audio codec %q, source was %q", muxInfo.AudioCodec, info.AudioCodec)
	}
	// -shortest truncates to the 4s video track
	if muxInfo.Duration > 5*time.Second {
		t.Errorf("muxed duration %v, expected about 4s", muxInfo.Duration)
	}
}

func TestExtractAudioForTranscription(t *testing.T) {
	skipIfNoFFmpeg(t)

	dir := t.TempDir()
	source := generateTestVideo(t, dir)

	logger := zerolog.New(os.Stderr)
	e, err := New(logger, 2)
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}
	ctx := context.Background()

	out := filepath.Join(dir, "speech.wav")
	if err := e.ExtractAudio(ctx, source, out, DefaultTranscriptionFormat(), nil); err != nil {
		t.Fatalf("ExtractAudio failed: %v", err)
	}

	info, err := e.ProbeVideo(ctx, out)
	if err != nil {
		t.Fatalf("probe of extracted audio failed: %v", err)
	}
	if !info.HasAudio {
		t.Fatal("extracted file has no audio stream")
	}
	if info.AudioCodec != "pcm_s16le" {
		t.Errorf("audio codec %q, expected pcm_s16le", info.AudioCodec)
	}
	if info.Width != 0 {
		t.Errorf("extracted audio should have no video stream, got width %d", info.Width)
	}
}

func TestMuxArgsCopyAudio(t *testing.T) {
	args := muxArgs("video.mp4", "audio.mp4", "out.mp4", "copy")

	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-c:a copy") {
		t.Errorf("expected audio stream copy in %q", joined)
	}
	if !strings.Contains(joined, "-c:v copy") {
		t.Errorf("expected video stream copy in %q", joined)
	}
}

func TestFilterBuilder(t *testing.T) {
	filter := NewFilterBuilder().Scale(1920, 1080).FPS(30).Build()

	expected := "scale=1920:1080,fps=30.000000"
	if filter != expected {
		t.Errorf("expected %q, got %q", expected, filter)
	}
}

func TestFilterBuilderEmpty(t *testing.T) {
	if filter := NewFilterBuilder().Build(); filter != "" {
		t.Errorf("expected empty string, got %q", filter)
	}
}

func TestFilterBuilderFitFrame(t *testing.T) {
	filter := NewFilterBuilder().FitFrame(1080, 1920).Build()

	expected := "scale=1080:1920:force_original_aspect_ratio=decrease,pad=1080:1920:(ow-iw)/2:(oh-ih)/2"
	if filter != expected {
		t.Errorf("expected %q, got %q", expected, filter)
	}
}

func TestFilterBuilderIgnoresInvalidDimensions(t *testing.T) {
	filter := NewFilterBuilder().Scale(0, 1080).FitFrame(-1, 5).Crop(0, 0, 0, 0).Build()
	if filter != "" {
		t.Errorf("expected invalid dimensions to be skipped, got %q", filter)
	}
}

func TestEscapeSubtitlePath(t *testing.T) {
	escaped := escapeSubtitlePath("/tmp/it's here/captions.srt")
	if !strings.Contains(escaped, "\\'") {
		t.Errorf("expected escaped quote in %q", escaped)
	}
}

func TestConcatEntryQuotesSingleQuotes(t *testing.T) {
	entry := concatEntry("/clips/it's.mp4")

	expected := `file '/clips/it'\''s.mp4'`
	if entry != expected {
		t.Errorf("expected %q, got %q", expected, entry)
	}
}

func TestConcatEntryPlainPath(t *testing.T) {
	entry := concatEntry("/clips/broll_001.mp4")
	if entry != "file '/clips/broll_001.mp4'" {
		t.Errorf("unexpected entry %q", entry)
	}
}
