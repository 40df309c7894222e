package ffmpeg

import "time"

// VideoInfo contains metadata about a video file
type VideoInfo struct {
	FilePath   string
	Duration   time.Duration
	Width      int
	Height     int
	FPS        float64
	Bitrate    int64
	VideoCodec string
	HasAudio   bool
	AudioCodec string
}

// Progress represents ffmpeg progress data
type Progress struct {
	Frame int
	FPS   float64
	Time  string
	Speed string
}

// RunOptions configures ffmpeg execution
type RunOptions struct {
	Args            []string
	ProgressHandler func(*Progress)
	LogHandler      func(line string)
}

// ProgressFunc is a callback for progress updates during ffmpeg operations.
type ProgressFunc func(*Progress)

// Default encoding settings
const (
	DefaultCRF        = 23
	DefaultPreset     = "medium"
	DefaultVideoCodec = "libx264"
	DefaultAudioCodec = "aac"
)

// SegmentOptions configures video-only extraction of one timeline segment.
// Width/Height of zero keep the source frame; otherwise the segment is
// scaled and padded to fit the target frame exactly.
type SegmentOptions struct {
	Start        time.Duration
	Duration     time.Duration
	Output       string
	Width        int
	Height       int
	VideoCodec   string
	CRF          int
	Preset       string
	ProgressFunc ProgressFunc
}

// ConcatOptions defines concatenation parameters
type ConcatOptions struct {
	Inputs       []string
	Output       string
	ReEncode     bool
	VideoCodec   string
	CRF          int
	ProgressFunc ProgressFunc
}

// RenderOptions configures the final render pass.
type RenderOptions struct {
	Input         string
	Output        string
	Subtitles     string
	SubtitleStyle string // libass force_style, e.g. "FontName=Arial,FontSize=24"
	Filters       []string
	VideoCodec    string
	AudioCodec    string
	CRF           int
	Preset        string
	ProgressFunc  ProgressFunc
}
