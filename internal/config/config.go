package config

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/clipstitch/clipstitch/internal/captions"
	"github.com/clipstitch/clipstitch/internal/timeline"
	"github.com/clipstitch/clipstitch/pkg/util"
)

type contextKey string

const configKey contextKey = "config"

// Config holds all application configuration
type Config struct {
	// Core settings
	WorkDir     string `yaml:"work_dir"`
	OutputDir   string `yaml:"output_dir"`
	LibraryDir  string `yaml:"library_dir"`
	Concurrency int    `yaml:"concurrency"`

	Timeline TimelineConfig `yaml:"timeline"`
	Captions CaptionConfig  `yaml:"captions"`
	Effect   EffectConfig   `yaml:"effect"`
	Output   OutputConfig   `yaml:"output"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
}

// TimelineConfig controls cutaway scheduling and composition.
type TimelineConfig struct {
	StartBuffer       float64 `yaml:"start_buffer"`        // seconds kept cutaway-free at the head
	EndBuffer         float64 `yaml:"end_buffer"`          // seconds kept cutaway-free at the tail
	MaxCutawaySeconds float64 `yaml:"max_cutaway_seconds"` // cap on each cutaway's used duration
	CutawayCount      int     `yaml:"cutaway_count"`
	SampleSeed        int64   `yaml:"sample_seed"` // 0 = derive from clock
}

// CaptionConfig controls caption cue grouping and styling.
type CaptionConfig struct {
	ChunkSize    int    `yaml:"chunk_size"`
	FontName     string `yaml:"font_name"`
	FontSize     int    `yaml:"font_size"`
	OutlineWidth int    `yaml:"outline_width"`
}

// EffectConfig tunes the pan/zoom parameterizer.
type EffectConfig struct {
	ZoomDelta float64 `yaml:"zoom_delta"`
	RampIn    float64 `yaml:"ramp_in"`
	RampOut   float64 `yaml:"ramp_out"`
}

// OutputConfig describes the target output frame.
type OutputConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FPS    float64 `yaml:"fps"`
}

type FFmpegConfig struct {
	Threads int    `yaml:"threads"`
	Preset  string `yaml:"preset"`
	CRF     int    `yaml:"crf"`
}

// Load reads configuration from file or returns defaults. A .env file, if
// present, is loaded first so environment overrides apply on top of the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// Save writes configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func defaultConfig() *Config {
	return &Config{
		WorkDir:     "./work",
		OutputDir:   "./out",
		LibraryDir:  "./broll",
		Concurrency: 4,
		Timeline: TimelineConfig{
			StartBuffer:       timeline.DefaultStartBuffer,
			EndBuffer:         timeline.DefaultEndBuffer,
			MaxCutawaySeconds: timeline.DefaultMaxCutawaySeconds,
			CutawayCount:      2,
		},
		Captions: CaptionConfig{
			ChunkSize:    captions.DefaultChunkSize,
			FontName:     "Arial",
			FontSize:     24,
			OutlineWidth: 2,
		},
		Effect: EffectConfig{
			ZoomDelta: 0.15,
			RampIn:    0.5,
			RampOut:   0.5,
		},
		Output: OutputConfig{
			Width:  1080,
			Height: 1920,
			FPS:    30,
		},
		FFmpeg: FFmpegConfig{
			Threads: 0,
			Preset:  "medium",
			CRF:     23,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLIPSTITCH_WORK_DIR"); v != "" {
		cfg.WorkDir = v
	}
	if v := os.Getenv("CLIPSTITCH_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("CLIPSTITCH_LIBRARY_DIR"); v != "" {
		cfg.LibraryDir = v
	}
	if v := os.Getenv("CLIPSTITCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}
}

func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		"./config.yml",
		filepath.Join(os.Getenv("HOME"), ".clipstitch", "config.yaml"),
	}

	for _, path := range candidates {
		if util.FileExists(path) {
			return path
		}
	}

	return ""
}

// WithConfig stores config in context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
