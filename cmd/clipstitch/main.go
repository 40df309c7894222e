package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/clipstitch/clipstitch/internal/captions"
	"github.com/clipstitch/clipstitch/internal/config"
	"github.com/clipstitch/clipstitch/internal/ffmpeg"
	"github.com/clipstitch/clipstitch/internal/logging"
	"github.com/clipstitch/clipstitch/internal/pipeline"
)

var (
	cfgFile string
	verbose bool

	transcriptPath string
	cutawayCount   int
	sampleSeed     int64
	chunkSize      int
	captionsOut    string
	audioOut       string
)

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clipstitch",
	Short: "clipstitch - short-form video assembler",
	Long:  "Assembles a vertical short from a talking-head clip: B-roll cutaways, word-synced captions, and a deterministic pan/zoom effect, rendered through ffmpeg.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(verbose)

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		ctx := config.WithConfig(cmd.Context(), cfg)
		cmd.SetContext(ctx)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	composeCmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "word-level transcript JSON")
	composeCmd.Flags().IntVarP(&cutawayCount, "cutaways", "n", -1, "number of B-roll cutaways (default from config)")
	composeCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "clip sampling seed (0 = random)")

	planCmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "word-level transcript JSON")
	planCmd.Flags().IntVarP(&cutawayCount, "cutaways", "n", -1, "number of B-roll cutaways (default from config)")
	planCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "clip sampling seed (0 = random)")

	captionsCmd.Flags().StringVarP(&captionsOut, "out", "o", "captions.srt", "output SRT path")
	captionsCmd.Flags().IntVar(&chunkSize, "chunk", 0, "words per caption cue (default from config)")

	extractAudioCmd.Flags().StringVarP(&audioOut, "out", "o", "", "output WAV path (default: input with .wav extension)")

	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(captionsCmd)
	rootCmd.AddCommand(extractAudioCmd)
	rootCmd.AddCommand(configCmd)
}

func buildRequest(cfg *config.Config, input string) pipeline.ComposeRequest {
	count := cutawayCount
	if count < 0 {
		count = cfg.Timeline.CutawayCount
	}
	seed := sampleSeed
	if seed == 0 {
		seed = cfg.Timeline.SampleSeed
	}
	return pipeline.ComposeRequest{
		Input:        input,
		Transcript:   transcriptPath,
		CutawayCount: count,
		Seed:         seed,
	}
}

var composeCmd = &cobra.Command{
	Use:   "compose [input video]",
	Short: "Assemble the final short from a talking-head video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		pipe, err := pipeline.New(log.Logger, cfg)
		if err != nil {
			return err
		}

		handle, err := pipe.Compose(cmd.Context(), buildRequest(cfg, args[0]))
		if err != nil {
			return err
		}

		log.Info().Str("output", handle).Msg("composition complete")
		fmt.Println(handle)
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan [input video]",
	Short: "Compute and print the composition plan without rendering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		pipe, err := pipeline.New(log.Logger, cfg)
		if err != nil {
			return err
		}

		plan, err := pipe.Plan(cmd.Context(), buildRequest(cfg, args[0]))
		if err != nil {
			return err
		}

		fmt.Printf("request %s: %s (%.2fs)\n", plan.RequestID, plan.Source.Path, plan.Source.Duration)
		for i, p := range plan.Points {
			fmt.Printf("  cutaway %d at %.3fs\n", i+1, p)
		}
		for i, s := range plan.Segments {
			fmt.Printf("  segment %d: %-7s %s [%.3fs +%.3fs]\n", i, s.Kind, s.SourceRef, s.SourceOffset, s.Duration)
		}
		fmt.Printf("  %d caption cues\n", len(plan.Cues))
		return nil
	},
}

var captionsCmd = &cobra.Command{
	Use:   "captions [transcript json]",
	Short: "Convert a word-level transcript into an SRT caption file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		words, err := captions.LoadTranscript(args[0])
		if err != nil {
			return err
		}

		size := chunkSize
		if size < 1 {
			size = cfg.Captions.ChunkSize
		}
		cues, err := captions.BuildCues(words, size)
		if err != nil {
			return err
		}

		if err := captions.WriteSRT(captionsOut, cues); err != nil {
			return err
		}

		log.Info().Int("cues", len(cues)).Str("output", captionsOut).Msg("captions written")
		return nil
	},
}

var extractAudioCmd = &cobra.Command{
	Use:   "extract-audio [input video]",
	Short: "Extract the soundtrack as 16kHz mono WAV for transcription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		exe, err := ffmpeg.New(logging.WithComponent("ffmpeg"), cfg.FFmpeg.Threads)
		if err != nil {
			return err
		}

		out := audioOut
		if out == "" {
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".wav"
		}

		if err := exe.ExtractAudio(cmd.Context(), args[0], out, ffmpeg.DefaultTranscriptionFormat(), nil); err != nil {
			return err
		}

		log.Info().Str("output", out).Msg("audio extracted")
		fmt.Println(out)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Config management commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the active configuration to a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		path := "./config.yaml"
		if len(args) > 0 {
			path = args[0]
		}

		if err := cfg.Save(path); err != nil {
			return err
		}

		log.Info().Str("path", path).Msg("config written")
		return nil
	},
}
