package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/subsplit/internal/media"
	"github.com/mgpai22/subsplit/internal/resegment"
	"github.com/mgpai22/subsplit/internal/splitter"
	"github.com/mgpai22/subsplit/internal/subtitle"
	"github.com/spf13/cobra"
)

// registers the flags shared by commands that run the resegmenter
func addResegmentFlags(cmd *cobra.Command) {
	cmd.Flags().
		IntP("max-line-length", "m", splitter.DefaultMaxLineLength, "Maximum characters per Latin line")
	cmd.Flags().
		Float64P("chinese-ratio", "r", splitter.DefaultChineseRatio, "Fraction of the line budget used for Chinese text")
	cmd.Flags().
		StringP("strategy", "s", string(splitter.StrategyPunctuationFirst), "Split strategy (punctuation, length)")
	cmd.Flags().
		StringP("encoding", "e", "", "Charset of the input file when it has no byte order mark (e.g. gbk, big5)")
	cmd.Flags().
		Int("stream", 0, "Subtitle stream index when the input is a video file")
}

// config values, overridden by any flag set on the command line
func resegmentOptions(cmd *cobra.Command) resegment.Options {
	opts := cfg.ResegmentOptions()
	flags := cmd.Flags()

	if flags.Changed("max-line-length") {
		opts.MaxLineLength, _ = flags.GetInt("max-line-length")
	}
	if flags.Changed("chinese-ratio") {
		opts.ChineseRatio, _ = flags.GetFloat64("chinese-ratio")
	}
	if flags.Changed("strategy") {
		strategy, _ := flags.GetString("strategy")
		opts.Strategy = splitter.Strategy(strings.ToLower(strings.TrimSpace(strategy)))
	}
	return opts
}

func newEngine(cmd *cobra.Command) (*resegment.Engine, error) {
	engine, err := resegment.New(resegmentOptions(cmd))
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return engine, nil
}

// reads the input document, pulling the subtitle stream out of video files first
func loadDocument(ctx context.Context, cmd *cobra.Command, inputPath string) (string, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", inputPath)
	}

	if media.IsVideoFile(inputPath) {
		return extractDocument(ctx, cmd, inputPath)
	}

	if !subtitle.IsSubtitleFile(inputPath) {
		logger.Warnw("Input does not have an .srt extension, parsing as SRT anyway",
			"input", inputPath)
	}

	encoding := cfg.Input.Encoding
	if cmd.Flags().Changed("encoding") {
		encoding, _ = cmd.Flags().GetString("encoding")
	}

	document, err := subtitle.ReadFile(inputPath, encoding)
	if err != nil {
		return "", err
	}
	return document, nil
}

func extractDocument(ctx context.Context, cmd *cobra.Command, videoPath string) (string, error) {
	tempDir, err := os.MkdirTemp("", "subsplit-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	stream := subtitleStream(cmd)
	srtPath := filepath.Join(tempDir, "stream.srt")

	logger.Infow("Extracting subtitle stream from video",
		"video", videoPath,
		"stream", stream,
	)
	if err := media.ExtractSubtitle(ctx, videoPath, srtPath, media.ExtractOptions{
		Stream:     stream,
		FFmpegPath: cfg.Media.FFmpegPath,
	}); err != nil {
		return "", fmt.Errorf("failed to extract subtitles: %w", err)
	}

	// ffmpeg always writes UTF-8
	return subtitle.ReadFile(srtPath, "")
}

func subtitleStream(cmd *cobra.Command) int {
	if cmd.Flags().Changed("stream") {
		stream, _ := cmd.Flags().GetInt("stream")
		return stream
	}
	return cfg.Media.SubtitleStream
}

func logAnomalies(result *resegment.Result) {
	for _, a := range result.Anomalies {
		logger.Warnw(a.String(), "kind", a.Kind, "entry", a.Index)
	}
}
