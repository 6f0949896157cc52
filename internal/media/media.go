package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FFmpegPathEnv overrides ffmpeg lookup when no path is configured.
const FFmpegPathEnv = "SUBSPLIT_FFMPEG_PATH"

var ErrFFmpegNotFound = errors.New("ffmpeg not found")

// checks if the file is a video container ffmpeg can read subtitles from
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	videoExts := map[string]bool{
		".mp4":  true,
		".mkv":  true,
		".avi":  true,
		".mov":  true,
		".wmv":  true,
		".flv":  true,
		".webm": true,
		".m4v":  true,
		".mpeg": true,
		".mpg":  true,
		".ts":   true,
	}
	return videoExts[ext]
}

// resolves the ffmpeg binary: configured path, then env override, then PATH
func FFmpegPath(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("configured ffmpeg %s: %w", configured, err)
		}
		return configured, nil
	}
	if env := os.Getenv(FFmpegPathEnv); env != "" {
		if _, err := os.Stat(env); err != nil {
			return "", fmt.Errorf("%s=%s: %w", FFmpegPathEnv, env, err)
		}
		return env, nil
	}
	found, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf("%w: install ffmpeg or set %s", ErrFFmpegNotFound, FFmpegPathEnv)
	}
	return found, nil
}

// ExtractOptions selects which subtitle stream to pull out of a container.
type ExtractOptions struct {
	// zero-based index among subtitle streams
	Stream     int
	FFmpegPath string
}

func subtitleKwArgs(stream int) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", stream),
		"c:s": "srt",
	}
}

// builds the ffmpeg invocation without running it
func extractArgs(videoPath, outputPath string, stream int) []string {
	return ffmpeg.Input(videoPath).
		Output(outputPath, subtitleKwArgs(stream)).
		OverWriteOutput().
		GetArgs()
}

// ExtractSubtitle converts one embedded subtitle stream to an SRT file.
func ExtractSubtitle(
	ctx context.Context,
	videoPath, outputPath string,
	opts ExtractOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if opts.Stream < 0 {
		return fmt.Errorf("subtitle stream must be non-negative, got %d", opts.Stream)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := FFmpegPath(opts.FFmpegPath)
	if err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffmpegPath, extractArgs(videoPath, outputPath, opts.Stream)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg subtitle extraction failed: %w: %s", err, lastLine(stderr.String()))
	}

	return nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
