package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/subsplit/internal/media"
	"github.com/mgpai22/subsplit/internal/subtitle"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract a subtitle stream from a video file as SRT",
	Long: `Extract one embedded subtitle stream from a video file and save it as an
SRT file without resegmenting it.

Streams are numbered from 0 among the subtitle streams of the file.

Examples:
  subsplit extract movie.mkv
  subsplit extract movie.mkv --stream 1 -o movie.en.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		Int("stream", 0, "Subtitle stream index (0 = first subtitle stream)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	if !media.IsVideoFile(videoPath) {
		return fmt.Errorf("unsupported file type: %s (expected video file)", filepath.Ext(videoPath))
	}
	outputPath, err := extractOutputPath(cmd, videoPath)
	if err != nil {
		return err
	}

	stream := subtitleStream(cmd)
	logger.Infow("Extracting subtitles",
		"video", videoPath,
		"output", outputPath,
		"stream", stream,
	)

	if err := media.ExtractSubtitle(cmd.Context(), videoPath, outputPath, media.ExtractOptions{
		Stream:     stream,
		FFmpegPath: cfg.Media.FFmpegPath,
	}); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles extracted successfully: %s\n", absOutput)
	return nil
}

// an explicit -o may replace an existing file; the derived sibling never does
func extractOutputPath(cmd *cobra.Command, videoPath string) (string, error) {
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = subtitle.DerivedPath(videoPath, "")
		if _, err := os.Stat(outputPath); err == nil {
			return "", fmt.Errorf("refusing to overwrite existing %s: pass -o to choose the output", outputPath)
		}
	}
	if !strings.EqualFold(filepath.Ext(outputPath), subtitle.GetExtensionForFormat(subtitle.FormatSRT)) {
		return "", fmt.Errorf("output must be an .srt file, got %s", outputPath)
	}
	return outputPath, nil
}
