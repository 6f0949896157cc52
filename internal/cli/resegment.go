package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/subsplit/internal/subtitle"
	"github.com/spf13/cobra"
)

var resegmentCmd = &cobra.Command{
	Use:   "resegment [subtitle_or_video_file]",
	Short: "Split long subtitle lines and renumber the document",
	Long: `Rewrite an SRT file so every line fits the reading budget.

Each entry is split at sentence punctuation first, then at the last space
that fits. Chinese entries use max-line-length times chinese-ratio as their
budget. The entry's time range is divided equally across its lines.

Video files are accepted too: the selected subtitle stream is extracted with
ffmpeg before resegmenting.

Examples:
  subsplit resegment movie.srt
  subsplit resegment movie.srt -m 32 -o short.srt
  subsplit resegment movie.zh.srt --chinese-ratio 0.6 --encoding gbk
  subsplit resegment movie.mkv --stream 1
  subsplit resegment movie.srt --strategy length --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runResegment,
}

func init() {
	rootCmd.AddCommand(resegmentCmd)

	addResegmentFlags(resegmentCmd)
	resegmentCmd.Flags().
		String("suffix", "", "Suffix for the derived output name (default from config: resegmented)")
	resegmentCmd.Flags().
		Bool("strict", false, "Fail when the input has malformed blocks or unsplittable tokens")
	resegmentCmd.Flags().
		Bool("stdout", false, "Write the result to stdout instead of a file")
}

func runResegment(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}
	opts := engine.Options()

	document, err := loadDocument(cmd.Context(), cmd, inputPath)
	if err != nil {
		return err
	}

	logger.Infow("Resegmenting subtitles",
		"input", inputPath,
		"max_line_length", opts.MaxLineLength,
		"chinese_ratio", opts.ChineseRatio,
		"strategy", opts.Strategy,
	)

	result := engine.Process(document)
	for _, entry := range result.Entries {
		logger.Debugw("Entry resegmented",
			"entry", entry.Entry.Index,
			"script", entry.Script,
			"budget", entry.Budget,
			"duration", entry.Entry.Duration().Duration(),
			"lines", len(entry.Lines),
		)
	}
	logAnomalies(result)

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && len(result.Anomalies) > 0 {
		return fmt.Errorf("%d anomalies found in %s", len(result.Anomalies), inputPath)
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	if toStdout {
		_, err := fmt.Fprint(cmd.OutOrStdout(), result.Output)
		return err
	}

	outputPath, err := resolveOutputPath(cmd, inputPath)
	if err != nil {
		return err
	}
	if err := subtitle.WriteFile(outputPath, result.Output); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Resegmented %d entries into %d cues: %s\n",
		len(result.Entries), len(result.Cues), absOutput)
	return nil
}

// explicit -o wins, otherwise input name plus suffix; never the input itself
func resolveOutputPath(cmd *cobra.Command, inputPath string) (string, error) {
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		suffix := cfg.Output.Suffix
		if cmd.Flags().Changed("suffix") {
			suffix, _ = cmd.Flags().GetString("suffix")
		}
		outputPath = subtitle.DerivedPath(inputPath, suffix)
	}

	if samePath(outputPath, inputPath) {
		return "", fmt.Errorf("refusing to overwrite input %s: pass -o or a non-empty --suffix", inputPath)
	}
	return outputPath, nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
