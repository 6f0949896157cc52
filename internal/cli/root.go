package cli

import (
	"context"
	"fmt"

	"github.com/mgpai22/subsplit/internal/config"
	"github.com/mgpai22/subsplit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configFlag string

	cfg        *config.Config
	configPath string
	configSeen bool
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subsplit",
	Short: "Resegment SRT subtitles into readable lines",
	Long: `Subsplit rewrites SRT subtitle files so that no line is longer than a
configurable reading budget.

Long entries are split at sentence punctuation first and at word boundaries
after that. Chinese text gets a tighter budget than Latin text. Each entry's
time range is shared equally across its new lines and the whole document is
renumbered.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, path, exists, err := config.Load(configFlag)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg, configPath, configSeen = loaded, path, exists

		opts := logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format}
		if verbose {
			opts.Level = "debug"
		}
		logger, err = logging.New(opts)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		if exists {
			logger.Debugw("Loaded config", "path", path)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command; cancelling ctx stops a running ffmpeg.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configFlag, "config", "c", "", "Config file path (default ./subsplit.toml, then ~/.config/subsplit/config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
