package config

import "github.com/mgpai22/subsplit/internal/splitter"

const (
	appName               = "subsplit"
	userConfigName        = "config.toml"
	projectConfigName     = "subsplit.toml"
	defaultOutputSuffix   = "resegmented"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultSubtitleStream = 0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Resegment: Resegment{
			MaxLineLength: splitter.DefaultMaxLineLength,
			ChineseRatio:  splitter.DefaultChineseRatio,
			Strategy:      string(splitter.StrategyPunctuationFirst),
		},
		Output: Output{
			Suffix: defaultOutputSuffix,
		},
		Media: Media{
			SubtitleStream: defaultSubtitleStream,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
