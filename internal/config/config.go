package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mgpai22/subsplit/internal/media"
	"github.com/mgpai22/subsplit/internal/resegment"
	"github.com/mgpai22/subsplit/internal/splitter"
)

//go:embed sample_config.toml
var sampleConfig string

// Resegment contains line-length and strategy settings.
type Resegment struct {
	MaxLineLength int     `toml:"max_line_length"`
	ChineseRatio  float64 `toml:"chinese_ratio"`
	Strategy      string  `toml:"strategy"`
}

// Input contains settings for reading source documents.
type Input struct {
	// IANA charset of files without a byte order mark; empty means UTF-8.
	Encoding string `toml:"encoding"`
}

// Output contains settings for naming written documents.
type Output struct {
	Suffix string `toml:"suffix"`
}

// Media contains settings for extracting subtitle streams from video files.
type Media struct {
	FFmpegPath     string `toml:"ffmpeg_path"`
	SubtitleStream int    `toml:"subtitle_stream"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for subsplit.
type Config struct {
	Resegment Resegment `toml:"resegment"`
	Input     Input     `toml:"input"`
	Output    Output    `toml:"output"`
	Media     Media     `toml:"media"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the per-user config file, which `config init`
// writes when no --config path is given.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, appName, userConfigName), nil
}

// Load locates, parses, and validates a configuration file. It returns the
// resolved path and whether a file was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// resolveConfigPath picks the file Load reads. An explicit path must exist.
// Otherwise ./subsplit.toml shadows the per-user file, and when neither
// exists the per-user path is reported as absent.
func resolveConfigPath(explicit string) (string, bool, error) {
	if explicit != "" {
		path, err := expandPath(explicit)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return "", false, fmt.Errorf("config file not found: %s", path)
		case err != nil:
			return "", false, fmt.Errorf("failed to stat config: %w", err)
		case info.IsDir():
			return "", false, fmt.Errorf("config path is a directory: %s", path)
		}
		return path, true, nil
	}

	userPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	for _, candidate := range []string{projectPath, userPath} {
		if isRegularFile(candidate) {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (c *Config) normalize() error {
	c.Resegment.Strategy = strings.ToLower(strings.TrimSpace(c.Resegment.Strategy))
	if c.Resegment.Strategy == "" {
		c.Resegment.Strategy = string(splitter.StrategyPunctuationFirst)
	}

	c.Input.Encoding = strings.TrimSpace(c.Input.Encoding)
	c.Output.Suffix = strings.Trim(strings.TrimSpace(c.Output.Suffix), ".")

	if env := strings.TrimSpace(os.Getenv(media.FFmpegPathEnv)); env != "" && c.Media.FFmpegPath == "" {
		c.Media.FFmpegPath = env
	}
	if c.Media.FFmpegPath != "" {
		expanded, err := expandPath(c.Media.FFmpegPath)
		if err != nil {
			return fmt.Errorf("media.ffmpeg_path: %w", err)
		}
		c.Media.FFmpegPath = expanded
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// ResegmentOptions converts the [resegment] section into engine options.
func (c *Config) ResegmentOptions() resegment.Options {
	return resegment.Options{
		MaxLineLength: c.Resegment.MaxLineLength,
		ChineseRatio:  c.Resegment.ChineseRatio,
		Strategy:      splitter.Strategy(c.Resegment.Strategy),
	}
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

// ExpandPath applies the same "~/" and absolute-path rules Load uses.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// expandPath makes a user-supplied path absolute, resolving a leading "~/".
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// CreateSample writes the annotated sample config to path, creating parent
// directories. An existing file is kept unless force is set.
func CreateSample(path string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite): %w", path, err)
		}
		return fmt.Errorf("failed to create config file: %w", err)
	}

	if _, err := file.WriteString(sampleConfig); err != nil {
		file.Close()
		return fmt.Errorf("failed to write sample config: %w", err)
	}
	return file.Close()
}
