package config

import (
	"errors"
	"fmt"

	"github.com/mgpai22/subsplit/internal/splitter"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateResegment(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.validateMedia(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.validateLogging(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func (c *Config) validateResegment() error {
	if err := c.ResegmentOptions().Validate(); err != nil {
		return fmt.Errorf("resegment: %w", err)
	}
	switch splitter.Strategy(c.Resegment.Strategy) {
	case splitter.StrategyPunctuationFirst, splitter.StrategyLengthOnly:
	default:
		return fmt.Errorf("resegment.strategy must be %q or %q, got %q",
			splitter.StrategyPunctuationFirst, splitter.StrategyLengthOnly, c.Resegment.Strategy)
	}
	return nil
}

func (c *Config) validateMedia() error {
	if c.Media.SubtitleStream < 0 {
		return errors.New("media.subtitle_stream must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
