// Package config loads, normalizes, and validates subsplit configuration.
//
// Values come from repository defaults, then one optional TOML file: the
// --config path, else ./subsplit.toml, else subsplit/config.toml under the
// user config directory (~/.config on Linux). The
// SUBSPLIT_FFMPEG_PATH environment variable. Command-line flags are applied on
// top by the cli package.
package config
