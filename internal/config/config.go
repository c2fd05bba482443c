// Package config resolves the shell's startup configuration from built-in
// defaults, an optional ~/.takt/config.json and TAKT_* environment
// variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"takt/internal/icon"
	"takt/internal/shell"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	keyHorizontalOffset = "tray.horizontal_offset"
	keyVerticalAnchor   = "tray.vertical_anchor"
	keyIconSize         = "tray.icon_size"
	keyFailurePolicy    = "failure_policy"
	keyRelayAddr        = "relay.addr"
	keyDebug            = "debug"
)

type Config struct {
	Placement     shell.Placement
	IconSize      int
	FailurePolicy shell.FailurePolicy
	// RelayAddr is the loopback address of the recording relay; empty
	// disables it.
	RelayAddr string
	Debug     bool
}

// Load reads .env from the working directory if present, then resolves
// the configuration with the config file found in the user's ~/.takt.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	v := viper.New()
	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	} else {
		slog.Warn("no config directory", "error", err)
	}
	return load(v)
}

// Dir returns the directory holding config.json.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".takt"), nil
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("json")

	v.SetDefault(keyHorizontalOffset, shell.DefaultHorizontalOffset)
	v.SetDefault(keyVerticalAnchor, shell.AnchorClick.String())
	v.SetDefault(keyIconSize, icon.DefaultSize)
	v.SetDefault(keyFailurePolicy, shell.FailAbort.String())
	v.SetDefault(keyRelayAddr, "")
	v.SetDefault(keyDebug, false)

	v.SetEnvPrefix("takt")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	anchor, err := shell.ParseVerticalAnchor(v.GetString(keyVerticalAnchor))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyVerticalAnchor, err)
	}

	policy, err := shell.ParseFailurePolicy(v.GetString(keyFailurePolicy))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyFailurePolicy, err)
	}

	iconSize := v.GetInt(keyIconSize)
	if iconSize <= 0 {
		return nil, fmt.Errorf("%s: must be positive, got %d", keyIconSize, iconSize)
	}

	return &Config{
		Placement: shell.Placement{
			HorizontalOffset: v.GetInt(keyHorizontalOffset),
			Anchor:           anchor,
		},
		IconSize:      iconSize,
		FailurePolicy: policy,
		RelayAddr:     v.GetString(keyRelayAddr),
		Debug:         v.GetBool(keyDebug),
	}, nil
}
