package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		TickMS: 128,
		Field: FieldConfig{
			Margin:       core.DefaultMargin,
			ResizePolicy: "defer",
		},
		Apple: AppleConfig{
			MaxAttempts: game.DefaultMaxAppleAttempts,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
		Storage: StorageConfig{
			DBPath: "~/.snake/scores.db",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
