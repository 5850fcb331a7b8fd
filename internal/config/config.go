// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Config contains all settings for the game and its frontends.
type Config struct {
	TickMS  int           `yaml:"tick_ms"`
	Field   FieldConfig   `yaml:"field"`
	Apple   AppleConfig   `yaml:"apple"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// FieldConfig defines playfield parameters.
type FieldConfig struct {
	Margin       int    `yaml:"margin"`
	ResizePolicy string `yaml:"resize_policy"` // "defer" or "strict"
}

// AppleConfig defines apple placement parameters.
type AppleConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// StorageConfig defines where score history is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the SSH server parameters.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// TickRate returns the time between simulation steps.
func (c Config) TickRate() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMinutes) * time.Minute
}

// ResizePolicy returns the parsed resize policy.
func (c Config) ResizePolicy() (game.ResizePolicy, error) {
	return game.ParseResizePolicy(c.Field.ResizePolicy)
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}

// GameOptions builds the simulation options for a new game state.
func (c Config) GameOptions(seed int64) (game.Options, error) {
	policy, err := c.ResizePolicy()
	if err != nil {
		return game.Options{}, err
	}
	return game.Options{
		Seed:             seed,
		MaxAppleAttempts: c.Apple.MaxAttempts,
		ResizePolicy:     policy,
	}, nil
}

// Validate checks that the configuration can run a game.
func (c Config) Validate() error {
	if c.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.TickMS)
	}
	if c.Field.Margin <= 0 {
		return fmt.Errorf("config: field.margin must be positive, got %d", c.Field.Margin)
	}
	if c.Apple.MaxAttempts <= 0 {
		return fmt.Errorf("config: apple.max_attempts must be positive, got %d", c.Apple.MaxAttempts)
	}
	if _, err := c.ResizePolicy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
