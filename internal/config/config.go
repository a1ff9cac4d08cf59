// Package config provides Viper-based configuration loading for the game.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// BoardConfig holds grid dimensions.
type BoardConfig struct {
	// Width is the number of columns on the board.
	Width int `mapstructure:"width"`
	// Height is the number of rows on the board.
	Height int `mapstructure:"height"`
}

// PlayerConfig holds player creation settings.
type PlayerConfig struct {
	// Race is the player's race name, matched case-insensitively.
	Race string `mapstructure:"race"`
}

// GameConfig holds rule pacing settings.
type GameConfig struct {
	// CommandsPerTimeSwitch is the number of accepted commands between
	// day/night flips.
	CommandsPerTimeSwitch int `mapstructure:"commands_per_time_switch"`
}

// ContentConfig holds paths to data-driven content definitions. Empty paths
// fall back to the built-in defaults.
type ContentConfig struct {
	// ItemsDir is a directory of item definition YAML files.
	ItemsDir string `mapstructure:"items_dir"`
	// RacesFile is a YAML file holding the race stat table.
	RacesFile string `mapstructure:"races_file"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Board   BoardConfig   `mapstructure:"board"`
	Player  PlayerConfig  `mapstructure:"player"`
	Game    GameConfig    `mapstructure:"game"`
	Content ContentConfig `mapstructure:"content"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateBoard(c.Board); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePlayer(c.Player); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateBoard(b BoardConfig) error {
	var errs []string
	if b.Width < 1 {
		errs = append(errs, fmt.Sprintf("board.width must be >= 1, got %d", b.Width))
	}
	if b.Height < 1 {
		errs = append(errs, fmt.Sprintf("board.height must be >= 1, got %d", b.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePlayer(p PlayerConfig) error {
	if p.Race == "" {
		return fmt.Errorf("player.race must not be empty")
	}
	return nil
}

func validateGame(g GameConfig) error {
	if g.CommandsPerTimeSwitch < 1 {
		return fmt.Errorf("game.commands_per_time_switch must be >= 1, got %d", g.CommandsPerTimeSwitch)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with GRIDQUEST_ prefix
	v.SetEnvPrefix("GRIDQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.width", 10)
	v.SetDefault("board.height", 10)

	v.SetDefault("player.race", "human")

	v.SetDefault("game.commands_per_time_switch", 5)

	v.SetDefault("content.items_dir", "")
	v.SetDefault("content.races_file", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
