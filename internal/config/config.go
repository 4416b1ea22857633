// Package config provides configuration management for Pomodoro Kids.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	FirstRun      bool               `mapstructure:"first_run"`
	Defaults      DefaultsConfig     `mapstructure:"defaults"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
}

// DefaultsConfig holds the block lengths applied when a saved profile
// omits them.
type DefaultsConfig struct {
	FocusMinutes          int `mapstructure:"focus_minutes"`
	BreakMinutes          int `mapstructure:"break_minutes"`
	AlertBeforeEndMinutes int `mapstructure:"alert_before_end_minutes"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		FirstRun: true,
		Defaults: DefaultsConfig{
			FocusMinutes:          25,
			BreakMinutes:          5,
			AlertBeforeEndMinutes: 5,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Storage: StorageConfig{
			DataDir: "~/.pomokids",
		},
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.pomokids" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".pomokids")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("first_run", cfg.FirstRun)
	viper.Set("defaults.focus_minutes", cfg.Defaults.FocusMinutes)
	viper.Set("defaults.break_minutes", cfg.Defaults.BreakMinutes)
	viper.Set("defaults.alert_before_end_minutes", cfg.Defaults.AlertBeforeEndMinutes)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomokids", "config.toml"), nil
}

// GetStatePath returns the path to the state document.
func GetStatePath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "state.json")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("first_run", true)
	viper.SetDefault("defaults.focus_minutes", 25)
	viper.SetDefault("defaults.break_minutes", 5)
	viper.SetDefault("defaults.alert_before_end_minutes", 5)
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("storage.data_dir", "~/.pomokids")
}
