package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDirName  = "irodori"
	configFileName = "config"
	configFileType = "yaml"
	logFileName    = "irodori.log"
	envPrefix      = "IRODORI"
)

var (
	configDir  string
	configPath string
)

func init() {
	// Get user config directory
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		homeDir, _ := os.UserHomeDir()
		userConfigDir = filepath.Join(homeDir, ".config")
	}

	setConfigDir(filepath.Join(userConfigDir, configDirName))
}

func setConfigDir(dir string) {
	configDir = dir
	configPath = filepath.Join(configDir, configFileName+"."+configFileType)
}

// newViper returns a viper instance wired to the config file, the IRODORI_
// environment and the defaults
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// IRODORI_PREFERENCES_SEED overrides preferences.seed
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults make every key known to AutomaticEnv during Unmarshal
	def := DefaultConfig()
	v.SetDefault("preferences.theme", def.Preferences.Theme)
	v.SetDefault("preferences.language", def.Preferences.Language)
	v.SetDefault("preferences.seed", def.Preferences.Seed)
	v.SetDefault("preferences.show_hsl", def.Preferences.ShowHSL)
	v.SetDefault("preferences.swatch_width", def.Preferences.SwatchWidth)
	v.SetDefault("preferences.swatch_height", def.Preferences.SwatchHeight)
	v.SetDefault("paths.log", def.Paths.Log)

	return v
}

// Load loads the configuration from the config file
func Load() (*Config, error) {
	// Ensure config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()

	// Try to read the config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, create default config
			return createDefaultConfig()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal config
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if config.Labels == nil {
		config.Labels = map[string]string{}
	}

	// Set default paths if not specified
	if err := setDefaultPaths(config); err != nil {
		return nil, fmt.Errorf("failed to set default paths: %w", err)
	}

	// Validate configuration
	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the config file
func Save(config *Config) error {
	// Ensure config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Validate before saving
	if err := Validate(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configFileType)
	v.Set("preferences.theme", config.Preferences.Theme)
	v.Set("preferences.language", config.Preferences.Language)
	v.Set("preferences.seed", config.Preferences.Seed)
	v.Set("preferences.show_hsl", config.Preferences.ShowHSL)
	v.Set("preferences.swatch_width", config.Preferences.SwatchWidth)
	v.Set("preferences.swatch_height", config.Preferences.SwatchHeight)
	v.Set("labels", config.Labels)
	v.Set("paths.log", config.Paths.Log)

	// Write config file
	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// createDefaultConfig creates and saves a default configuration
func createDefaultConfig() (*Config, error) {
	config := DefaultConfig()

	// Set default paths
	if err := setDefaultPaths(config); err != nil {
		return nil, fmt.Errorf("failed to set default paths: %w", err)
	}

	// Save the default config
	if err := Save(config); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}

	return config, nil
}

// setDefaultPaths sets default paths if not already set
func setDefaultPaths(config *Config) error {
	if config.Paths.Log == "" {
		config.Paths.Log = filepath.Join(configDir, logFileName)
	}

	if err := os.MkdirAll(filepath.Dir(config.Paths.Log), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(config.Paths.Log), err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	return configPath
}

// GetConfigDir returns the config directory
func GetConfigDir() string {
	return configDir
}

// Exists checks if the config file exists
func Exists() bool {
	_, err := os.Stat(configPath)
	return err == nil
}
