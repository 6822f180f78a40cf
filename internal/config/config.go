// Package config loads postlint configuration from config files,
// environment variables and flags via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the postlint configuration.
type Config struct {
	Format    string `mapstructure:"format"`    // console, json, markdown
	Output    string `mapstructure:"output"`    // output file, empty for stdout
	Quiet     bool   `mapstructure:"quiet"`
	Verbose   bool   `mapstructure:"verbose"`
	MinGrade  string `mapstructure:"minGrade"`  // fail when overall grade is below this
	Weights   string `mapstructure:"weights"`   // weight override file path
	StorePath string `mapstructure:"storePath"` // context store location
	Followers int    `mapstructure:"followers"` // default follower count
}

// LoadConfig loads configuration from config files, env and flag bindings.
func LoadConfig() (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("minGrade", "")
	viper.SetDefault("weights", "")
	viper.SetDefault("storePath", filepath.Join(homeDir, ".postlint", "context.json"))
	viper.SetDefault("followers", 1000)

	configPaths := []string{".postlintrc.json", ".postlintrc.yaml", ".postlintrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix("POSTLINT")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	switch config.MinGrade {
	case "", "A", "B", "C", "D", "F":
	default:
		return fmt.Errorf("invalid min-grade: %s. Must be one of A, B, C, D, F", config.MinGrade)
	}

	if config.Followers < 0 {
		return fmt.Errorf("followers must be non-negative")
	}

	return nil
}
