package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

// ToolConfig holds tool configuration loaded from a config file or
// environment.
type ToolConfig struct {
	Quiet             bool   `mapstructure:"quiet"`
	BackupOnOverwrite bool   `mapstructure:"backup_on_overwrite"`
	ExtractDir        string `mapstructure:"extract_dir"`
}

// LoadToolConfig loads the tool configuration using Viper.
func LoadToolConfig() (*ToolConfig, error) {
	viper.SetConfigName("t64-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.t64")
	viper.AddConfigPath("/etc/t64")

	// Set defaults
	viper.SetDefault("quiet", false)
	viper.SetDefault("backup_on_overwrite", true)
	viper.SetDefault("extract_dir", ".")

	// Allow environment variables
	viper.SetEnvPrefix("T64")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var config ToolConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
