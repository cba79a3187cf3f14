// Package config defines the application configuration and its loading.
// Only operational concerns live here; the pricing and growth reference
// tables are compiled in and not configurable.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Aurelian-Chen/NovasX/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for novasx.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the HTTP API options.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error; defaults are
// returned so the CLI works without any configuration.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := defaultConfiguration()

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return configuration, nil
		}
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := viper.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return configuration, nil
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Output: OutputConfig{Format: constants.OutputFormatPretty},
		Server: ServerConfig{Address: constants.DefaultServerAddress},
	}
}

func (c *Configuration) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
}
