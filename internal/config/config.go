package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the main struct that holds all configuration for the runner.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
}

// LoggerConfig holds logging-specific settings.
type LoggerConfig struct {
	Level string `mapstructure:"level"`
	// Pretty enables human-readable console output on stderr.
	// Leave false to get plain JSON lines, which is what a supervising
	// worker normally wants to capture.
	Pretty bool `mapstructure:"pretty"`
}

// DispatchConfig holds settings for the notify pass.
type DispatchConfig struct {
	// Timeout bounds the whole notify pass. Zero means no deadline:
	// the runner blocks until the dispatch library returns.
	Timeout time.Duration `mapstructure:"timeout"`
}

// NewConfig parses the optional YAML file and environment variables to
// return a configuration struct. A missing config file is not an error;
// the runner is usually spawned with env-only configuration.
func NewConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigFile("configs/config.yaml")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty", false)
	v.SetDefault("dispatch.timeout", time.Duration(0))

	v.SetEnvPrefix("notify_runner")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
