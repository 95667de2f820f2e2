package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. PEOPLE_SERVER_PORT.
	EnvPrefix = "PEOPLE"

	// ConfigFileEnv names an explicit config file. When it is unset, an
	// optional config.yaml in the working directory is used.
	ConfigFileEnv = "PEOPLE_CONFIG_FILE"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files, which
// take precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("directory.people", []int{1, 2, 3, 4, 5})
	v.SetDefault("upload.max_memory_mb", 32)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
