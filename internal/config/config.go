package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Directory DirectoryConfig `mapstructure:"directory"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DirectoryConfig seeds the read-only set of known person IDs.
type DirectoryConfig struct {
	People []int `mapstructure:"people" validate:"dive,gt=0"`
}

// UploadConfig controls multipart parsing.
type UploadConfig struct {
	// MaxMemoryMB is how much of a multipart body is held in memory before
	// parts spill to temporary files. It does not cap the upload size.
	MaxMemoryMB int64 `mapstructure:"max_memory_mb" validate:"gt=0"`
}

// MaxMemoryBytes converts MaxMemoryMB to bytes.
func (u UploadConfig) MaxMemoryBytes() int64 {
	return u.MaxMemoryMB << 20
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}
