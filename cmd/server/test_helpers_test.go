package main

import (
	"testing"
	"time"

	"github.com/phrazzld/people-api/internal/config"
	"github.com/phrazzld/people-api/internal/domain"
	"github.com/phrazzld/people-api/internal/platform/logger"
)

// createTestConfig returns a valid config with metrics enabled.
func createTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8000,
			LogLevel:        "debug",
			ShutdownTimeout: 2 * time.Second,
		},
		Directory: config.DirectoryConfig{People: domain.DefaultPeople},
		Upload:    config.UploadConfig{MaxMemoryMB: 1},
		Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// createTestApp builds an application whose logs go to the returned buffer.
func createTestApp(t *testing.T, cfg *config.Config) (*application, *logger.TestLogBuffer) {
	t.Helper()
	buf, l := logger.NewTestLogger()
	app, err := newApplication(cfg, l)
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	return app, buf
}
