package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/people-api/internal/platform/logger"
)

func TestNewApplication(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, l := logger.NewTestLogger()
		app, err := newApplication(nil, l)
		assert.Error(t, err)
		assert.Nil(t, app)
	})

	t.Run("nil logger", func(t *testing.T) {
		app, err := newApplication(createTestConfig(t), nil)
		assert.Error(t, err)
		assert.Nil(t, app)
	})

	t.Run("directory built from config", func(t *testing.T) {
		cfg := createTestConfig(t)
		cfg.Directory.People = []int{7, 3, 7}

		app, buf := createTestApp(t, cfg)

		assert.Equal(t, []int{3, 7}, app.directory.IDs())
		assert.NotNil(t, app.validator)
		assert.NotNil(t, app.metrics)
		assert.Contains(t, buf.String(), "Application initialized successfully")
	})

	t.Run("metrics disabled", func(t *testing.T) {
		cfg := createTestConfig(t)
		cfg.Metrics.Enabled = false

		app, _ := createTestApp(t, cfg)
		require.NotNil(t, app)
		assert.Nil(t, app.metrics)
	})
}
