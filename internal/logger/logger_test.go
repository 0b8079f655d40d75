package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-catalog/internal/config"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/logger"
)

func TestSetupProductionLogsJSON(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	log := logger.SetupWithWriter(&config.Config{
		Environment: config.EnvironmentProduction,
		LogLevel:    slog.LevelInfo,
	}, &buf)

	log.Debug("hidden")
	log.Info("catalogs loaded", "loaded", 5)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "catalogs loaded", record["msg"])
	assert.Equal(t, "rpg-catalog", record["service"])
	assert.EqualValues(t, 5, record["loaded"])
	assert.Same(t, log, slog.Default())
}

func TestSetupDevelopmentLogsText(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	log := logger.SetupWithWriter(&config.Config{
		Environment: "development",
		LogLevel:    slog.LevelDebug,
	}, &buf)

	logger.WithError(log, errors.NotFound("missing catalog")).Debug("lookup failed")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="lookup failed"`)
	assert.Contains(t, out, `error="NOT_FOUND: missing catalog"`)
}
