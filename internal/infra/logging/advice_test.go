package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dishmate/internal/domain/model"
)

func TestAdviceLoggerWritesJSONL(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	logger, err := NewAdviceLogger(context.Background(), Options{})
	require.NoError(t, err)

	err = logger.Log(context.Background(), model.AdviceLogEntry{
		RequestID:  "req-1",
		Command:    "load",
		Outcome:    "intensive",
		DurationMS: 3,
	})
	require.NoError(t, err)
	require.NoError(t, logger.Sync())

	b, err := os.ReadFile(filepath.Join(configHome, "dishmate", "advice.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "advice", rec["message"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "load", rec["command"])
	assert.Equal(t, "intensive", rec["outcome"])
	assert.NotContains(t, rec, "detail")
}

func TestAdviceLoggerDebugTee(t *testing.T) {
	var debug bytes.Buffer
	logger, err := NewAdviceLogger(context.Background(), Options{
		Debug:    true,
		DebugOut: &debug,
		Path:     filepath.Join(t.TempDir(), "advice.log"),
	})
	require.NoError(t, err)

	require.NoError(t, logger.Log(context.Background(), model.AdviceLogEntry{Command: "troubleshoot", Outcome: "grease_prewash"}))
	assert.Contains(t, debug.String(), "advice detail")
	assert.Contains(t, debug.String(), "grease_prewash")
}

func TestDisabledLoggerIsNoop(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	logger, err := NewAdviceLogger(context.Background(), Options{Disabled: true})
	require.NoError(t, err)
	assert.Equal(t, NewNoopLogger(), logger)
	assert.NoError(t, logger.Log(context.Background(), model.AdviceLogEntry{}))
	assert.NoError(t, logger.Sync())
}

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, logger.Log(context.Background(), model.AdviceLogEntry{
		Timestamp:  at,
		RequestID:  "req-2",
		Command:    "maintenance schedule",
		Outcome:    "8 tasks",
		Detail:     "usage=heavy",
		DurationMS: 1,
	}))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-2", fields["request_id"])
	assert.Equal(t, "usage=heavy", fields["detail"])
	assert.Equal(t, int64(1), fields["duration_ms"])
	assert.Equal(t, at, fields["advised_at"])
}
