package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/on-the-ground/powereggs/effects/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapEffectHandler_LevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	ctx, endOfLog := log.WithZapEffectHandler(context.Background(), 4, zap.New(core))

	log.Effect(ctx, log.LogDebug, "case solved", map[string]any{"floors": 100, "eggs": 2, "drops": 14})
	log.Effect(ctx, log.LogInfo, "batch done", nil)
	log.Effect(ctx, log.LogWarn, "case rejected", map[string]any{"line": 3})
	log.Effect(ctx, log.LogError, "read failed", nil)
	log.Effect(ctx, log.LogLevel("loud"), "unknown level", nil)

	endOfLog()

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "case solved", entries[0].Message)
	assert.Equal(t, map[string]any{"floors": int64(100), "eggs": int64(2), "drops": int64(14)}, entries[0].ContextMap())

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[4].Level)
}

func TestLogEffect_PanicsWithoutHandler(t *testing.T) {
	assert.Panics(t, func() {
		log.Effect(context.Background(), log.LogInfo, "nobody listens", nil)
	})
}

func TestWithTestEffectHandler(t *testing.T) {
	var buf bytes.Buffer
	ctx, endOfLog := log.WithTestEffectHandler(context.Background(), &buf)

	log.Effect(ctx, log.LogDebug, "case answered", map[string]any{"drops": 14})
	endOfLog()

	assert.Contains(t, buf.String(), "case answered")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogger(&buf, false)
	logger.Debug("hidden")
	logger.Info("batch finished", zap.Int("cases", 3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "batch finished", entry["msg"])
	assert.Equal(t, float64(3), entry["cases"])

	buf.Reset()
	logger = log.NewLogger(&buf, true)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
