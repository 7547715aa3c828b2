package logging

import (
	"context"
	"onboarding/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesStructuredEntries(t *testing.T) {
	assert := require.New(t)
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerFrom(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "debug")
	log.Info(ctx, "User email has been confirmed.", logging.Entry("userId", "1"))
	log.Warning(ctx, "warning")
	log.Error(ctx, "Could not save confirmation token.", logging.Entry("userId", "2"), logging.Entry("attempt", 3))

	entries := logs.AllUntimed()
	assert.Len(entries, 4)
	assert.Equal(zapcore.DebugLevel, entries[0].Level)
	assert.Equal(zapcore.WarnLevel, entries[2].Level)

	assert.Equal(zapcore.InfoLevel, entries[1].Level)
	assert.Equal("User email has been confirmed.", entries[1].Message)
	assert.Equal(map[string]interface{}{"userId": "1"}, entries[1].ContextMap())

	assert.Equal(zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(map[string]interface{}{"userId": "2", "attempt": int64(3)}, entries[3].ContextMap())
}
