package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/palindrome-service/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := []struct {
		cfg   config.LoggerConfig
		level zapcore.Level
	}{
		{config.LoggerConfig{Level: "debug", Development: true}, zapcore.DebugLevel},
		{config.LoggerConfig{Level: "WARN"}, zapcore.WarnLevel},
		{config.LoggerConfig{Level: "chatty"}, zapcore.InfoLevel},
	}

	for _, tc := range cases {
		logger, err := NewLogger(tc.cfg)
		require.NoError(t, err)
		assert.Truef(t, logger.Core().Enabled(tc.level), "level %q", tc.cfg.Level)
		if tc.level > zapcore.DebugLevel {
			assert.Falsef(t, logger.Core().Enabled(tc.level-1), "level %q", tc.cfg.Level)
		}
	}
}
