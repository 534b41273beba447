// pkg/logger/logger_test.go

package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"alphawell/pkg/logger"
)

func TestNewRespectsLevel(t *testing.T) {
	l, err := logger.New("json", "warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNamedNilSafe(t *testing.T) {
	l := logger.Named(nil, "x")
	require.NotNil(t, l)
	l.Info("no-op")
}
