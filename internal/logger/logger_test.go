package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestInit(t *testing.T) {
	prev := L
	t.Cleanup(func() { L = prev })

	Init("error")
	assert.False(t, L.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, L.Core().Enabled(zapcore.ErrorLevel))
}
