package logger

import (
	"testing"

	"progress_clock_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want zapcore.Level
	}{
		{"debug mode", config.Config{Server: config.ServerConfig{Mode: "debug"}}, zapcore.DebugLevel},
		{"release mode", config.Config{Server: config.ServerConfig{Mode: "release"}}, zapcore.InfoLevel},
		{"explicit level wins", config.Config{Server: config.ServerConfig{Mode: "debug"}, Log: config.LogConfig{Level: "warn"}}, zapcore.WarnLevel},
		{"bad level falls back", config.Config{Log: config.LogConfig{Level: "loud"}}, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFor(&tt.cfg))
		})
	}
}

func TestNewWritesToRotatingFile(t *testing.T) {
	file := t.TempDir() + "/app.log"
	l := New(&config.Config{Log: config.LogConfig{File: file}})
	l.Info("clock rendered")
	assert.FileExists(t, file)
}
