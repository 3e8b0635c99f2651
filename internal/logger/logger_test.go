package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l, err := New("", "info")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")

	l, err := New(path, "info")
	require.NoError(t, err)
	l.Info("session started")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "quiz.log"), "loud")
	require.Error(t, err)
}
