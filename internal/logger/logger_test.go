package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesKeepConsoleHistory(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Out: &buf})
	require.NoError(t, err)

	l.Log("cmd toggle")
	l.WithField("model", "cubesat").Warn("switched")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.True(t, strings.HasSuffix(lines[0], "] cmd toggle"))
	assert.Contains(t, lines[1], "WARNING switched model=cubesat")
	assert.Contains(t, buf.String(), "msg=\"cmd toggle\"")
}

func TestLinesAreBounded(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Out: &buf})
	require.NoError(t, err)
	for i := 0; i < maxLines+25; i++ {
		l.Info("line")
	}
	assert.Len(t, l.Lines(), maxLines)
}

func TestLevelFiltersHook(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Out: &buf})
	require.NoError(t, err)
	l.Info("hidden")
	l.Error("shown")
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "ERROR shown")
}

func TestBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lab.log")
	var buf bytes.Buffer
	l, err := New(Options{File: path, Out: &buf})
	require.NoError(t, err)
	l.Info("to disk")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to disk")
}
