package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("ROUTE", "", &buf)
	require.NoError(t, err)

	l.Info("computed")
	l.Warning("cache down")
	l.Error("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "[ROUTE] [INFO] computed"))
	assert.True(t, strings.HasSuffix(lines[1], "[ROUTE] [WARNING] cache down"))
	assert.True(t, strings.HasSuffix(lines[2], "[ROUTE] [ERROR] boom"))
}

func TestLoggerColors(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("APP", "\033[34m", &buf, WithLevelColors("\033[32m", "\033[33m", "\033[31m"))
	require.NoError(t, err)

	l.Error("x")
	assert.Contains(t, buf.String(), "\033[34m[APP]\033[0m \033[31m[ERROR]\033[0m x")
}

func TestNewNilWriter(t *testing.T) {
	_, err := New("APP", "", nil)
	assert.Error(t, err)
}
