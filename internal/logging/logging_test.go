package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleHandler(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("Setting reports dir: /tmp/reports")
	log.With("set", "FooTest").Error("There are test failures.", "failures", 2)

	assert.Equal(t,
		"[INFO] Setting reports dir: /tmp/reports\n"+
			"[ERROR] There are test failures. set=FooTest failures=2\n",
		buf.String())
	assert.False(t, DebugEnabled(log))
	assert.True(t, DebugEnabled(New(&buf, slog.LevelDebug)))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
