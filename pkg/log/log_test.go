package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/nimbus/pkg/log"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	h, err := log.CreateHandler(out, "debug", "json")
	require.NoError(t, err)

	slog.New(h).Debug("hello")
	assert.Contains(t, out.String(), `"msg":"hello"`)
}

func TestCreateHandlerInvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := log.CreateHandler(&bytes.Buffer{}, "info", "yaml")
	require.ErrorIs(t, err, log.ErrInvalidFormat)
}

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]slog.Level{
		"panic":   slog.LevelError,
		"error":   slog.LevelError,
		"warning": slog.LevelWarn,
		"info":    slog.LevelInfo,
		"trace":   slog.LevelDebug,
		"bogus":   slog.LevelInfo,
	}

	for level, want := range tcs {
		assert.Equal(t, want, log.GetLevel(level), level)
	}
}
