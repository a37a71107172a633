package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf strings.Builder
	l := logger.NewWithWriter(&buf)

	l.Info("evaluation started")
	l.Warn("watcher dropped event")
	l.Error(errors.New("boom"))

	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "evaluation started")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "boom")
}
