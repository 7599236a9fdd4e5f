package log

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFilteringAndFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)
	defer cleanup()

	SetMinLevel(LevelWarn)
	Debug(CatRender, "below threshold")
	Info(CatConfig, "also below threshold")
	Warn(CatRender, "wide banner", "width", 200)
	ErrorErr(CatWatch, "watch broke", errors.New("boom"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	require.NotContains(t, out, "below threshold")
	require.Contains(t, out, "[WARN] [render] wide banner width=200")
	require.Contains(t, out, "[ERROR] [watch] watch broke error=boom")

	SetMinLevel(LevelDebug)
	Debug(CatTokenize, "now audible", "lang", "go")

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] [tokenize] now audible lang=go")
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
