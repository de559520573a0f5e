package utils

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerCapturedOutput(t *testing.T) {
	InitLogger(false)
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	logger := GetLogger("loader")
	logger.Info().Str("url", "https://example.com/game.wasm").Msg("Module booted")

	out := buf.String()
	require.Contains(t, out, "Module booted")
	require.Contains(t, out, "component=")
	require.Contains(t, out, "loader")
	require.Contains(t, out, "example.com")
}

func TestLoggerDebugLevelGating(t *testing.T) {
	InitLogger(false)
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	bootLogger := GetLogger("boot")
	bootLogger.Debug().Msg("hidden at info level")
	require.NotContains(t, buf.String(), "hidden at info level")

	InitLogger(true)
	SetLogOutput(&buf)
	bootLogger = GetLogger("boot")
	bootLogger.Debug().Msg("visible at debug level")
	require.Contains(t, buf.String(), "visible at debug level")
}
