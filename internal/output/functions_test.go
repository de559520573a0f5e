package output

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	bar := ProgressBar(50, 100, 10)
	require.Contains(t, bar, "50.0%")
	require.Equal(t, 5, strings.Count(bar, StyleSymbols["hline"]))

	require.Contains(t, ProgressBar(0, 100, 10), "0.0%")
	require.Contains(t, ProgressBar(100, 100, 10), "100.0%")
	// clamped outside [0,total]
	require.Contains(t, ProgressBar(150, 100, 10), "100.0%")
	require.Contains(t, ProgressBar(-5, 100, 10), "0.0%")
}

func TestRenderProgressKnownTotal(t *testing.T) {
	line := RenderProgress(220, 440, 0.5, "loADing")
	require.Contains(t, line, "loADing")
	require.Contains(t, line, "offset 220")
}

func TestRenderProgressUnknownTotal(t *testing.T) {
	line := RenderProgress(1024, -1, math.NaN(), "loading")
	require.Contains(t, line, "loading")
	require.NotContains(t, line, "offset")
	require.Contains(t, line, "1.0 KiB")
}
