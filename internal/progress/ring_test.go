package progress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDashOffset(t *testing.T) {
	require.Equal(t, 440.0, DashOffset(0))
	require.Equal(t, 0.0, DashOffset(1))
	require.Equal(t, 220.0, DashOffset(0.5))
}

func TestDashOffsetUnknownTotal(t *testing.T) {
	require.True(t, math.IsNaN(DashOffset(math.NaN())))
}
