package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounce(t *testing.T) {
	require.Equal(t, "loADing", Bounce("loading", 2))
	require.Equal(t, "LOading", Bounce("loading", 0))
	require.Equal(t, "loadinG", Bounce("loading", 6))
	require.Equal(t, "loading", Bounce("LOADING", 10))
	require.Equal(t, "", Bounce("", 0))
}

func TestAnimatorFramesAndStop(t *testing.T) {
	a := NewAnimator("loading")
	a.Period = 5 * time.Millisecond

	var mu sync.Mutex
	var frames []string
	a.Start(func(frame string) {
		mu.Lock()
		frames = append(frames, frame)
		mu.Unlock()
	})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(frames) >= 3
	}, time.Second, time.Millisecond)

	a.Stop()
	time.Sleep(20 * time.Millisecond) // let an in-flight frame drain
	mu.Lock()
	require.Equal(t, "LOading", frames[0])
	require.Equal(t, "lOAding", frames[1])
	require.Equal(t, "loADing", frames[2])
	n := len(frames)
	mu.Unlock()

	// no more frames after stop
	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, n, len(frames))
}

func TestAnimatorStopTwice(t *testing.T) {
	a := NewAnimator("loading")
	a.Start(func(string) {})
	a.Stop()
	a.Stop()
}
