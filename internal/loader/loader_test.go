package loader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// chunkedSource hands out a fixed payload in the given chunk sizes.
type chunkedSource struct {
	payload []byte
	sizes   []int
	total   int64
	err     error
}

func (c *chunkedSource) Open(ctx context.Context) (io.ReadCloser, int64, error) {
	if c.err != nil {
		return nil, 0, c.err
	}
	readers := make([]io.Reader, 0, len(c.sizes))
	off := 0
	for _, n := range c.sizes {
		readers = append(readers, bytes.NewReader(c.payload[off:off+n]))
		off += n
	}
	return io.NopCloser(io.MultiReader(readers...)), c.total, nil
}

func splitSizes(total int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	var sizes []int
	for left := total; left > 0; {
		n := 1 + r.Intn(1024)
		if n > left {
			n = left
		}
		sizes = append(sizes, n)
		left -= n
	}
	return sizes
}

func TestLoaderRunAssemblesExactPayload(t *testing.T) {
	payload := make([]byte, 200*1024+7)
	rand.New(rand.NewSource(42)).Read(payload)

	var got []byte
	ready := false
	l := &Loader{
		Source: &chunkedSource{payload: payload, sizes: splitSizes(len(payload), 7), total: int64(len(payload))},
		Init: func(module []byte) error {
			got = module
			return nil
		},
		OnReady: func() { ready = true },
	}
	session, err := l.Run(context.Background())
	require.NoError(t, err)
	require.True(t, bytes.Equal(payload, got))
	require.True(t, ready)
	require.Equal(t, int64(len(payload)), session.Received())
}

func TestLoaderProgressMonotonic(t *testing.T) {
	payload := make([]byte, 50*1024)
	rand.New(rand.NewSource(5)).Read(payload)

	prev := 0.0
	var calls int
	l := &Loader{
		Source: &chunkedSource{payload: payload, sizes: splitSizes(len(payload), 11), total: int64(len(payload))},
		Progress: func(received, total int64, fraction float64) {
			calls++
			require.Equal(t, int64(len(payload)), total)
			require.GreaterOrEqual(t, fraction, prev)
			prev = fraction
		},
	}
	_, err := l.Run(context.Background())
	require.NoError(t, err)
	require.Greater(t, calls, 0)
	require.Equal(t, 1.0, prev)
}

func TestLoaderUnknownTotal(t *testing.T) {
	payload := []byte("no content length here")
	sawNaN := false
	l := &Loader{
		Source: &chunkedSource{payload: payload, sizes: []int{len(payload)}, total: -1},
		Progress: func(received, total int64, fraction float64) {
			require.Equal(t, int64(-1), total)
			sawNaN = math.IsNaN(fraction)
		},
	}
	session, err := l.Run(context.Background())
	require.NoError(t, err)
	require.True(t, sawNaN)
	require.Equal(t, payload, session.Assemble())
}

func TestLoaderSourceErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	l := &Loader{Source: &chunkedSource{err: boom}}
	_, err := l.Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestLoaderInitErrorPropagates(t *testing.T) {
	payload := []byte("module")
	ready := false
	l := &Loader{
		Source:  &chunkedSource{payload: payload, sizes: []int{len(payload)}, total: int64(len(payload))},
		Init:    func([]byte) error { return errors.New("bad magic") },
		OnReady: func() { ready = true },
	}
	_, err := l.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad magic")
	require.False(t, ready)
}

// failingReader errors mid-stream after some bytes were delivered.
type failingReader struct {
	data []byte
	err  error
	done bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.done {
		return 0, f.err
	}
	f.done = true
	n := copy(p, f.data)
	return n, nil
}

type readerSource struct {
	r     io.Reader
	total int64
}

func (s *readerSource) Open(ctx context.Context) (io.ReadCloser, int64, error) {
	return io.NopCloser(s.r), s.total, nil
}

func TestLoaderStreamErrorPropagates(t *testing.T) {
	l := &Loader{
		Source: &readerSource{r: &failingReader{data: []byte("partial"), err: errors.New("reset by peer")}, total: 100},
	}
	session, err := l.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "reset by peer")
	// bytes received before the failure stay recorded
	require.Equal(t, int64(len("partial")), session.Received())
}
