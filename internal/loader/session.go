package loader

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
)

// Session tracks one module transfer: the expected total from the server,
// the running received count, and every chunk in receipt order.
type Session struct {
	ID string

	mu       sync.Mutex
	total    int64
	received int64
	chunks   [][]byte
}

// NewSession starts a session expecting total bytes. Pass -1 when the
// server does not report a size.
func NewSession(total int64) *Session {
	return &Session{ID: uuid.New().String(), total: total}
}

// Append records the next received chunk. The chunk is copied, so the
// caller may reuse its read buffer.
func (s *Session) Append(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	c := make([]byte, len(chunk))
	copy(c, chunk)
	s.mu.Lock()
	s.chunks = append(s.chunks, c)
	s.received += int64(len(c))
	s.mu.Unlock()
}

// Total returns the expected byte count, -1 when unknown.
func (s *Session) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Received returns the bytes received so far.
func (s *Session) Received() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.received
}

// Fraction returns received/total, NaN when the total is unknown.
func (s *Session) Fraction() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.total <= 0 {
		return math.NaN()
	}
	return float64(s.received) / float64(s.total)
}

// Assemble concatenates the chunks in receipt order into one buffer sized
// to exactly the received count.
func (s *Session) Assemble() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, s.received)
	var off int64
	for _, c := range s.chunks {
		copy(buf[off:], c)
		off += int64(len(c))
	}
	if off != s.received {
		// Append is the only writer for both, so this cannot diverge.
		panic(fmt.Sprintf("session %s: assembled %d bytes, received %d", s.ID, off, s.received))
	}
	return buf
}
