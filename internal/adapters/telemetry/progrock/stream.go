package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Stream)(nil)

// Stream is a progrock.Writer that queues status updates for one reader.
// Writes never block; updates written after Close are dropped.
type Stream struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []*progrock.StatusUpdate
	closed  bool
}

// NewStream creates an open Stream.
func NewStream() *Stream {
	s := &Stream{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// WriteStatus queues update.
func (s *Stream) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.pending = append(s.pending, update)
	s.cond.Signal()
	return nil
}

// Read blocks until an update is queued and returns it.
// It returns io.EOF once the stream is closed and drained.
func (s *Stream) Read() (*progrock.StatusUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.pending) == 0 && !s.closed {
		s.cond.Wait()
	}
	if len(s.pending) == 0 {
		return nil, io.EOF
	}
	update := s.pending[0]
	s.pending[0] = nil
	s.pending = s.pending[1:]
	return update, nil
}

// Close ends the stream. Queued updates can still be read.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.cond.Broadcast()
	return nil
}
