package utils

import "sync"

// Sequencer issues monotonic request-sequence tokens for a mutable
// view. A view tags each list refresh it fires with Next() and drops
// any response whose token is no longer the latest issued, so a slow
// refresh can never overwrite the result of a newer one.
type Sequencer struct {
	mu   sync.Mutex
	last uint64
}

// NewSequencer creates a Sequencer starting at zero.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next issues a new token, invalidating all previously issued ones.
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// Latest reports whether token is the most recently issued one.
func (s *Sequencer) Latest(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token == s.last
}
