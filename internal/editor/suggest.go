package editor

import (
	"errors"
	"sync"
)

// ErrGenerationInFlight rejects a second AI generation started while one is
// still running for the same section.
var ErrGenerationInFlight = errors.New("generation already in progress")

// SuggestControl serializes AI generations per section: one in flight at a
// time, no cancellation. A slow response still resolves and its result is
// applied by an explicit user action through the normal edit path.
type SuggestControl struct {
	mu   sync.Mutex
	busy bool
}

func (s *SuggestControl) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Run invokes fn unless a generation is already in flight.
func (s *SuggestControl) Run(fn func() error) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()
	return fn()
}
