package form

import (
	"sync"
	"time"
)

// DefaultSubmitReset is the safety delay after which a busy submit control is
// re-enabled if nothing completed the submission.
const DefaultSubmitReset = 10 * time.Second

// SubmitGuard tracks the submit control's busy state. Begin arms a cancelable
// safety timer; Finish cancels it explicitly instead of racing it, so a
// completed pass can never be re-enabled mid-flight by a stale timer.
type SubmitGuard struct {
	mu    sync.Mutex
	reset time.Duration
	busy  bool
	gen   uint64
	timer *time.Timer
}

// NewSubmitGuard creates a guard; non-positive delays fall back to the
// default.
func NewSubmitGuard(reset time.Duration) *SubmitGuard {
	if reset <= 0 {
		reset = DefaultSubmitReset
	}
	return &SubmitGuard{reset: reset}
}

// Begin marks the control busy and arms the safety timer. It returns false
// when a submission is already in flight.
func (s *SubmitGuard) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(s.reset, func() { s.expire(gen) })
	return true
}

// Finish re-enables the control and cancels the safety timer.
func (s *SubmitGuard) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.busy = false
}

// Busy reports whether a submission is in flight.
func (s *SubmitGuard) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *SubmitGuard) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A timer from an earlier Begin must not clear a newer submission.
	if s.busy && s.gen == gen {
		s.busy = false
		s.timer = nil
	}
}
