package highlight

import (
	"sync"
	"time"
	"unicode/utf8"
)

// Tiers maps document size to the debounce delay applied before a highlight
// snapshot update. Small documents update on every keystroke; larger ones
// wait out a quiet period so colorization never competes with typing.
type Tiers struct {
	// SmallLimit is the rune count below which updates apply immediately.
	SmallLimit int
	// LargeLimit is the rune count at or above which LargeDelay applies.
	// Documents in [SmallLimit, LargeLimit) use MediumDelay.
	LargeLimit int

	MediumDelay time.Duration
	LargeDelay  time.Duration
}

// DefaultTiers returns the default debounce tiering.
func DefaultTiers() Tiers {
	return Tiers{
		SmallLimit:  1000,
		LargeLimit:  5000,
		MediumDelay: 30 * time.Millisecond,
		LargeDelay:  150 * time.Millisecond,
	}
}

// DelayFor returns the debounce delay for a document of size runes.
func (t Tiers) DelayFor(size int) time.Duration {
	switch {
	case size < t.SmallLimit:
		return 0
	case size < t.LargeLimit:
		return t.MediumDelay
	default:
		return t.LargeDelay
	}
}

// Scheduler debounces highlight snapshot updates.
//
// Each Schedule replaces any pending update, so only the last document in a
// burst is applied. Zero-delay documents apply synchronously inside Schedule;
// the rest apply on a timer goroutine. The scheduler is a pure timer: if
// apply panics, recovery is the caller's problem.
type Scheduler struct {
	tiers Tiers
	apply func(doc string)

	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool
}

// NewScheduler returns a scheduler that invokes apply with the document that
// survives each debounce window.
func NewScheduler(tiers Tiers, apply func(doc string)) *Scheduler {
	if tiers == (Tiers{}) {
		tiers = DefaultTiers()
	}
	return &Scheduler{tiers: tiers, apply: apply}
}

// Schedule arms (or re-arms) the snapshot update for doc.
func (s *Scheduler) Schedule(doc string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	gen := s.gen

	delay := s.tiers.DelayFor(utf8.RuneCountInString(doc))
	if delay <= 0 {
		s.mu.Unlock()
		s.apply(doc)
		return
	}

	s.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// A Stop that loses the race with firing still must not apply a
		// superseded document, so the generation check is authoritative.
		if s.closed || gen != s.gen {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.mu.Unlock()
		s.apply(doc)
	})
	s.mu.Unlock()
}

// Pending reports whether an update is armed but not yet applied.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Close cancels any pending update. Timers that fire after Close are no-ops.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
