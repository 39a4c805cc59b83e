package audit

import (
	"context"
	"sync"
)

// Sink is an append-only destination for audit events, so tests can swap
// in a memory sink where production wires Kafka.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// MemorySink buffers events in memory. Safe for concurrent use.
type MemorySink struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything appended so far.
func (s *MemorySink) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
