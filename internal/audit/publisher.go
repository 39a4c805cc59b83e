package audit

import (
	"context"
	"log/slog"

	"fundus/pkg/requestcontext"
)

// Publisher accepts events from domain logic and hands them to a worker
// through a bounded inbox. Emit never blocks the emitting request: when
// the inbox is full the event is dropped with a warning, since a stalled
// audit pipeline must not stall report generation.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Emit stamps and enqueues the event. Missing timestamps and request ids
// are filled from the context.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.Subject == "" {
		event.Subject = requestcontext.Subject(ctx)
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, event dropped",
			"action", event.Action, "unit_id", event.UnitID)
	}
}

// Inbox exposes the event stream for a Worker to drain.
func (p *Publisher) Inbox() <-chan Event { return p.inbox }
