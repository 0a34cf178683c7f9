package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	// ErrQueueFull is returned by QueuePublisher.Emit when the worker is behind.
	ErrQueueFull = errors.New("audit queue full")
	// ErrQueueClosed is returned by QueuePublisher.Emit after Close.
	ErrQueueClosed = errors.New("audit queue closed")
)

// QueuePublisher hands events to a Worker without blocking the request path.
type QueuePublisher struct {
	mu     sync.RWMutex
	closed bool
	queue  chan Event
	now    func() time.Time
}

// NewQueuePublisher returns a publisher and the inbox its Worker must drain.
func NewQueuePublisher(size int) (*QueuePublisher, <-chan Event) {
	q := make(chan Event, size)
	return &QueuePublisher{queue: q, now: time.Now}, q
}

// Emit never blocks; it returns ErrQueueFull when the inbox is at capacity.
func (p *QueuePublisher) Emit(_ context.Context, base Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrQueueClosed
	}
	select {
	case p.queue <- stamp(base, p.now):
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events; the Worker drains what is left and returns.
// Close is idempotent.
func (p *QueuePublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.queue)
}

// Worker consumes audit events from a channel and appends them to a store.
// A failed append is logged and the event dropped; the worker keeps running.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run blocks until ctx is done or the inbox is closed.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to append audit event",
					"error", err,
					"action", event.Action,
					"event_id", event.ID.String(),
				)
			}
		}
	}
}
