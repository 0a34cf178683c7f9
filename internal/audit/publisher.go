package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Publisher stamps audit events and appends them to a Store so tests can swap
// sinks easily.
type Publisher struct {
	store Store
	now   func() time.Time
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store, now: time.Now}
}

func (p *Publisher) Emit(ctx context.Context, base Event) error {
	return p.store.Append(ctx, stamp(base, p.now))
}

// stamp fills in the id and timestamp if the caller left them empty.
func stamp(e Event, now func() time.Time) Event {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = now()
	}
	return e
}
