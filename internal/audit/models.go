package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Action names the booking change an event records.
type Action string

const (
	ActionClientRegistered Action = "client_registered"
	ActionClientDeleted    Action = "client_deleted"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	ClientID  string    `json:"client_id,omitempty"`
	TripID    string    `json:"trip_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// Store is an append-only sink for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}
