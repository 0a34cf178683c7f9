package audit

import (
	"context"
	"log/slog"
)

// LogStore writes events to a structured logger. It is the default sink when no
// broker is configured.
type LogStore struct {
	logger *slog.Logger
}

func NewLogStore(logger *slog.Logger) *LogStore {
	return &LogStore{logger: logger}
}

func (s *LogStore) Append(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "audit event",
		"log_type", "audit_sink",
		"event_id", event.ID.String(),
		"action", event.Action,
		"client_id", event.ClientID,
		"trip_id", event.TripID,
		"request_id", event.RequestID,
		"timestamp", event.Timestamp,
	)
	return nil
}
