package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tripapp/internal/audit"
	dErrors "tripapp/pkg/domain-errors"
	"tripapp/pkg/platform/sentinel"
)

// DeleteClient removes a client that owns no registrations. Registrations are
// never removed here; a client with any registration is refused.
func (s *Service) DeleteClient(ctx context.Context, clientID int) (deleted bool, err error) {
	ctx, span := s.startSpan(ctx, "booking.DeleteClient",
		trace.WithAttributes(attribute.Int("client.id", clientID)))
	defer func() {
		endSpan(span, err)
		s.incrementDeletion(err)
	}()

	if err := checkContext(ctx, "deletion aborted"); err != nil {
		return false, err
	}
	repo, err := s.uow.Begin(ctx)
	if err != nil {
		return false, storageError(ctx, err, "failed to open unit of work")
	}

	exists, err := repo.ClientExists(ctx, clientID)
	if err != nil {
		return false, storageError(ctx, err, "failed to check client")
	}
	if !exists {
		return false, clientNotFound(clientID)
	}
	hasTrips, err := repo.ClientHasRegistrations(ctx, clientID)
	if err != nil {
		return false, storageError(ctx, err, "failed to check client registrations")
	}
	if hasTrips {
		return false, dErrors.New(dErrors.CodeClientHasRegistrations, "Client has trips.")
	}

	removed, err := repo.DeleteClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return false, dErrors.New(dErrors.CodeClientHasRegistrations, "Client has trips.")
		}
		return false, storageError(ctx, err, "failed to delete client")
	}
	if !removed {
		// existence was confirmed above, so zero rows is a store inconsistency
		return false, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("client %d was not removed", clientID))
	}

	s.invalidateListings(ctx)
	s.logAudit(ctx, audit.ActionClientDeleted, "client_id", clientID)
	return true, nil
}

// ClientHasTrips reports whether the client owns at least one registration.
func (s *Service) ClientHasTrips(ctx context.Context, clientID int) (hasTrips bool, err error) {
	ctx, span := s.startSpan(ctx, "booking.ClientHasTrips",
		trace.WithAttributes(attribute.Int("client.id", clientID)))
	defer func() { endSpan(span, err) }()

	if err := checkContext(ctx, "lookup aborted"); err != nil {
		return false, err
	}
	repo, err := s.uow.Begin(ctx)
	if err != nil {
		return false, storageError(ctx, err, "failed to open unit of work")
	}
	exists, err := repo.ClientExists(ctx, clientID)
	if err != nil {
		return false, storageError(ctx, err, "failed to check client")
	}
	if !exists {
		return false, clientNotFound(clientID)
	}
	hasTrips, err = repo.ClientHasRegistrations(ctx, clientID)
	if err != nil {
		return false, storageError(ctx, err, "failed to check client registrations")
	}
	return hasTrips, nil
}

func clientNotFound(clientID int) error {
	return dErrors.New(dErrors.CodeClientNotFound, fmt.Sprintf("Client with ID %d not found.", clientID))
}
