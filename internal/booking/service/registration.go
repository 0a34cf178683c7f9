package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tripapp/internal/audit"
	"tripapp/internal/booking/models"
	dErrors "tripapp/pkg/domain-errors"
	"tripapp/pkg/platform/sentinel"
)

// RegisterClientForTrip creates a client from req and registers it for the trip
// identified by routeTripID.
//
// Checks run in this order and the first failure is returned:
//  1. routeTripID must equal req.TripID (CodeInvalidRequest)
//  2. the trip must exist (CodeTripNotFound)
//  3. req.TripName must equal the stored name (CodeTripNameMismatch)
//  4. the trip must start strictly after now (CodeTripAlreadyStarted)
//  5. no client may hold req.Pesel (CodeDuplicateIdentity)
//  6. req.Pesel must not be registered for the trip (CodeAlreadyRegistered)
//
// The client and its registration are committed together or not at all.
func (s *Service) RegisterClientForTrip(ctx context.Context, routeTripID int, req models.RegistrationRequest) (err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "booking.RegisterClientForTrip",
		trace.WithAttributes(attribute.Int("trip.id", routeTripID)))
	defer func() {
		endSpan(span, err)
		s.observeRegistration(start, err)
	}()

	if routeTripID != req.TripID {
		return dErrors.New(dErrors.CodeInvalidRequest, "Trip ID in the route does not match Trip ID in the request body.")
	}
	if err := checkContext(ctx, "registration aborted"); err != nil {
		return err
	}

	repo, err := s.uow.Begin(ctx)
	if err != nil {
		return storageError(ctx, err, "failed to open unit of work")
	}

	trip, err := repo.FindTripByID(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeTripNotFound, fmt.Sprintf("Trip with ID %d not found.", req.TripID))
		}
		return storageError(ctx, err, "failed to load trip")
	}
	if trip.Name != req.TripName {
		return dErrors.New(dErrors.CodeTripNameMismatch,
			fmt.Sprintf("The provided trip name '%s' does not match the name of trip ID %d.", req.TripName, req.TripID))
	}
	now := s.now()
	if trip.HasStartedBy(now) {
		return dErrors.New(dErrors.CodeTripAlreadyStarted, "Cannot register for a trip that has already started or occurred.")
	}

	// Global identity collisions are reported ahead of per-trip duplicates.
	taken, err := repo.ClientExistsWithPesel(ctx, req.Pesel)
	if err != nil {
		return storageError(ctx, err, "failed to check pesel")
	}
	if taken {
		return duplicateIdentity(req.Pesel)
	}
	registered, err := repo.IsClientRegisteredForTrip(ctx, req.TripID, req.Pesel)
	if err != nil {
		return storageError(ctx, err, "failed to check registration")
	}
	if registered {
		return dErrors.New(dErrors.CodeAlreadyRegistered,
			fmt.Sprintf("Client with PESEL '%s' is already registered for trip ID %d.", req.Pesel, req.TripID))
	}

	client, err := repo.InsertClient(ctx, req.NewClient())
	if err != nil {
		return storageError(ctx, err, "failed to insert client")
	}
	err = repo.InsertRegistration(ctx, &models.Registration{
		ClientID:     client.ID,
		TripID:       req.TripID,
		RegisteredAt: now,
		PaymentDate:  req.PaymentDate,
	})
	if err != nil {
		return storageError(ctx, err, "failed to insert registration")
	}

	if err := checkContext(ctx, "registration aborted before commit"); err != nil {
		return err
	}
	if _, err := repo.Commit(ctx); err != nil {
		if errors.Is(err, sentinel.ErrDuplicate) {
			return duplicateIdentity(req.Pesel)
		}
		return storageError(ctx, err, "failed to commit registration")
	}

	s.invalidateListings(ctx)
	s.logAudit(ctx, audit.ActionClientRegistered,
		"client_id", client.ID,
		"trip_id", req.TripID)
	return nil
}

func duplicateIdentity(pesel string) error {
	return dErrors.New(dErrors.CodeDuplicateIdentity,
		fmt.Sprintf("A client with PESEL '%s' already exists in the system.", pesel))
}
