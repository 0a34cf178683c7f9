// Package service holds the booking workflows: registering a client for a trip,
// deleting a client, and listing the trip catalog.
//
// Each workflow opens one Repository from the UnitOfWork, runs its checks in a
// fixed order and short-circuits on the first failure. Writes are staged on the
// Repository and only become durable at Commit.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tripapp/internal/audit"
	"tripapp/internal/booking/metrics"
	"tripapp/internal/booking/models"
	"tripapp/pkg/attrs"
	dErrors "tripapp/pkg/domain-errors"
	"tripapp/pkg/requestcontext"
)

const tracerName = "tripapp/internal/booking/service"

// Repository is a request-scoped view of trips, clients and registrations.
// Any error it returns is a storage fault. InsertClient and InsertRegistration
// stage rows that are discarded unless Commit succeeds.
type Repository interface {
	FindTripByID(ctx context.Context, tripID int) (*models.Trip, error)
	ClientExistsWithPesel(ctx context.Context, pesel string) (bool, error)
	IsClientRegisteredForTrip(ctx context.Context, tripID int, pesel string) (bool, error)
	InsertClient(ctx context.Context, client *models.Client) (*models.Client, error)
	InsertRegistration(ctx context.Context, registration *models.Registration) error
	Commit(ctx context.Context) (int, error)
	ClientExists(ctx context.Context, clientID int) (bool, error)
	ClientHasRegistrations(ctx context.Context, clientID int) (bool, error)
	DeleteClient(ctx context.Context, clientID int) (bool, error)
}

// UnitOfWork opens a Repository for one workflow invocation.
type UnitOfWork interface {
	Begin(ctx context.Context) (Repository, error)
}

// TripCatalog is the read-only listing side of the store.
type TripCatalog interface {
	ListTripsPage(ctx context.Context, offset, limit int) ([]models.TripDetails, int, error)
	ListAllTrips(ctx context.Context) ([]models.TripDetails, error)
}

// TripCache caches paginated listings. Implementations treat their own
// failures as misses.
//
// A miss reports the cache generation observed before the caller reads the
// catalog. Set stores the page only while that generation is still current, so
// a page loaded across an Invalidate is dropped instead of cached.
type TripCache interface {
	Get(ctx context.Context, key string) (page *models.PaginatedResult[models.TripSummary], gen int64, ok bool)
	Set(ctx context.Context, gen int64, key string, page *models.PaginatedResult[models.TripSummary])
	Invalidate(ctx context.Context)
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// Service orchestrates the booking workflows.
type Service struct {
	uow            UnitOfWork
	catalog        TripCatalog
	cache          TripCache
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
	now            func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithCache(c TripCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithClock overrides the time source used for start-date checks and RegisteredAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service. The unit of work and catalog are required.
func New(uow UnitOfWork, catalog TripCatalog, opts ...Option) (*Service, error) {
	if uow == nil {
		return nil, errors.New("unit of work is required")
	}
	if catalog == nil {
		return nil, errors.New("trip catalog is required")
	}
	s := &Service{
		uow:     uow,
		catalog: catalog,
		now:     time.Now,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// storageError translates a repository failure. Cancellation and deadline
// outcomes keep their own codes so callers never mistake them for rule failures.
func storageError(ctx context.Context, err error, msg string) error {
	if cerr := contextError(ctx, err); cerr != nil {
		return dErrors.Wrap(cerr, contextCode(cerr), msg)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func contextError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return context.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return context.DeadlineExceeded
	}
	return ctx.Err()
}

func contextCode(err error) dErrors.Code {
	if errors.Is(err, context.DeadlineExceeded) {
		return dErrors.CodeTimeout
	}
	return dErrors.CodeCanceled
}

// checkContext aborts before a blocking step when the caller has gone away.
func checkContext(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, contextCode(err), msg)
	}
	return nil
}

func (s *Service) startSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, opts...)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
	}
	span.End()
}

func (s *Service) invalidateListings(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func (s *Service) logAudit(ctx context.Context, event audit.Action, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", string(event), "log_type", "audit")
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(event), args...)
	}
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:    string(event),
		ClientID:  attrs.ExtractString(attributes, "client_id"),
		TripID:    attrs.ExtractString(attributes, "trip_id"),
		RequestID: requestID,
	})
	if err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "error", err, "event", string(event))
	}
}

func codeLabel(err error) string {
	if err == nil {
		return ""
	}
	return string(dErrors.CodeOf(err))
}

func (s *Service) observeRegistration(start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveRegistration(start, codeLabel(err))
	}
}

func (s *Service) incrementDeletion(err error) {
	if s.metrics != nil {
		s.metrics.IncrementDeletion(codeLabel(err))
	}
}
