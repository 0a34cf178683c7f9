package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tripapp/internal/booking/models"
)

// ListTripsPage returns one page of trips, newest start date first. page and
// pageSize are normalized by models.NewPageRequest.
func (s *Service) ListTripsPage(ctx context.Context, page, pageSize int) (result *models.PaginatedResult[models.TripSummary], err error) {
	req := models.NewPageRequest(page, pageSize)
	start := time.Now()
	ctx, span := s.startSpan(ctx, "booking.ListTripsPage", trace.WithAttributes(
		attribute.Int("page", req.Page),
		attribute.Int("page_size", req.PageSize),
	))
	defer func() {
		endSpan(span, err)
		s.observeListing(start)
	}()

	key := pageCacheKey(req)
	var gen int64
	if s.cache != nil {
		cached, observed, ok := s.cache.Get(ctx, key)
		if ok {
			s.recordCacheLookup(true)
			return cached, nil
		}
		s.recordCacheLookup(false)
		gen = observed
	}

	details, total, err := s.catalog.ListTripsPage(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, storageError(ctx, err, "failed to list trips")
	}
	result = models.NewPaginatedResult(req, total, ToTripSummaries(details))

	if s.cache != nil {
		s.cache.Set(ctx, gen, key, result)
	}
	return result, nil
}

// ListAllTrips returns every trip, earliest start date first.
func (s *Service) ListAllTrips(ctx context.Context) (trips []models.TripSummary, err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "booking.ListAllTrips")
	defer func() {
		endSpan(span, err)
		s.observeListing(start)
	}()

	details, err := s.catalog.ListAllTrips(ctx)
	if err != nil {
		return nil, storageError(ctx, err, "failed to list trips")
	}
	return ToTripSummaries(details), nil
}

func pageCacheKey(req models.PageRequest) string {
	return fmt.Sprintf("page=%d:size=%d", req.Page, req.PageSize)
}

func (s *Service) recordCacheLookup(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.IncrementCacheHit()
		return
	}
	s.metrics.IncrementCacheMiss()
}

func (s *Service) observeListing(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveListing(start)
	}
}
