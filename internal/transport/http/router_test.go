package httptransport_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"tripapp/internal/audit"
	"tripapp/internal/booking/cache"
	"tripapp/internal/booking/handler"
	bookingmetrics "tripapp/internal/booking/metrics"
	"tripapp/internal/booking/models"
	"tripapp/internal/booking/service"
	"tripapp/internal/booking/store"
	"tripapp/internal/platform/metrics"
	"tripapp/internal/platform/middleware"
	httptransport "tripapp/internal/transport/http"
	"tripapp/pkg/testutil"
)

var fixedNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

// RouterSuite drives the assembled router against the in-memory store.
type RouterSuite struct {
	suite.Suite
	router      http.Handler
	store       *store.InMemory
	auditEvents *audit.MemoryStore
	registry    *prometheus.Registry
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.DiscardHandler)
	s.registry = prometheus.NewRegistry()
	s.store = store.NewInMemory()
	store.SeedDemoCatalog(s.store, fixedNow)
	s.auditEvents = audit.NewMemoryStore()

	svc, err := service.New(s.store, s.store,
		service.WithLogger(logger),
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithCache(cache.NewMemory(time.Minute)),
		service.WithAuditPublisher(audit.NewPublisher(s.auditEvents)),
		service.WithMetrics(bookingmetrics.New(s.registry)),
	)
	s.Require().NoError(err)

	httpMetrics := metrics.New(s.registry)
	limiter := middleware.NewRateLimiter(1000, 1000, httpMetrics, logger)
	booking := handler.New(svc, logger, handler.WithWriteMiddleware(limiter.Middleware))

	s.router = httptransport.NewRouter(httptransport.Deps{
		Logger:         logger,
		Metrics:        httpMetrics,
		Gatherer:       s.registry,
		RequestTimeout: 5 * time.Second,
	}, booking)
}

func registration(tripID int, name, pesel string) handler.RegisterClientRequest {
	paid := fixedNow.Add(-time.Hour)
	return handler.RegisterClientRequest{
		IDTrip:      tripID,
		TripName:    name,
		FirstName:   "Anna",
		LastName:    "Kowalska",
		Email:       "anna.kowalska@example.com",
		Telephone:   "+48 600 100 200",
		Pesel:       pesel,
		PaymentDate: &paid,
	}
}

func (s *RouterSuite) TestRegisterThenList() {
	t := s.T()
	testutil.Given(t, "a seeded catalog", func(t *testing.T) {
		testutil.When(t, "a new client registers for an upcoming trip", func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/api/trips/3/clients", registration(3, "Tuscan Hills", "92071512345"))
			req.Header.Set(middleware.HeaderRequestID, "req-router-1")
			rr := testutil.DoRequest(s.router, req)

			testutil.Then(t, "the registration is created and audited", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusCreated)
				testutil.AssertHeader(t, rr, middleware.HeaderRequestID, "req-router-1")

				events, err := s.auditEvents.ListByClient(context.Background(), "2")
				require.NoError(t, err)
				require.Len(t, events, 1)
				assert.Equal(t, string(audit.ActionClientRegistered), events[0].Action)
				assert.Equal(t, "3", events[0].TripID)
				assert.Equal(t, "req-router-1", events[0].RequestID)
			})

			testutil.And(t, "the paged listing shows both clients on the trip", func(t *testing.T) {
				rr := testutil.DoRequest(s.router, testutil.NewRequest(t, http.MethodGet, "/api/trips?page=1&pageSize=10"))
				testutil.AssertStatusOK(t, rr)

				page := testutil.UnmarshalResponse[models.PaginatedResult[models.TripSummary]](t, rr)
				assert.Equal(t, 1, page.PageNum)
				assert.Equal(t, 10, page.PageSize)
				require.Len(t, page.Data, 5)
				assert.Equal(t, "Mediterranean Loop", page.Data[0].Name)

				var tuscan *models.TripSummary
				for i := range page.Data {
					if page.Data[i].Name == "Tuscan Hills" {
						tuscan = &page.Data[i]
					}
				}
				require.NotNil(t, tuscan)
				assert.Len(t, tuscan.Clients, 2)
			})

			testutil.And(t, "the client reports trips", func(t *testing.T) {
				rr := testutil.DoRequest(s.router, testutil.NewRequest(t, http.MethodGet, "/api/clients/2/trips"))
				testutil.AssertStatusOK(t, rr)
				testutil.AssertJSONContains(t, rr, "hasTrips", true)
			})
		})
	})
}

func (s *RouterSuite) TestRegistrationRules() {
	cases := []struct {
		name   string
		path   string
		body   handler.RegisterClientRequest
		status int
		code   string
	}{
		{name: "unknown trip", path: "/api/trips/99/clients", body: registration(99, "Nowhere", "92071512345"), status: http.StatusNotFound, code: "trip_not_found"},
		{name: "name mismatch", path: "/api/trips/3/clients", body: registration(3, "Tuscany", "92071512345"), status: http.StatusBadRequest, code: "trip_name_mismatch"},
		{name: "name with trailing space", path: "/api/trips/3/clients", body: registration(3, "Tuscan Hills ", "92071512345"), status: http.StatusBadRequest, code: "trip_name_mismatch"},
		{name: "trip under way", path: "/api/trips/2/clients", body: registration(2, "Tatra Weekend", "92071512345"), status: http.StatusBadRequest, code: "trip_already_started"},
		{name: "known pesel", path: "/api/trips/4/clients", body: registration(4, "Fjord Cruise", "85030412345"), status: http.StatusConflict, code: "duplicate_identity"},
		{name: "route and body disagree", path: "/api/trips/4/clients", body: registration(3, "Tuscan Hills", "92071512345"), status: http.StatusBadRequest, code: "invalid_request"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, tc.path, tc.body))
			testutil.AssertStatusAndError(s.T(), rr, tc.status, tc.code)
		})
	}
}

func (s *RouterSuite) TestDeleteClient() {
	lonely := s.store.AddRegisteredClient(models.Client{
		FirstName: "Ola", LastName: "Zielinska", Email: "ola@example.com",
		Telephone: "+48 700 000 000", Pesel: "90010112345",
	})

	s.Run("client with registrations is refused", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/api/clients/1"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "client_has_registrations")
	})

	s.Run("client without registrations is removed", func() {
		path := "/api/clients/" + strconv.Itoa(lonely.ID)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, path))
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)

		rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, path))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "client_not_found")
	})
}

func (s *RouterSuite) TestMutationsRequireJSON() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/api/trips/3/clients", "{}")
	req.Header.Set("Content-Type", "text/plain")
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusUnsupportedMediaType)
}

func (s *RouterSuite) TestMetricsEndpoint() {
	testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/trips"))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(s.T(), rr)
	body := rr.Body.String()
	s.Contains(body, "tripapp_http_request_duration_seconds")
	s.Contains(body, `route="/api/trips"`)
}

func TestHealth(t *testing.T) {
	t.Run("healthy without checks", func(t *testing.T) {
		router := httptransport.NewRouter(httptransport.Deps{})
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "status", "ok")
	})

	t.Run("failing dependency degrades", func(t *testing.T) {
		router := httptransport.NewRouter(httptransport.Deps{
			HealthChecks: map[string]httptransport.HealthCheck{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return errors.New("connection refused") },
			},
		})
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		assert.Contains(t, rr.Body.String(), "connection refused")
		testutil.AssertJSONContains(t, rr, "status", "degraded")
	})
}
