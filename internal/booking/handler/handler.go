package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tripapp/internal/booking/models"
	dErrors "tripapp/pkg/domain-errors"
	"tripapp/pkg/platform/httputil"
	"tripapp/pkg/requestcontext"
)

// Service defines the booking operations exposed over HTTP.
type Service interface {
	RegisterClientForTrip(ctx context.Context, tripID int, req models.RegistrationRequest) error
	DeleteClient(ctx context.Context, clientID int) (bool, error)
	ClientHasTrips(ctx context.Context, clientID int) (bool, error)
	ListTripsPage(ctx context.Context, page, pageSize int) (*models.PaginatedResult[models.TripSummary], error)
	ListAllTrips(ctx context.Context) ([]models.TripSummary, error)
}

// Handler serves the trip and client endpoints.
type Handler struct {
	service         Service
	logger          *slog.Logger
	writeMiddleware []func(http.Handler) http.Handler
}

type Option func(*Handler)

// WithWriteMiddleware wraps only the mutating routes, e.g. with a rate limiter.
func WithWriteMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(h *Handler) {
		h.writeMiddleware = append(h.writeMiddleware, mw...)
	}
}

// New creates a booking Handler.
func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{service: service, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers the booking routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/trips", h.handleListTrips)
	r.Get("/api/clients/{id}/trips", h.handleClientHasTrips)

	r.Group(func(w chi.Router) {
		w.Use(h.writeMiddleware...)
		w.Post("/api/trips/{idTrip}/clients", h.handleRegisterClient)
		w.Delete("/api/clients/{id}", h.handleDeleteClient)
	})
}

// handleListTrips returns the full listing when neither page nor pageSize is
// given, otherwise one page.
func (h *Handler) handleListTrips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	if !query.Has("page") && !query.Has("pageSize") {
		trips, err := h.service.ListAllTrips(ctx)
		if err != nil {
			h.writeServiceError(ctx, w, err, "failed to list trips")
			return
		}
		httputil.WriteJSON(w, http.StatusOK, trips)
		return
	}

	page, err := intQuery(query.Get("page"), models.DefaultPage)
	if err != nil {
		h.writeServiceError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "page must be an integer"), "invalid listing request")
		return
	}
	pageSize, err := intQuery(query.Get("pageSize"), models.DefaultPageSize)
	if err != nil {
		h.writeServiceError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "pageSize must be an integer"), "invalid listing request")
		return
	}

	result, err := h.service.ListTripsPage(ctx, page, pageSize)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list trips")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleRegisterClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tripID, err := strconv.Atoi(chi.URLParam(r, "idTrip"))
	if err != nil {
		h.writeServiceError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "trip id must be an integer"), "invalid registration request")
		return
	}

	var body RegisterClientRequest
	if err := httputil.DecodeJSON(r, &body); err != nil {
		h.writeServiceError(ctx, w, err, "invalid registration request")
		return
	}
	req := body.toModel()
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.writeServiceError(ctx, w, err, "invalid registration request")
		return
	}

	if err := h.service.RegisterClientForTrip(ctx, tripID, req); err != nil {
		h.writeServiceError(ctx, w, err, "failed to register client")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "client id must be an integer"), "invalid deletion request")
		return
	}
	if _, err := h.service.DeleteClient(ctx, clientID); err != nil {
		h.writeServiceError(ctx, w, err, "failed to delete client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClientHasTrips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "client id must be an integer"), "invalid lookup request")
		return
	}
	hasTrips, err := h.service.ClientHasTrips(ctx, clientID)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to look up client trips")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ClientTripsResponse{HasTrips: hasTrips})
}

// writeServiceError logs at warn for caller mistakes and rule violations and at
// error for everything that maps to a 5xx.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	requestID := requestcontext.RequestID(ctx)
	code := dErrors.CodeOf(err)
	if httputil.StatusFor(code) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestID,
			"code", string(code),
			"error", err.Error(),
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestID,
			"code", string(code),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}

func intQuery(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
