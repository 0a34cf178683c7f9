package httpserver

import (
	"net/http"

	"tripapp/internal/platform/config"
)

// New builds an HTTP server from the server configuration. The write timeout
// leaves headroom over the per-request timeout so handlers can still answer.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.RequestTimeout + cfg.ReadHeaderTimeout,
		IdleTimeout:       2 * cfg.RequestTimeout,
	}
}
