package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mssola/useragent"

	"tripapp/pkg/requestcontext"
)

// Logger emits one access log line per request.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			ctx := r.Context()
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			attrs = append(attrs, requestcontext.LogAttrs(ctx)...)
			if raw := r.Header.Get("User-Agent"); raw != "" {
				ua := useragent.New(raw)
				browser, version := ua.Browser()
				attrs = append(attrs,
					"browser", browser,
					"browser_version", version,
					"os", ua.OS(),
					"bot", ua.Bot(),
				)
			}

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.ErrorContext(ctx, "http request", attrs...)
			case rec.status >= http.StatusBadRequest:
				logger.WarnContext(ctx, "http request", attrs...)
			default:
				logger.InfoContext(ctx, "http request", attrs...)
			}
		})
	}
}
