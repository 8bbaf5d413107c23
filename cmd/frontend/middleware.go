package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const headerXRequestID = "X-Request-Id"

type loggerContextKey struct{}

func loggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok {
		return l
	}
	return fallback
}

// statusRecorder records the response status.
// It stays 0 when the handler writes nothing, e.g. for a canceled render.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) statusAttr() slog.Attr {
	if r.status == 0 {
		return slog.String("status", "none")
	}
	return slog.Int("status", r.status)
}

// RequestLogger assigns every request an id and logs it once served.
// The id is returned to the client in the X-Request-Id header and is
// never sent to the backend.
func (h *Handler) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New()

		reqLog := h.log.With("request_id", requestID.String())
		ctx := context.WithValue(r.Context(), loggerContextKey{}, reqLog)

		w.Header().Set(headerXRequestID, requestID.String())
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r.WithContext(ctx))

		reqLog.Info(
			"request served",
			"method", r.Method,
			"path", r.URL.Path,
			rec.statusAttr(),
			"duration", time.Since(start),
		)
	})
}
