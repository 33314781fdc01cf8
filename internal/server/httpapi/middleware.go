package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const contextKeyRequestID ctxKey = "requestID"

// withMiddleware wraps a profile handler with the common middleware chain.
func (s *Server) withMiddleware(pattern string, handler http.HandlerFunc) http.HandlerFunc {
	return s.metricsMiddleware(pattern,
		s.requestIDMiddleware(
			s.panicRecoveryMiddleware(
				s.loggingMiddleware(handler),
			),
		),
	)
}

// requestIDMiddleware extracts or generates request IDs.
func (s *Server) requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// panicRecoveryMiddleware recovers from handler panics and responds 500.
func (s *Server) panicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				panicRecoveries.Inc()
				s.logger.Error(r.Context(), "panic recovered",
					"error", fmt.Sprintf("%v", err),
					"path", r.URL.Path,
					"method", r.Method,
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	}
}

// loggingMiddleware logs request completion with status and duration.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		s.logger.Debug(r.Context(), "request completed",
			"requestID", r.Context().Value(contextKeyRequestID),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
