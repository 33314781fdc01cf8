package httpapi

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
)

// maxAuthPeekBytes bounds how much of the body the auth gate reads while
// looking for the key field. Profile payloads are a few dozen bytes.
const maxAuthPeekBytes = 1 << 20

// requireAuth gates a handler behind the shared api key. The candidate key
// is taken from the JSON body field "key" first, then from the "key" query
// parameter. The body is restored afterwards so handlers can decode it
// again.
//
// A vault failure is a server error; it never lets the request through.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		secret, err := s.secrets.Get(r.Context())
		if err != nil {
			s.logger.Error(r.Context(), "secret fetch failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		candidate := extractKey(r)

		if candidate == "" || subtle.ConstantTimeCompare([]byte(candidate), []byte(secret)) != 1 {
			authFailures.Inc()
			writeError(w, http.StatusUnauthorized, "Invalid authentication key.")
			return
		}

		next.ServeHTTP(w, r)
	}
}

// extractKey peeks the candidate key from the request. Body wins over query.
func extractKey(r *http.Request) string {
	if r.Body != nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxAuthPeekBytes))
		if err == nil {
			// put the payload back for the downstream handler
			r.Body = io.NopCloser(bytes.NewReader(body))

			var payload struct {
				Key string `json:"key"`
			}
			if json.Unmarshal(body, &payload) == nil && payload.Key != "" {
				return payload.Key
			}
		}
	}

	return r.URL.Query().Get("key")
}
