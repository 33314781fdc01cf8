package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesNewID(t *testing.T) {
	s, _, _ := newTestServer(t)

	var captured string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(contextKeyRequestID).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.NotEmpty(t, captured)
	_, err := uuid.Parse(captured)
	assert.NoError(t, err)
	assert.Equal(t, captured, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDMiddleware_KeepsValidIncomingID(t *testing.T) {
	s, _, _ := newTestServer(t)

	incoming := uuid.New().String()

	var captured string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(contextKeyRequestID).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", incoming)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, incoming, captured)
}

func TestRequestIDMiddleware_ReplacesInvalidIncomingID(t *testing.T) {
	s, _, _ := newTestServer(t)

	var captured string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(contextKeyRequestID).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	rec := httptest.NewRecorder()
	handler(rec, req)

	_, err := uuid.Parse(captured)
	assert.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", captured)
}

func TestPanicRecoveryMiddleware_Responds500(t *testing.T) {
	s, _, _ := newTestServer(t)

	handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestResponseWriter_SuppressesDuplicateWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK) // must be ignored

	assert.Equal(t, http.StatusNotFound, rw.Status())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, err := rw.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.Status())
}
