package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_WrongKeyIsRejected(t *testing.T) {
	s, repo, _ := newTestServer(t)
	repo.records["u1"] = 42

	rec := doRequest(t, s, http.MethodGet, "/profiles/u1?key=wrong", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid authentication key.", body.Error)
}

func TestAuth_MissingKeyIsRejected(t *testing.T) {
	s, repo, _ := newTestServer(t)
	repo.records["u1"] = 42

	rec := doRequest(t, s, http.MethodGet, "/profiles/u1", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, repo.saveCalls)
}

func TestAuth_KeyViaQuerySucceeds(t *testing.T) {
	s, repo, _ := newTestServer(t)
	repo.records["u1"] = 42

	rec := doRequest(t, s, http.MethodGet, "/profiles/u1?key="+testSecret, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_KeyViaBodySucceeds(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/profiles/u1",
		`{"key":"`+testSecret+`","experiencePoints":42}`)

	// The gate must restore the body so the handler still sees the points.
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 42.0, body["experiencePoints"])
}

func TestAuth_BodyKeyWinsOverQuery(t *testing.T) {
	s, _, _ := newTestServer(t)

	// Correct key in the body, garbage in the query: body is checked first.
	rec := doRequest(t, s, http.MethodPost, "/profiles/u1?key=wrong",
		`{"key":"`+testSecret+`","experiencePoints":1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_SecretFetchFailureIsServerError(t *testing.T) {
	s, repo, fetcher := newTestServer(t)
	fetcher.err = errors.New("vault unreachable")
	repo.records["u1"] = 42

	rec := doRequest(t, s, http.MethodGet, "/profiles/u1?key="+testSecret, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "vault unreachable")
}

func TestAuth_SecretIsFetchedOnceAcrossRequests(t *testing.T) {
	s, repo, fetcher := newTestServer(t)
	repo.records["u1"] = 42

	for i := 0; i < 5; i++ {
		rec := doRequest(t, s, http.MethodGet, "/profiles/u1?key="+testSecret, "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, fetcher.calls)
}

func TestExtractKey_BodyRestoredForHandler(t *testing.T) {
	payload := `{"key":"abc","experiencePoints":7}`
	req := httptest.NewRequest(http.MethodPost, "/profiles/u1", strings.NewReader(payload))

	key := extractKey(req)
	assert.Equal(t, "abc", key)

	var decoded upsertRequest
	require.NoError(t, json.NewDecoder(req.Body).Decode(&decoded))
	require.NotNil(t, decoded.ExperiencePoints)
	assert.Equal(t, 7.0, *decoded.ExperiencePoints)
}

func TestExtractKey_FallsBackToQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/profiles/u1?key=fromquery", nil)
	assert.Equal(t, "fromquery", extractKey(req))
}
