package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"speakerservice/internal/adapters/auth"
	deliveryhttp "speakerservice/internal/delivery/http"
	"speakerservice/internal/delivery/http/controllers"
	"speakerservice/internal/delivery/http/middleware"
	"speakerservice/internal/repository/memory"
	"speakerservice/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func newTestServer(t *testing.T, pageSize int, requireAuth func(http.HandlerFunc) http.HandlerFunc) *httptest.Server {
	t.Helper()
	repo := memory.NewSpeakerRepository(pageSize)
	svc := services.NewSpeakerService(repo, nil, time.Second)
	c := controllers.NewSpeakerController(testLogger, svc, "/talks/")
	srv := httptest.NewServer(middleware.RequestID(deliveryhttp.NewRouter(c, requireAuth)))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string, header map[string]string) *http.Response {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_SpeakerLifecycle(t *testing.T) {
	srv := newTestServer(t, 2, middleware.NoAuth)

	resp := do(t, http.MethodGet, srv.URL+"/speakers", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/speakers",
		`{"first_name":"Ada","last_name":"Lovelace","bio":"Engines","accepted_talks":[{"id":"t1","title":"Notes"}]}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	location := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(location, srv.URL+"/speakers/"), location)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	resp = do(t, http.MethodGet, location+"?expand=true", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	var body struct {
		Data struct {
			Bio           string `json:"bio"`
			AcceptedTalks []struct {
				ID    string            `json:"id"`
				Links map[string]string `json:"links"`
			} `json:"accepted_talks"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Engines", body.Data.Bio)
	require.Len(t, body.Data.AcceptedTalks, 1)
	assert.Equal(t, srv.URL+"/talks/t1", body.Data.AcceptedTalks[0].Links["self"])

	resp = do(t, http.MethodGet, location, "", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	for _, name := range []string{"Grace", "Alan"} {
		resp = do(t, http.MethodPost, srv.URL+"/speakers", `{"first_name":"`+name+`"}`, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp = do(t, http.MethodGet, srv.URL+"/speakers?page=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page struct {
		Data struct {
			Speakers []json.RawMessage `json:"speakers"`
			Links    map[string]string `json:"links"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Len(t, page.Data.Speakers, 1)
	assert.Equal(t, srv.URL+"/speakers?page=2", page.Data.Links["last"])
	assert.Equal(t, srv.URL+"/speakers?page=1", page.Data.Links["previous"])

	resp = do(t, http.MethodGet, srv.URL+"/speakers?page=3", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodDelete, location, "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, http.MethodDelete, location, "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, location, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_HugePageIsNotFound(t *testing.T) {
	srv := newTestServer(t, 10, middleware.NoAuth)
	resp := do(t, http.MethodPost, srv.URL+"/speakers", `{"first_name":"Ada"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, page := range []string{"9223372036854775807", "922337203685477581", "1000000"} {
		resp = do(t, http.MethodGet, srv.URL+"/speakers?page="+page, "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, page)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, 10, middleware.NoAuth)
	resp := do(t, http.MethodPut, srv.URL+"/speakers/abc", `{}`, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouter_Healthz(t *testing.T) {
	srv := newTestServer(t, 10, middleware.NoAuth)
	resp := do(t, http.MethodGet, srv.URL+"/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_AuthGatesMutatingRoutes(t *testing.T) {
	const secret = "router-test-secret"
	requireAuth := middleware.RequireAuth(auth.NewJWTVerifier(secret), testLogger)
	srv := newTestServer(t, 10, requireAuth)

	resp := do(t, http.MethodPost, srv.URL+"/speakers", `{"first_name":"Ada"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = do(t, http.MethodDelete, srv.URL+"/speakers/x", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = do(t, http.MethodPost, srv.URL+"/speakers/import/sessionize/abc", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// reads stay public
	resp = do(t, http.MethodGet, srv.URL+"/speakers/x", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	token, err := auth.NewJWTIssuer(secret).Issue("operator", time.Minute)
	require.NoError(t, err)
	bearer := map[string]string{"Authorization": "Bearer " + token}
	resp = do(t, http.MethodPost, srv.URL+"/speakers", `{"first_name":"Ada"}`, bearer)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = do(t, http.MethodDelete, srv.URL+"/speakers/x", "", bearer)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
