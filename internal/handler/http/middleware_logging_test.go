package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggedRequest runs one request through withLogging inside a chi router and
// returns the decoded access log line.
func loggedRequest(t *testing.T, status int, body string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l := zerolog.New(&buf)

	h := &Handler{}
	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/folders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		if status != 0 {
			w.WriteHeader(status)
		}
		_, _ = w.Write([]byte(body))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/folders/7?x=1", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	router.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return line
}

func TestWithLogging_Fields(t *testing.T) {
	line := loggedRequest(t, http.StatusOK, `{"id":7}`)

	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "/api/folders/{id}", line["route"])
	assert.Equal(t, "/api/folders/7?x=1", line["uri"])
	assert.Equal(t, http.MethodGet, line["method"])
	assert.EqualValues(t, http.StatusOK, line["status"])
	assert.EqualValues(t, len(`{"id":7}`), line["size"])
	assert.Contains(t, line, "duration")
}

func TestWithLogging_LevelByStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{0, "info"},
		{http.StatusCreated, "info"},
		{http.StatusNotFound, "warn"},
		{http.StatusTooManyRequests, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		line := loggedRequest(t, tt.status, "")
		assert.Equal(t, tt.wantLevel, line["level"], "status %d", tt.status)
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	line := loggedRequest(t, 0, "")
	assert.EqualValues(t, http.StatusOK, line["status"])
}
