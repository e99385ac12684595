package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/mocks"
	"github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Port:  8081,
		Env:   "test",
		Store: StoreMongo,
		Auth: AuthConfig{
			Username: "admin",
			Password: "admin",
		},
		Limiter: LimiterConfig{
			Enabled: false,
			RPS:     2,
			Burst:   4,
		},
		CORS: CORSConfig{
			TrustedOrigins: []string{"http://localhost:3000"},
		},
	}
}

func newTestApplication(t *testing.T, repo domain.MovieRepository, opts ...func(*Config)) *Application {
	t.Helper()

	cfg := testConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if repo == nil {
		repo = &mocks.MockMovieRepo{}
	}

	app, err := NewApp(
		cfg,
		discardLogger(),
		validator.NewValidator(),
		NewSessionManager(nil),
		repo,
	)
	require.NoError(t, err)

	return app
}

// executeRequest marshals body as JSON. A string body is sent as is so tests
// can post malformed payloads.
func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var payload []byte

	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		payload = jsonData
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func serve(t *testing.T, app *Application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	w, r := executeRequest(t, method, url, body)
	app.Routes().ServeHTTP(w, r)

	return w
}

// checkErrorResponse accepts either error body shape. For validation
// failures wantErrMessage is matched against the field issues.
func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	var resp api.ValidationErrorResponse
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if resp.RequestId == "" {
		t.Errorf("Error response is missing requestId")
	}

	if resp.Error == "" || resp.Error != resp.Message {
		t.Errorf("Error = %q, want it to repeat message %q", resp.Error, resp.Message)
	}

	if wantErrMessage == "" {
		return
	}

	if len(resp.ValidationErrors) == 0 {
		if resp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", resp.Message, wantErrMessage)
		}
		return
	}

	issues := make(map[string]bool)
	for _, vErr := range resp.ValidationErrors {
		issues[vErr.Issue] = true
	}

	if !issues[wantErrMessage] {
		t.Errorf("Expected validation error message '%s' not found in response", wantErrMessage)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}
