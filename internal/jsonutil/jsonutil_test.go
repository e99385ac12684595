package jsonutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
	Year *int   `json:"year"`
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid body", body: `{"name":"Heat","year":1995}`},
		{name: "unknown fields are ignored", body: `{"name":"Heat","director":"Mann"}`},
		{name: "empty body", body: ``, wantErr: "body must not be empty"},
		{name: "syntax error", body: `{"name":}`, wantErr: "body contains badly-formed JSON (at character 9)"},
		{name: "truncated body", body: `{"name":"Heat"`, wantErr: "body contains badly-formed JSON"},
		{name: "wrong type", body: `{"year":"1995"}`, wantErr: `body contains incorrect JSON type for field "year"`},
		{name: "two values", body: `{"name":"a"}{"name":"b"}`, wantErr: "body must only contain a single JSON value"},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`, wantErr: "body must not be larger than 1048576 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst payload
			err := ReadJSON(w, r, &dst)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	headers := http.Header{}
	headers.Set("X-Test", "yes")

	err := WriteJSON(w, http.StatusCreated, map[string]string{"message": "ok"}, headers)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "yes", w.Header().Get("X-Test"))
	assert.Equal(t, "{\"message\":\"ok\"}\n", w.Body.String())
}
