package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/stretchr/testify/require"
)

// keysToIgnore are nondeterministic fields dropped from both sides before comparing
var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"id":        {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	cleanValue(actual)
	cleanValue(expected)

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) {
	switch val := v.(type) {
	case map[string]any:
		for k := range val {
			if _, ok := keysToIgnore[k]; ok {
				delete(val, k)
				continue
			}
			cleanValue(val[k])
		}
	case []any:
		for _, item := range val {
			cleanValue(item)
		}
	}
}

func resetMovies(t testing.TB, app *TestApp) {
	ctx := context.Background()

	movies, err := app.Repo.GetAll(ctx)
	require.NoError(t, err)

	for _, movie := range movies {
		require.NoError(t, app.Repo.Delete(ctx, movie.ID))
	}
}

func insertTestMovie(t testing.TB, app *TestApp, movie *domain.Movie) string {
	require.NoError(t, app.Repo.Create(context.Background(), movie))
	require.NotEmpty(t, movie.ID)

	return movie.ID
}

func defaultTestMovie() *domain.Movie {
	return &domain.Movie{
		Name:   TestMovieName,
		Year:   TestMovieYear,
		Rating: TestMovieRating,
	}
}

func countMovies(t testing.TB, app *TestApp) int {
	movies, err := app.Repo.GetAll(context.Background())
	require.NoError(t, err)

	return len(movies)
}
