package integration_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/metinatakli/movie-catalog/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

// BaseSuite starts the datastore selected by store plus a redis instance for
// sessions, and builds the application on top of them.
type BaseSuite struct {
	suite.Suite
	store          string
	app            *TestApp
	mongoContainer *MongoContainer
	dbContainer    *PostgresContainer
	cacheContainer *RedisContainer
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	cfg := app.Config{
		Port:  8081,
		Env:   "test",
		Store: s.store,
		Auth: app.AuthConfig{
			Username: TestUsername,
			Password: TestPassword,
		},
		CORS: app.CORSConfig{
			TrustedOrigins: []string{"http://localhost:3000"},
		},
	}

	switch s.store {
	case app.StoreMongo:
		mongoContainer, err := getMongoContainer(ctx)
		s.Require().NoError(err, "failed to start container")

		s.mongoContainer = mongoContainer
		cfg.Mongo = app.MongoConfig{
			URI:      mongoContainer.ConnectionString,
			Database: dbName,
		}

	case app.StorePostgres:
		postgresContainer, err := getDbContainer(ctx)
		s.Require().NoError(err, "failed to start container")

		s.dbContainer = postgresContainer
		cfg.DB = app.DBConfig{
			DSN:          postgresContainer.ConnectionString,
			MaxOpenConns: 25,
			MaxIdleTime:  2 * time.Minute,
		}

	case app.StoreSQLite:
		cfg.SQLite = app.SQLiteConfig{
			Path: filepath.Join(s.T().TempDir(), "movies.db"),
		}
	}

	redisContainer, err := getCacheContainer(ctx)
	s.Require().NoError(err, "failed to start container")

	s.cacheContainer = redisContainer
	cfg.Redis = app.RedisConfig{
		URL:          redisContainer.ConnectionString,
		MaxOpenConns: 10,
		MaxIdleConns: 10,
		MaxIdleTime:  2 * time.Minute,
	}

	testApp, err := newTestApp(cfg)
	s.Require().NoError(err, "cannot initialize app")

	s.app = testApp
}

func (s *BaseSuite) TearDownSuite() {
	if s.app != nil {
		s.app.Close()
	}

	var containers []testcontainers.Container
	if s.mongoContainer != nil {
		containers = append(containers, s.mongoContainer.Container)
	}
	if s.dbContainer != nil {
		containers = append(containers, s.dbContainer.Container.Container)
	}
	if s.cacheContainer != nil {
		containers = append(containers, s.cacheContainer.Container)
	}

	for _, c := range containers {
		if err := testcontainers.TerminateContainer(c); err != nil {
			s.T().Logf("failed to terminate container: %s", err)
		}
	}
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers)
		require.NoError(t, err)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
