package integration_test

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/metinatakli/movie-catalog/internal/app"
	"github.com/metinatakli/movie-catalog/internal/domain"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App   *app.Application
	Repo  domain.MovieRepository
	Redis *redis.Client
	close func()
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	var out io.Writer = io.Discard
	if os.Getenv("TEST_LOG") != "" {
		out = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(out, nil))

	repo, closeStore, err := app.OpenMovieRepository(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = app.NewRedisClient(cfg)
		if err != nil {
			closeStore()
			return nil, err
		}
	}

	application, err := app.NewApp(
		cfg,
		logger,
		appvalidator.NewValidator(),
		app.NewSessionManager(redisClient),
		repo,
	)
	if err != nil {
		closeStore()
		if redisClient != nil {
			redisClient.Close()
		}
		return nil, err
	}

	return &TestApp{
		App:   application,
		Repo:  repo,
		Redis: redisClient,
		close: func() {
			closeStore()
			if redisClient != nil {
				redisClient.Close()
			}
		},
	}, nil
}

func (a *TestApp) Close() {
	a.close()
}
