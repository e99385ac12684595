package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc func(ctx context.Context, movie *domain.Movie) error
	GetAllFunc func(ctx context.Context) ([]*domain.Movie, error)
	DeleteFunc func(ctx context.Context, id string) error
	PingFunc   func(ctx context.Context) error
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func (m *MockMovieRepo) Ping(ctx context.Context) error {
	if m.PingFunc == nil {
		return nil
	}

	return m.PingFunc(ctx)
}
