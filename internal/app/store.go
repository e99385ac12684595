package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/repository"
	"github.com/metinatakli/movie-catalog/migrations"
)

// OpenMovieRepository connects to the configured store, applies pending
// migrations for the SQL stores and returns the repository with a function
// releasing its connections.
func OpenMovieRepository(ctx context.Context, cfg Config, logger *slog.Logger) (domain.MovieRepository, func(), error) {
	switch cfg.Store {
	case StoreMongo:
		client, err := NewMongoClient(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to mongodb: %w", err)
		}

		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			client.Disconnect(ctx)
		}

		return repository.NewMongoMovieRepository(client.Database(cfg.Mongo.Database), logger), closeFn, nil

	case StorePostgres:
		err := migrations.UpPostgres(cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}

		db, err := NewDatabasePool(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}

		return repository.NewPostgresMovieRepository(db), db.Close, nil

	case StoreSQLite:
		err := migrations.UpSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}

		db, err := NewSQLiteDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}

		return repository.NewSQLiteMovieRepository(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func NewSQLiteDB(ctx context.Context, cfg Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.SQLite.Path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
