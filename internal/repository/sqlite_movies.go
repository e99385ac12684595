package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type SQLiteMovieRepository struct {
	db *sql.DB
}

func NewSQLiteMovieRepository(db *sql.DB) *SQLiteMovieRepository {
	return &SQLiteMovieRepository{
		db: db,
	}
}

func (s *SQLiteMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (id, name, year, rating) VALUES (?, ?, ?, ?)`

	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx, query, id, movie.Name, movie.Year, movie.Rating)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_CHECK {
			return domain.ErrInvalidMovie
		}

		return domain.NewDependencyError("insert movie", err)
	}

	movie.ID = id

	return nil
}

func (s *SQLiteMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, year, rating FROM movies`)
	if err != nil {
		return nil, domain.NewDependencyError("list movies", err)
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(&movie.ID, &movie.Name, &movie.Year, &movie.Rating)
		if err != nil {
			return nil, domain.NewDependencyError("list movies", err)
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, domain.NewDependencyError("list movies", err)
	}

	return movies, nil
}

func (s *SQLiteMovieRepository) Delete(ctx context.Context, id string) error {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, movieID.String())
	if err != nil {
		return domain.NewDependencyError("delete movie", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.NewDependencyError("delete movie", err)
	}

	if affected == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (s *SQLiteMovieRepository) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
