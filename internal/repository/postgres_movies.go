package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (id, name, year, rating)
		VALUES ($1, $2, $3, $4)`

	id := uuid.New()

	_, err := p.db.Exec(ctx, query, id.String(), movie.Name, movie.Year, movie.Rating)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return domain.ErrInvalidMovie
		}

		return domain.NewDependencyError("insert movie", err)
	}

	movie.ID = id.String()

	return nil
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT id::text, name, year, rating::float8 FROM movies`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, domain.NewDependencyError("list movies", err)
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.Year,
			&movie.Rating,
		)
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

func (p *PostgresMovieRepository) Delete(ctx context.Context, id string) error {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	result, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, movieID.String())
	if err != nil {
		return domain.NewDependencyError("delete movie", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}
