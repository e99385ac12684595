package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Name != nil {
		*input.Name = strings.TrimSpace(*input.Name)
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := &domain.Movie{
		Name:   *input.Name,
		Year:   *input.Year,
		Rating: domain.NormalizeRating(*input.Rating),
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMovie):
			logger.Warn("movie rejected by datastore constraint", "error", err)
			app.badRequestResponse(w, r, domain.ErrInvalidMovie)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("movie created", "movie_id", movie.ID)

	resp := api.CreateMovieResponse{
		Message: "Movie added successfully",
		Movie:   toApiMovie(movie),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovies(movies), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMoviesLegacy(w http.ResponseWriter, r *http.Request) {
	app.ListMovies(w, r)
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.DeleteMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input.Id = strings.TrimSpace(input.Id)

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), input.Id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("delete requested for unknown movie", "movie_id", input.Id)
			app.errorResponse(w, r, http.StatusNotFound, ErrMovieNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("movie deleted", "movie_id", input.Id)

	resp := api.DeleteMovieResponse{
		Message: "Movie deleted successfully",
		Result:  api.DeleteResult{DeletedCount: 1},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovieLegacy(w http.ResponseWriter, r *http.Request) {
	app.DeleteMovie(w, r)
}

func toApiMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	return api.Movie{
		Id:     movie.ID,
		Name:   movie.Name,
		Year:   movie.Year,
		Rating: movie.Rating,
	}
}

// toApiMovies never returns nil so an empty catalog encodes as [].
func toApiMovies(movies []*domain.Movie) api.MovieListResponse {
	resp := make(api.MovieListResponse, 0, len(movies))

	for _, movie := range movies {
		resp = append(resp, toApiMovie(movie))
	}

	return resp
}
