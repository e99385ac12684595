package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID     string
	Name   string
	Year   int
	Rating float64
}

// NormalizeRating rounds a rating half away from zero to a single decimal place.
func NormalizeRating(rating float64) float64 {
	return decimal.NewFromFloat(rating).Round(1).InexactFloat64()
}

type MovieRepository interface {
	// Create stores the movie and sets its ID.
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context) ([]*Movie, error)
	// Delete returns ErrRecordNotFound if no movie has the given id.
	Delete(ctx context.Context, id string) error
}
