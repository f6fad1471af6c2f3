package usecase_rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/htessier/movielens-api/internal/model"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrFailedToLoadRating  = errors.New("failed to load rating")
	ErrFailedToLoadRatings = errors.New("failed to load ratings")
)

type RatingRepository interface {
	LoadByKey(ctx context.Context, userID, movieID int64) (model.Rating, bool, error)
	Load(ctx context.Context, f model.RatingFilter, p model.Page) ([]model.Rating, error)
}

type Usecase struct {
	ratings RatingRepository
}

func New(ratings RatingRepository) *Usecase {
	return &Usecase{ratings: ratings}
}

func (u *Usecase) Get(ctx context.Context, userID, movieID int64) (model.Rating, bool, error) {
	rating, found, err := u.ratings.LoadByKey(ctx, userID, movieID)
	if err != nil {
		return model.Rating{}, false, fmt.Errorf("%w: %w", ErrFailedToLoadRating, err)
	}

	return rating, found, nil
}

// List applies each present filter. A filter set to its zero value
// (movieId=0, minRating=0) is still a present filter; absence is the
// nil pointer.
func (u *Usecase) List(ctx context.Context, f model.RatingFilter, p model.Page) ([]model.Rating, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if f.MinRating != nil && (*f.MinRating < 0 || *f.MinRating > 5) {
		return nil, fmt.Errorf("%w: minRating must be between 0.0 and 5.0, got %g", ErrInvalidInput, *f.MinRating)
	}

	ratings, err := u.ratings.Load(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadRatings, err)
	}

	return ratings, nil
}
