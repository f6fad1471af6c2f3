package usecase_analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/htessier/movielens-api/internal/model"
)

var ErrFailedToCount = errors.New("failed to count rows")

// Counter reports the total number of rows in one table, ignoring any
// filters or pagination applied elsewhere.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Usecase struct {
	movies  Counter
	ratings Counter
	tags    Counter
	links   Counter
}

func New(movies, ratings, tags, links Counter) *Usecase {
	return &Usecase{
		movies:  movies,
		ratings: ratings,
		tags:    tags,
		links:   links,
	}
}

func (u *Usecase) Snapshot(ctx context.Context) (model.Analytics, error) {
	movies, err := u.movies.Count(ctx)
	if err != nil {
		return model.Analytics{}, fmt.Errorf("%w: movies: %w", ErrFailedToCount, err)
	}

	ratings, err := u.ratings.Count(ctx)
	if err != nil {
		return model.Analytics{}, fmt.Errorf("%w: ratings: %w", ErrFailedToCount, err)
	}

	tags, err := u.tags.Count(ctx)
	if err != nil {
		return model.Analytics{}, fmt.Errorf("%w: tags: %w", ErrFailedToCount, err)
	}

	links, err := u.links.Count(ctx)
	if err != nil {
		return model.Analytics{}, fmt.Errorf("%w: links: %w", ErrFailedToCount, err)
	}

	return model.Analytics{
		Movies:  movies,
		Ratings: ratings,
		Tags:    tags,
		Links:   links,
	}, nil
}
