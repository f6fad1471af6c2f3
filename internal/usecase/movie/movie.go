package usecase_movie

import (
	"context"
	"errors"
	"fmt"

	"github.com/htessier/movielens-api/internal/model"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrFailedToLoadMovie   = errors.New("failed to load movie")
	ErrFailedToLoadMovies  = errors.New("failed to load movies")
	ErrFailedToLoadRatings = errors.New("failed to load ratings")
	ErrFailedToLoadTags    = errors.New("failed to load tags")
	ErrFailedToLoadLink    = errors.New("failed to load link")
)

type MovieRepository interface {
	LoadByID(ctx context.Context, id int64) (model.Movie, bool, error)
	Load(ctx context.Context, f model.MovieFilter, p model.Page) ([]model.Movie, error)
}

type RatingRepository interface {
	LoadByMovieID(ctx context.Context, movieID int64) ([]model.Rating, error)
}

type TagRepository interface {
	LoadByMovieID(ctx context.Context, movieID int64) ([]model.Tag, error)
}

type LinkRepository interface {
	LoadByMovieID(ctx context.Context, movieID int64) (model.Link, bool, error)
}

type Usecase struct {
	movies  MovieRepository
	ratings RatingRepository
	tags    TagRepository
	links   LinkRepository
}

func New(
	movies MovieRepository,
	ratings RatingRepository,
	tags TagRepository,
	links LinkRepository,
) *Usecase {
	return &Usecase{
		movies:  movies,
		ratings: ratings,
		tags:    tags,
		links:   links,
	}
}

// GetByID assembles the detailed view: the movie row plus every rating,
// every tag and the optional link that reference it. The bool result
// reports whether the movie exists; absence is not an error here.
func (u *Usecase) GetByID(ctx context.Context, id int64) (model.MovieDetails, bool, error) {
	movie, found, err := u.movies.LoadByID(ctx, id)
	if err != nil {
		return model.MovieDetails{}, false, fmt.Errorf("%w: %w", ErrFailedToLoadMovie, err)
	}
	if !found {
		return model.MovieDetails{}, false, nil
	}

	ratings, err := u.ratings.LoadByMovieID(ctx, id)
	if err != nil {
		return model.MovieDetails{}, false, fmt.Errorf("%w: %w", ErrFailedToLoadRatings, err)
	}

	tags, err := u.tags.LoadByMovieID(ctx, id)
	if err != nil {
		return model.MovieDetails{}, false, fmt.Errorf("%w: %w", ErrFailedToLoadTags, err)
	}

	details := model.MovieDetails{
		Movie:   movie,
		Ratings: ratings,
		Tags:    tags,
	}

	link, linkFound, err := u.links.LoadByMovieID(ctx, id)
	if err != nil {
		return model.MovieDetails{}, false, fmt.Errorf("%w: %w", ErrFailedToLoadLink, err)
	}
	if linkFound {
		details.Link = &link
	}

	return details, true, nil
}

func (u *Usecase) List(ctx context.Context, f model.MovieFilter, p model.Page) ([]model.Movie, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	movies, err := u.movies.Load(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMovies, err)
	}

	return movies, nil
}
