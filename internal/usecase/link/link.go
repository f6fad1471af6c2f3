package usecase_link

import (
	"context"
	"errors"
	"fmt"

	"github.com/htessier/movielens-api/internal/model"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrFailedToLoadLink  = errors.New("failed to load link")
	ErrFailedToLoadLinks = errors.New("failed to load links")
)

type LinkRepository interface {
	LoadByMovieID(ctx context.Context, movieID int64) (model.Link, bool, error)
	Load(ctx context.Context, p model.Page) ([]model.Link, error)
}

type Usecase struct {
	links LinkRepository
}

func New(links LinkRepository) *Usecase {
	return &Usecase{links: links}
}

func (u *Usecase) GetByMovieID(ctx context.Context, movieID int64) (model.Link, bool, error) {
	link, found, err := u.links.LoadByMovieID(ctx, movieID)
	if err != nil {
		return model.Link{}, false, fmt.Errorf("%w: %w", ErrFailedToLoadLink, err)
	}

	return link, found, nil
}

func (u *Usecase) List(ctx context.Context, p model.Page) ([]model.Link, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	links, err := u.links.Load(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadLinks, err)
	}

	return links, nil
}
