package usecase_tag

import (
	"context"
	"errors"
	"fmt"

	"github.com/htessier/movielens-api/internal/model"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrFailedToLoadTag  = errors.New("failed to load tag")
	ErrFailedToLoadTags = errors.New("failed to load tags")
)

type TagRepository interface {
	LoadByKey(ctx context.Context, userID, movieID int64, tagText string) (model.Tag, bool, error)
	Load(ctx context.Context, f model.TagFilter, p model.Page) ([]model.Tag, error)
}

type Usecase struct {
	tags TagRepository
}

func New(tags TagRepository) *Usecase {
	return &Usecase{tags: tags}
}

// Get matches the tag text exactly: full string, case-sensitive.
func (u *Usecase) Get(ctx context.Context, userID, movieID int64, tagText string) (model.Tag, bool, error) {
	if tagText == "" {
		return model.Tag{}, false, fmt.Errorf("%w: tag text cannot be empty", ErrInvalidInput)
	}

	tag, found, err := u.tags.LoadByKey(ctx, userID, movieID, tagText)
	if err != nil {
		return model.Tag{}, false, fmt.Errorf("%w: %w", ErrFailedToLoadTag, err)
	}

	return tag, found, nil
}

func (u *Usecase) List(ctx context.Context, f model.TagFilter, p model.Page) ([]model.Tag, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	tags, err := u.tags.Load(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadTags, err)
	}

	return tags, nil
}
