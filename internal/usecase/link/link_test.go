package usecase_link

import (
	"context"
	"errors"
	"testing"

	"github.com/htessier/movielens-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type LinkRepositoryMock struct {
	mock.Mock
}

func (m *LinkRepositoryMock) LoadByMovieID(ctx context.Context, movieID int64) (model.Link, bool, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(model.Link), args.Bool(1), args.Error(2)
}

func (m *LinkRepositoryMock) Load(ctx context.Context, p model.Page) ([]model.Link, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Link), args.Error(1)
}

func strptr(s string) *string { return &s }

func TestGetByMovieID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("Should return the link when it exists", func(t *testing.T) {
		repo := &LinkRepositoryMock{}
		uc := New(repo)

		want := model.Link{MovieID: 1, ImdbID: strptr("0114709")}
		repo.On("LoadByMovieID", ctx, int64(1)).Return(want, true, nil).Once()

		link, found, err := uc.GetByMovieID(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, link)
		repo.AssertExpectations(t)
	})

	t.Run("Should report absence without error", func(t *testing.T) {
		repo := &LinkRepositoryMock{}
		uc := New(repo)

		repo.On("LoadByMovieID", ctx, int64(99)).Return(model.Link{}, false, nil).Once()

		_, found, err := uc.GetByMovieID(ctx, 99)

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Should wrap repository errors", func(t *testing.T) {
		repo := &LinkRepositoryMock{}
		uc := New(repo)

		repo.On("LoadByMovieID", ctx, int64(1)).Return(model.Link{}, false, errors.New("connection refused")).Once()

		_, _, err := uc.GetByMovieID(ctx, 1)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrFailedToLoadLink))
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("Should pass pagination through", func(t *testing.T) {
		repo := &LinkRepositoryMock{}
		uc := New(repo)

		page := model.Page{Skip: 10, Limit: 5}
		repo.On("Load", ctx, page).Return([]model.Link{{MovieID: 11}}, nil).Once()

		links, err := uc.List(ctx, page)

		assert.NoError(t, err)
		assert.Len(t, links, 1)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject a limit above the ceiling without querying", func(t *testing.T) {
		repo := &LinkRepositoryMock{}
		uc := New(repo)

		_, err := uc.List(ctx, model.Page{Skip: 0, Limit: model.MaxLimit + 1})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		repo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})

	t.Run("Should wrap repository errors", func(t *testing.T) {
		repo := &LinkRepositoryMock{}
		uc := New(repo)

		repo.On("Load", ctx, model.Page{Skip: 0, Limit: 100}).
			Return(nil, errors.New("connection refused")).Once()

		_, err := uc.List(ctx, model.Page{Skip: 0, Limit: 100})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrFailedToLoadLinks))
	})
}
