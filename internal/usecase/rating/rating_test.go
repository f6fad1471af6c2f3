package usecase_rating

import (
	"context"
	"errors"
	"testing"

	"github.com/htessier/movielens-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type RatingRepositoryMock struct {
	mock.Mock
}

func (m *RatingRepositoryMock) LoadByKey(ctx context.Context, userID, movieID int64) (model.Rating, bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Get(0).(model.Rating), args.Bool(1), args.Error(2)
}

func (m *RatingRepositoryMock) Load(ctx context.Context, f model.RatingFilter, p model.Page) ([]model.Rating, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rating), args.Error(1)
}

func int64ptr(v int64) *int64       { return &v }
func float64ptr(v float64) *float64 { return &v }

func TestGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("Should return the rating when the pair exists", func(t *testing.T) {
		repo := &RatingRepositoryMock{}
		uc := New(repo)

		want := model.Rating{UserID: 1, MovieID: 31, Rating: 2.5, Timestamp: 1260759144}
		repo.On("LoadByKey", ctx, int64(1), int64(31)).Return(want, true, nil).Once()

		rating, found, err := uc.Get(ctx, 1, 31)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, rating)
		repo.AssertExpectations(t)
	})

	t.Run("Should report absence without error", func(t *testing.T) {
		repo := &RatingRepositoryMock{}
		uc := New(repo)

		repo.On("LoadByKey", ctx, int64(1), int64(31)).Return(model.Rating{}, false, nil).Once()

		_, found, err := uc.Get(ctx, 1, 31)

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Should wrap repository errors", func(t *testing.T) {
		repo := &RatingRepositoryMock{}
		uc := New(repo)

		repo.On("LoadByKey", ctx, int64(1), int64(31)).Return(model.Rating{}, false, errors.New("connection refused")).Once()

		_, _, err := uc.Get(ctx, 1, 31)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrFailedToLoadRating))
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("Should keep zero-valued filters present", func(t *testing.T) {
		repo := &RatingRepositoryMock{}
		uc := New(repo)

		filter := model.RatingFilter{MovieID: int64ptr(0), MinRating: float64ptr(0)}
		page := model.Page{Skip: 0, Limit: 100}
		repo.On("Load", ctx, filter, page).Return([]model.Rating{}, nil).Once()

		ratings, err := uc.List(ctx, filter, page)

		assert.NoError(t, err)
		assert.Empty(t, ratings)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject minRating above 5", func(t *testing.T) {
		repo := &RatingRepositoryMock{}
		uc := New(repo)

		_, err := uc.List(ctx, model.RatingFilter{MinRating: float64ptr(5.5)}, model.Page{Skip: 0, Limit: 100})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		repo.AssertNotCalled(t, "Load")
	})

	t.Run("Should reject an out-of-range page", func(t *testing.T) {
		repo := &RatingRepositoryMock{}
		uc := New(repo)

		_, err := uc.List(ctx, model.RatingFilter{}, model.Page{Skip: 0, Limit: 0})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		repo.AssertNotCalled(t, "Load")
	})

	t.Run("Should wrap repository errors", func(t *testing.T) {
		repo := &RatingRepositoryMock{}
		uc := New(repo)

		repo.On("Load", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

		_, err := uc.List(ctx, model.RatingFilter{}, model.Page{Skip: 0, Limit: 100})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrFailedToLoadRatings))
	})
}
