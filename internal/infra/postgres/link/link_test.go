package infra_postgres_link

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/htessier/movielens-api/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initResources(t *testing.T) (*Driver, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return New(sqlxDB), mock
}

func TestLoadByMovieID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("Should return link with optional ids", func(t *testing.T) {
		d, mock := initResources(t)

		rows := sqlmock.NewRows([]string{"movie_id", "imdb_id", "tmdb_id"}).
			AddRow(int64(1), "0114709", int64(862))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT movie_id, imdb_id, tmdb_id FROM links WHERE movie_id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		link, found, err := d.LoadByMovieID(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, found)
		require.NotNil(t, link.ImdbID)
		assert.Equal(t, "0114709", *link.ImdbID)
		require.NotNil(t, link.TmdbID)
		assert.Equal(t, int64(862), *link.TmdbID)
	})

	t.Run("Should report absence without error", func(t *testing.T) {
		d, mock := initResources(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT movie_id, imdb_id, tmdb_id FROM links WHERE movie_id = $1")).
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, found, err := d.LoadByMovieID(ctx, 404)

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Should keep missing external ids nil", func(t *testing.T) {
		d, mock := initResources(t)

		rows := sqlmock.NewRows([]string{"movie_id", "imdb_id", "tmdb_id"}).
			AddRow(int64(7), nil, nil)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT movie_id, imdb_id, tmdb_id FROM links WHERE movie_id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(rows)

		link, found, err := d.LoadByMovieID(ctx, 7)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Nil(t, link.ImdbID)
		assert.Nil(t, link.TmdbID)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	d, mock := initResources(t)

	rows := sqlmock.NewRows([]string{"movie_id", "imdb_id", "tmdb_id"}).
		AddRow(int64(1), "0114709", int64(862)).
		AddRow(int64(2), "0113497", int64(8844))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT movie_id, imdb_id, tmdb_id FROM links ORDER BY movie_id LIMIT $1 OFFSET $2")).
		WithArgs(2, 0).
		WillReturnRows(rows)

	links, err := d.Load(context.Background(), model.Page{Skip: 0, Limit: 2})

	assert.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, int64(2), links[1].MovieID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	t.Parallel()

	d, mock := initResources(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM links")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(9742)))

	total, err := d.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(9742), total)
}
