package infra_postgres_rating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/htessier/movielens-api/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

func (d *Driver) LoadByKey(ctx context.Context, userID, movieID int64) (model.Rating, bool, error) {
	const (
		q = `
		SELECT user_id, movie_id, rating, timestamp
		FROM ratings
		WHERE user_id = $1 AND movie_id = $2
		`
	)

	var row ratingRow
	err := d.db.GetContext(ctx, &row, q, userID, movieID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Rating{}, false, nil
	}
	if err != nil {
		return model.Rating{}, false, fmt.Errorf("failed to load rating (%d, %d): %w", userID, movieID, err)
	}

	return row.ToDomain(), true, nil
}

func (d *Driver) Load(ctx context.Context, f model.RatingFilter, p model.Page) ([]model.Rating, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)

	if f.MovieID != nil {
		args = append(args, *f.MovieID)
		where = append(where, fmt.Sprintf("movie_id = $%d", len(args)))
	}
	if f.UserID != nil {
		args = append(args, *f.UserID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if f.MinRating != nil {
		args = append(args, *f.MinRating)
		where = append(where, fmt.Sprintf("rating >= $%d", len(args)))
	}

	q := `SELECT user_id, movie_id, rating, timestamp FROM ratings`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, p.Limit)
	q += fmt.Sprintf(" ORDER BY user_id, movie_id LIMIT $%d", len(args))
	args = append(args, p.Skip)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	var rows []ratingRow
	if err := d.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	ratings := make([]model.Rating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, row.ToDomain())
	}

	return ratings, nil
}

// LoadByMovieID returns every rating of one movie, unpaginated. Used to
// assemble the detailed movie view.
func (d *Driver) LoadByMovieID(ctx context.Context, movieID int64) ([]model.Rating, error) {
	const (
		q = `
		SELECT user_id, movie_id, rating, timestamp
		FROM ratings
		WHERE movie_id = $1
		ORDER BY user_id, movie_id
		`
	)

	var rows []ratingRow
	if err := d.db.SelectContext(ctx, &rows, q, movieID); err != nil {
		return nil, fmt.Errorf("failed to load ratings for movie %d: %w", movieID, err)
	}

	ratings := make([]model.Rating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, row.ToDomain())
	}

	return ratings, nil
}

func (d *Driver) Count(ctx context.Context) (int64, error) {
	const (
		q = `SELECT COUNT(*) FROM ratings`
	)

	var total int64
	if err := d.db.GetContext(ctx, &total, q); err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}

	return total, nil
}
