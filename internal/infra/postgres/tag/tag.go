package infra_postgres_tag

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

// LoadByKey matches the tag text exactly, case included.
func (d *Driver) LoadByKey(ctx context.Context, userID, movieID int64, tagText string) (model.Tag, bool, error) {
	const (
		q = `
		SELECT user_id, movie_id, tag, timestamp
		FROM tags
		WHERE user_id = $1 AND movie_id = $2 AND tag = $3
		`
	)

	var row tagRow
	err := d.db.GetContext(ctx, &row, q, userID, movieID, tagText)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, false, nil
	}
	if err != nil {
		return model.Tag{}, false, fmt.Errorf("failed to load tag (%d, %d, %q): %w", userID, movieID, tagText, err)
	}

	return row.ToDomain(), true, nil
}

func (d *Driver) Load(ctx context.Context, f model.TagFilter, p model.Page) ([]model.Tag, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)

	if f.MovieID != nil {
		args = append(args, *f.MovieID)
		where = append(where, fmt.Sprintf("movie_id = $%d", len(args)))
	}
	if f.UserID != nil {
		args = append(args, *f.UserID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}

	q := `SELECT user_id, movie_id, tag, timestamp FROM tags`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, p.Limit)
	q += fmt.Sprintf(" ORDER BY user_id, movie_id, tag LIMIT $%d", len(args))
	args = append(args, p.Skip)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	var rows []tagRow
	if err := d.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	tags := make([]model.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, row.ToDomain())
	}

	return tags, nil
}

// LoadByMovieID returns every tag on one movie, unpaginated. Used to
// assemble the detailed movie view.
func (d *Driver) LoadByMovieID(ctx context.Context, movieID int64) ([]model.Tag, error) {
	const (
		q = `
		SELECT user_id, movie_id, tag, timestamp
		FROM tags
		WHERE movie_id = $1
		ORDER BY user_id, movie_id, tag
		`
	)

	var rows []tagRow
	if err := d.db.SelectContext(ctx, &rows, q, movieID); err != nil {
		return nil, fmt.Errorf("failed to load tags for movie %d: %w", movieID, err)
	}

	tags := make([]model.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, row.ToDomain())
	}

	return tags, nil
}

func (d *Driver) Count(ctx context.Context) (int64, error) {
	const (
		q = `SELECT COUNT(*) FROM tags`
	)

	var total int64
	if err := d.db.GetContext(ctx, &total, q); err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}

	return total, nil
}
