package infra_postgres_link

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/htessier/movielens-api/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

func (d *Driver) LoadByMovieID(ctx context.Context, movieID int64) (model.Link, bool, error) {
	const (
		q = `
		SELECT movie_id, imdb_id, tmdb_id
		FROM links
		WHERE movie_id = $1
		`
	)

	var row linkRow
	err := d.db.GetContext(ctx, &row, q, movieID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Link{}, false, nil
	}
	if err != nil {
		return model.Link{}, false, fmt.Errorf("failed to load link for movie %d: %w", movieID, err)
	}

	return row.ToDomain(), true, nil
}

func (d *Driver) Load(ctx context.Context, p model.Page) ([]model.Link, error) {
	const (
		q = `
		SELECT movie_id, imdb_id, tmdb_id
		FROM links
		ORDER BY movie_id
		LIMIT $1 OFFSET $2
		`
	)

	var rows []linkRow
	if err := d.db.SelectContext(ctx, &rows, q, p.Limit, p.Skip); err != nil {
		return nil, fmt.Errorf("failed to load links: %w", err)
	}

	links := make([]model.Link, 0, len(rows))
	for _, row := range rows {
		links = append(links, row.ToDomain())
	}

	return links, nil
}

func (d *Driver) Count(ctx context.Context) (int64, error) {
	const (
		q = `SELECT COUNT(*) FROM links`
	)

	var total int64
	if err := d.db.GetContext(ctx, &total, q); err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}

	return total, nil
}
