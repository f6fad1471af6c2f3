package infra_postgres_movie

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

func (d *Driver) LoadByID(ctx context.Context, id int64) (model.Movie, bool, error) {
	const (
		q = `
		SELECT movie_id, title, genres
		FROM movies
		WHERE movie_id = $1
		`
	)

	var row movieRow
	err := d.db.GetContext(ctx, &row, q, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Movie{}, false, nil
	}
	if err != nil {
		return model.Movie{}, false, fmt.Errorf("failed to load movie %d: %w", id, err)
	}

	return row.ToDomain(), true, nil
}

func (d *Driver) Load(ctx context.Context, f model.MovieFilter, p model.Page) ([]model.Movie, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)

	if f.Title != "" {
		args = append(args, f.Title)
		where = append(where, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if f.Genre != "" {
		args = append(args, f.Genre)
		where = append(where, fmt.Sprintf("genres ILIKE '%%' || $%d || '%%'", len(args)))
	}

	q := `SELECT movie_id, title, genres FROM movies`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, p.Limit)
	q += fmt.Sprintf(" ORDER BY movie_id LIMIT $%d", len(args))
	args = append(args, p.Skip)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	var rows []movieRow
	if err := d.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	movies := make([]model.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, row.ToDomain())
	}

	return movies, nil
}

func (d *Driver) Count(ctx context.Context) (int64, error) {
	const (
		q = `SELECT COUNT(*) FROM movies`
	)

	var total int64
	if err := d.db.GetContext(ctx, &total, q); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	return total, nil
}
