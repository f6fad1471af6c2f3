package infra_postgres_movie

import (
	"github.com/htessier/movielens-api/internal/model"
)

type movieRow struct {
	MovieID int64   `db:"movie_id"`
	Title   string  `db:"title"`
	Genres  *string `db:"genres"`
}

func (r *movieRow) ToDomain() model.Movie {
	return model.Movie{
		MovieID: r.MovieID,
		Title:   r.Title,
		Genres:  r.Genres,
	}
}
