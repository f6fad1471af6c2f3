package infra_postgres_link

import (
	"github.com/htessier/movielens-api/internal/model"
)

type linkRow struct {
	MovieID int64   `db:"movie_id"`
	ImdbID  *string `db:"imdb_id"`
	TmdbID  *int64  `db:"tmdb_id"`
}

func (r *linkRow) ToDomain() model.Link {
	return model.Link{
		MovieID: r.MovieID,
		ImdbID:  r.ImdbID,
		TmdbID:  r.TmdbID,
	}
}
