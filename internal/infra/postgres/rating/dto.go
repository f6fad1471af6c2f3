package infra_postgres_rating

import (
	"github.com/htessier/movielens-api/internal/model"
)

type ratingRow struct {
	UserID    int64   `db:"user_id"`
	MovieID   int64   `db:"movie_id"`
	Rating    float64 `db:"rating"`
	Timestamp int64   `db:"timestamp"`
}

func (r *ratingRow) ToDomain() model.Rating {
	return model.Rating{
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Rating:    r.Rating,
		Timestamp: r.Timestamp,
	}
}
