package infra_postgres_tag

import (
	"github.com/htessier/movielens-api/internal/model"
)

type tagRow struct {
	UserID    int64  `db:"user_id"`
	MovieID   int64  `db:"movie_id"`
	Tag       string `db:"tag"`
	Timestamp int64  `db:"timestamp"`
}

func (r *tagRow) ToDomain() model.Tag {
	return model.Tag{
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Tag:       r.Tag,
		Timestamp: r.Timestamp,
	}
}
