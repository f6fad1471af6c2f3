package app

import (
	"log"

	"github.com/htessier/movielens-api/internal/config"
	http_analytics "github.com/htessier/movielens-api/internal/delivery/http/analytics"
	http_health "github.com/htessier/movielens-api/internal/delivery/http/health"
	http_init "github.com/htessier/movielens-api/internal/delivery/http/init"
	http_link "github.com/htessier/movielens-api/internal/delivery/http/link"
	http_movie "github.com/htessier/movielens-api/internal/delivery/http/movie"
	http_rating "github.com/htessier/movielens-api/internal/delivery/http/rating"
	http_swagger "github.com/htessier/movielens-api/internal/delivery/http/swagger"
	http_tag "github.com/htessier/movielens-api/internal/delivery/http/tag"
	infra_pg_init "github.com/htessier/movielens-api/internal/infra/postgres/init"
	infra_postgres_link "github.com/htessier/movielens-api/internal/infra/postgres/link"
	infra_postgres_movie "github.com/htessier/movielens-api/internal/infra/postgres/movie"
	infra_postgres_rating "github.com/htessier/movielens-api/internal/infra/postgres/rating"
	infra_postgres_tag "github.com/htessier/movielens-api/internal/infra/postgres/tag"
	usecase_analytics "github.com/htessier/movielens-api/internal/usecase/analytics"
	usecase_link "github.com/htessier/movielens-api/internal/usecase/link"
	usecase_movie "github.com/htessier/movielens-api/internal/usecase/movie"
	usecase_rating "github.com/htessier/movielens-api/internal/usecase/rating"
	usecase_tag "github.com/htessier/movielens-api/internal/usecase/tag"
)

func Go(cfg *config.Config) {
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	defer func() {
		if err := pgConn.Close(); err != nil {
			log.Printf("failed to close postgres connection: %v", err)
		}
	}()

	movieRepository := infra_postgres_movie.New(pgConn)
	ratingRepository := infra_postgres_rating.New(pgConn)
	tagRepository := infra_postgres_tag.New(pgConn)
	linkRepository := infra_postgres_link.New(pgConn)

	movieUC := usecase_movie.New(movieRepository, ratingRepository, tagRepository, linkRepository)
	ratingUC := usecase_rating.New(ratingRepository)
	tagUC := usecase_tag.New(tagRepository)
	linkUC := usecase_link.New(linkRepository)
	analyticsUC := usecase_analytics.New(movieRepository, ratingRepository, tagRepository, linkRepository)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_health.New())
	controllerPool.Add(http_movie.New(movieUC))
	controllerPool.Add(http_rating.New(ratingUC))
	controllerPool.Add(http_tag.New(tagUC))
	controllerPool.Add(http_link.New(linkUC))
	controllerPool.Add(http_analytics.New(analyticsUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
