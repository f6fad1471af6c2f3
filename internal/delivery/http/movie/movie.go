package http_movie

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/htessier/movielens-api/internal/delivery/http/common"
	"github.com/htessier/movielens-api/internal/model"
	usecase_movie "github.com/htessier/movielens-api/internal/usecase/movie"
)

// MovieResponseDTO is the flat movie shape used by listings.
type MovieResponseDTO struct {
	MovieID int64   `json:"movieId" example:"1"`
	Title   string  `json:"title" example:"Toy Story (1995)"`
	Genres  *string `json:"genres" example:"Adventure|Animation|Children|Comedy|Fantasy"`
}

// MovieRatingDTO is a rating nested inside the detailed movie view.
type MovieRatingDTO struct {
	UserID    int64   `json:"userId" example:"1"`
	MovieID   int64   `json:"movieId" example:"1"`
	Rating    float64 `json:"rating" example:"4.0"`
	Timestamp int64   `json:"timestamp" example:"964982703"`
}

// MovieTagDTO is a tag nested inside the detailed movie view.
type MovieTagDTO struct {
	UserID    int64  `json:"userId" example:"2"`
	MovieID   int64  `json:"movieId" example:"1"`
	Tag       string `json:"tag" example:"pixar"`
	Timestamp int64  `json:"timestamp" example:"1445714994"`
}

// MovieLinkDTO is the link nested inside the detailed movie view. The
// movie id is implied by the parent and omitted.
type MovieLinkDTO struct {
	ImdbID *string `json:"imdbId" example:"0114709"`
	TmdbID *int64  `json:"tmdbId" example:"862"`
}

// MovieDetailsResponseDTO embeds everything referencing the movie.
type MovieDetailsResponseDTO struct {
	MovieID int64            `json:"movieId" example:"1"`
	Title   string           `json:"title" example:"Toy Story (1995)"`
	Genres  *string          `json:"genres" example:"Adventure|Animation|Children|Comedy|Fantasy"`
	Ratings []MovieRatingDTO `json:"ratings"`
	Tags    []MovieTagDTO    `json:"tags"`
	Link    *MovieLinkDTO    `json:"link"`
}

// ListMoviesQueryDTO binds /movies query parameters.
type ListMoviesQueryDTO struct {
	Skip  int    `form:"skip,default=0" binding:"gte=0"`
	Limit int    `form:"limit,default=100" binding:"gte=1,lte=1000"`
	Title string `form:"title"`
	Genre string `form:"genre"`
}

func ConvertFromMovie(m model.Movie) MovieResponseDTO {
	return MovieResponseDTO{
		MovieID: m.MovieID,
		Title:   m.Title,
		Genres:  m.Genres,
	}
}

func ConvertFromMovieList(movies []model.Movie) []MovieResponseDTO {
	list := make([]MovieResponseDTO, len(movies))
	for i, m := range movies {
		list[i] = ConvertFromMovie(m)
	}
	return list
}

func ConvertFromMovieDetails(d model.MovieDetails) MovieDetailsResponseDTO {
	ratings := make([]MovieRatingDTO, len(d.Ratings))
	for i, r := range d.Ratings {
		ratings[i] = MovieRatingDTO{
			UserID:    r.UserID,
			MovieID:   r.MovieID,
			Rating:    r.Rating,
			Timestamp: r.Timestamp,
		}
	}

	tags := make([]MovieTagDTO, len(d.Tags))
	for i, t := range d.Tags {
		tags[i] = MovieTagDTO{
			UserID:    t.UserID,
			MovieID:   t.MovieID,
			Tag:       t.Tag,
			Timestamp: t.Timestamp,
		}
	}

	dto := MovieDetailsResponseDTO{
		MovieID: d.MovieID,
		Title:   d.Title,
		Genres:  d.Genres,
		Ratings: ratings,
		Tags:    tags,
	}
	if d.Link != nil {
		dto.Link = &MovieLinkDTO{
			ImdbID: d.Link.ImdbID,
			TmdbID: d.Link.TmdbID,
		}
	}

	return dto
}

type Controller struct {
	uc *usecase_movie.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", c.listMovies)
	movies.GET("/:movie_id", c.getMovie)
}

// @Summary Get one movie
// @Description Returns a movie by its id with its ratings, tags and external link nested
// @Tags movies
// @Produce json
// @Param movie_id path int true "Movie ID"
// @Success 200 {object} MovieDetailsResponseDTO "Movie details"
// @Failure 400 {object} http_common.ErrorResponse "Invalid movie id"
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	idParam := ctx.Param("movie_id")
	movieID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		c.logger.Warn("invalid movie ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	details, found, err := c.uc.GetByID(ctx.Request.Context(), movieID)
	if err != nil {
		c.logger.Error("failed to load movie",
			slog.String("error", err.Error()),
			slog.Int64("movie_id", movieID),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load movie",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Error:   "Movie not found",
			Message: "movie with id " + idParam + " not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovieDetails(details))
}

// @Summary List movies
// @Description Returns a paginated movie list, optionally filtered by title or genre substring (case-insensitive)
// @Tags movies
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows returned, at most 1000" default(100)
// @Param title query string false "Title substring filter"
// @Param genre query string false "Genre substring filter"
// @Success 200 {array} MovieResponseDTO "Movie list"
// @Failure 400 {object} http_common.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /movies [get]
func (c *Controller) listMovies(ctx *gin.Context) {
	var q ListMoviesQueryDTO
	if err := ctx.ShouldBindQuery(&q); err != nil {
		c.logger.Warn("invalid query parameters", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "Invalid query parameters",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	filter := model.MovieFilter{
		Title: q.Title,
		Genre: q.Genre,
	}
	page := model.Page{
		Skip:  q.Skip,
		Limit: q.Limit,
	}

	movies, err := c.uc.List(ctx.Request.Context(), filter, page)
	if err != nil {
		c.logger.Error("failed to load movies", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load movies",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovieList(movies))
}
