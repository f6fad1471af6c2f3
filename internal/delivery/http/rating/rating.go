package http_rating

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/htessier/movielens-api/internal/delivery/http/common"
	"github.com/htessier/movielens-api/internal/model"
	usecase_rating "github.com/htessier/movielens-api/internal/usecase/rating"
)

// RatingResponseDTO is the flat rating shape.
type RatingResponseDTO struct {
	UserID    int64   `json:"userId" example:"1"`
	MovieID   int64   `json:"movieId" example:"1"`
	Rating    float64 `json:"rating" example:"4.0"`
	Timestamp int64   `json:"timestamp" example:"964982703"`
}

// ListRatingsQueryDTO binds /ratings query parameters. The numeric
// filters are pointers so a zero value still counts as present.
type ListRatingsQueryDTO struct {
	Skip      int      `form:"skip,default=0" binding:"gte=0"`
	Limit     int      `form:"limit,default=100" binding:"gte=1,lte=1000"`
	MovieID   *int64   `form:"movieId"`
	UserID    *int64   `form:"userId"`
	MinRating *float64 `form:"minRating" binding:"omitempty,gte=0,lte=5"`
}

func ConvertFromRating(r model.Rating) RatingResponseDTO {
	return RatingResponseDTO{
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Rating:    r.Rating,
		Timestamp: r.Timestamp,
	}
}

func ConvertFromRatingList(ratings []model.Rating) []RatingResponseDTO {
	list := make([]RatingResponseDTO, len(ratings))
	for i, r := range ratings {
		list[i] = ConvertFromRating(r)
	}
	return list
}

type Controller struct {
	uc *usecase_rating.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_rating.Usecase, opts ...ControllerOption) *Controller {
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
	ratings := router.Group("/ratings")
	ratings.GET("", c.listRatings)
	ratings.GET("/:user_id/:movie_id", c.getRating)
}

// @Summary Get one rating
// @Description Returns the rating a user gave to a movie
// @Tags ratings
// @Produce json
// @Param user_id path int true "User ID"
// @Param movie_id path int true "Movie ID"
// @Success 200 {object} RatingResponseDTO "Rating"
// @Failure 400 {object} http_common.ErrorResponse "Invalid path parameters"
// @Failure 404 {object} http_common.ErrorResponse "Rating not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /ratings/{user_id}/{movie_id} [get]
func (c *Controller) getRating(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid user ID",
			Code:  http.StatusBadRequest,
		})
		return
	}
	movieID, err := strconv.ParseInt(ctx.Param("movie_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	rating, found, err := c.uc.Get(ctx.Request.Context(), userID, movieID)
	if err != nil {
		c.logger.Error("failed to load rating",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("movie_id", movieID),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load rating",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Error:   "Rating not found",
			Message: fmt.Sprintf("no rating found for user %d and movie %d", userID, movieID),
			Code:    http.StatusNotFound,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromRating(rating))
}

// @Summary List ratings
// @Description Returns a paginated rating list with optional movie, user and minimum-rating filters
// @Tags ratings
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows returned, at most 1000" default(100)
// @Param movieId query int false "Exact movie id filter"
// @Param userId query int false "Exact user id filter"
// @Param minRating query number false "Inclusive lower bound on rating, between 0.0 and 5.0"
// @Success 200 {array} RatingResponseDTO "Rating list"
// @Failure 400 {object} http_common.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /ratings [get]
func (c *Controller) listRatings(ctx *gin.Context) {
	var q ListRatingsQueryDTO
	if err := ctx.ShouldBindQuery(&q); err != nil {
		c.logger.Warn("invalid query parameters", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "Invalid query parameters",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	filter := model.RatingFilter{
		MovieID:   q.MovieID,
		UserID:    q.UserID,
		MinRating: q.MinRating,
	}
	page := model.Page{
		Skip:  q.Skip,
		Limit: q.Limit,
	}

	ratings, err := c.uc.List(ctx.Request.Context(), filter, page)
	if err != nil {
		c.logger.Error("failed to load ratings", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load ratings",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromRatingList(ratings))
}
