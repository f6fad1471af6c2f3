package http_tag

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/htessier/movielens-api/internal/delivery/http/common"
	"github.com/htessier/movielens-api/internal/model"
	usecase_tag "github.com/htessier/movielens-api/internal/usecase/tag"
)

// TagResponseDTO is the flat tag shape.
type TagResponseDTO struct {
	UserID    int64  `json:"userId" example:"2"`
	MovieID   int64  `json:"movieId" example:"1"`
	Tag       string `json:"tag" example:"pixar"`
	Timestamp int64  `json:"timestamp" example:"1445714994"`
}

// ListTagsQueryDTO binds /tags query parameters.
type ListTagsQueryDTO struct {
	Skip    int    `form:"skip,default=0" binding:"gte=0"`
	Limit   int    `form:"limit,default=100" binding:"gte=1,lte=1000"`
	MovieID *int64 `form:"movieId"`
	UserID  *int64 `form:"userId"`
}

func ConvertFromTag(t model.Tag) TagResponseDTO {
	return TagResponseDTO{
		UserID:    t.UserID,
		MovieID:   t.MovieID,
		Tag:       t.Tag,
		Timestamp: t.Timestamp,
	}
}

func ConvertFromTagList(tags []model.Tag) []TagResponseDTO {
	list := make([]TagResponseDTO, len(tags))
	for i, t := range tags {
		list[i] = ConvertFromTag(t)
	}
	return list
}

type Controller struct {
	uc *usecase_tag.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_tag.Usecase, opts ...ControllerOption) *Controller {
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
	tags := router.Group("/tags")
	tags.GET("", c.listTags)
	tags.GET("/:user_id/:movie_id/:tag_text", c.getTag)
}

// @Summary Get one tag
// @Description Returns the tag a user applied to a movie; the tag text must match exactly, case included
// @Tags tags
// @Produce json
// @Param user_id path int true "User ID"
// @Param movie_id path int true "Movie ID"
// @Param tag_text path string true "Exact tag text"
// @Success 200 {object} TagResponseDTO "Tag"
// @Failure 400 {object} http_common.ErrorResponse "Invalid path parameters"
// @Failure 404 {object} http_common.ErrorResponse "Tag not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /tags/{user_id}/{movie_id}/{tag_text} [get]
func (c *Controller) getTag(ctx *gin.Context) {
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
	tagText := ctx.Param("tag_text")

	tag, found, err := c.uc.Get(ctx.Request.Context(), userID, movieID, tagText)
	if err != nil {
		c.logger.Error("failed to load tag",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("movie_id", movieID),
			slog.String("tag", tagText),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load tag",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Error:   "Tag not found",
			Message: fmt.Sprintf("no tag %q found for user %d and movie %d", tagText, userID, movieID),
			Code:    http.StatusNotFound,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromTag(tag))
}

// @Summary List tags
// @Description Returns a paginated tag list with optional movie and user filters
// @Tags tags
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows returned, at most 1000" default(100)
// @Param movieId query int false "Exact movie id filter"
// @Param userId query int false "Exact user id filter"
// @Success 200 {array} TagResponseDTO "Tag list"
// @Failure 400 {object} http_common.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /tags [get]
func (c *Controller) listTags(ctx *gin.Context) {
	var q ListTagsQueryDTO
	if err := ctx.ShouldBindQuery(&q); err != nil {
		c.logger.Warn("invalid query parameters", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "Invalid query parameters",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	filter := model.TagFilter{
		MovieID: q.MovieID,
		UserID:  q.UserID,
	}
	page := model.Page{
		Skip:  q.Skip,
		Limit: q.Limit,
	}

	tags, err := c.uc.List(ctx.Request.Context(), filter, page)
	if err != nil {
		c.logger.Error("failed to load tags", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load tags",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromTagList(tags))
}
