package http_link

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/htessier/movielens-api/internal/delivery/http/common"
	"github.com/htessier/movielens-api/internal/model"
	usecase_link "github.com/htessier/movielens-api/internal/usecase/link"
)

// LinkResponseDTO is the flat link shape.
type LinkResponseDTO struct {
	MovieID int64   `json:"movieId" example:"1"`
	ImdbID  *string `json:"imdbId" example:"0114709"`
	TmdbID  *int64  `json:"tmdbId" example:"862"`
}

// ListLinksQueryDTO binds /links query parameters.
type ListLinksQueryDTO struct {
	Skip  int `form:"skip,default=0" binding:"gte=0"`
	Limit int `form:"limit,default=100" binding:"gte=1,lte=1000"`
}

func ConvertFromLink(l model.Link) LinkResponseDTO {
	return LinkResponseDTO{
		MovieID: l.MovieID,
		ImdbID:  l.ImdbID,
		TmdbID:  l.TmdbID,
	}
}

func ConvertFromLinkList(links []model.Link) []LinkResponseDTO {
	list := make([]LinkResponseDTO, len(links))
	for i, l := range links {
		list[i] = ConvertFromLink(l)
	}
	return list
}

type Controller struct {
	uc *usecase_link.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_link.Usecase, opts ...ControllerOption) *Controller {
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
	links := router.Group("/links")
	links.GET("", c.listLinks)
	links.GET("/:movie_id", c.getLink)
}

// @Summary Get one link
// @Description Returns the IMDB and TMDB identifiers of a movie
// @Tags links
// @Produce json
// @Param movie_id path int true "Movie ID"
// @Success 200 {object} LinkResponseDTO "Link"
// @Failure 400 {object} http_common.ErrorResponse "Invalid movie id"
// @Failure 404 {object} http_common.ErrorResponse "Link not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /links/{movie_id} [get]
func (c *Controller) getLink(ctx *gin.Context) {
	idParam := ctx.Param("movie_id")
	movieID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	link, found, err := c.uc.GetByMovieID(ctx.Request.Context(), movieID)
	if err != nil {
		c.logger.Error("failed to load link",
			slog.String("error", err.Error()),
			slog.Int64("movie_id", movieID),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load link",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Error:   "Link not found",
			Message: "no link found for movie with id " + idParam,
			Code:    http.StatusNotFound,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromLink(link))
}

// @Summary List links
// @Description Returns a paginated list of IMDB/TMDB identifiers
// @Tags links
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows returned, at most 1000" default(100)
// @Success 200 {array} LinkResponseDTO "Link list"
// @Failure 400 {object} http_common.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /links [get]
func (c *Controller) listLinks(ctx *gin.Context) {
	var q ListLinksQueryDTO
	if err := ctx.ShouldBindQuery(&q); err != nil {
		c.logger.Warn("invalid query parameters", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "Invalid query parameters",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	links, err := c.uc.List(ctx.Request.Context(), model.Page{Skip: q.Skip, Limit: q.Limit})
	if err != nil {
		c.logger.Error("failed to load links", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load links",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromLinkList(links))
}
