package http_analytics

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/htessier/movielens-api/internal/delivery/http/common"
	"github.com/htessier/movielens-api/internal/model"
	usecase_analytics "github.com/htessier/movielens-api/internal/usecase/analytics"
)

// AnalyticsResponseDTO aggregates the unfiltered table counts.
type AnalyticsResponseDTO struct {
	MovieCount  int64 `json:"movieCount" example:"9742"`
	RatingCount int64 `json:"ratingCount" example:"100836"`
	TagCount    int64 `json:"tagCount" example:"3683"`
	LinkCount   int64 `json:"linkCount" example:"9742"`
}

func ConvertFromAnalytics(a model.Analytics) AnalyticsResponseDTO {
	return AnalyticsResponseDTO{
		MovieCount:  a.Movies,
		RatingCount: a.Ratings,
		TagCount:    a.Tags,
		LinkCount:   a.Links,
	}
}

type Controller struct {
	uc *usecase_analytics.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_analytics.Usecase, opts ...ControllerOption) *Controller {
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
	router.GET("/analytics", c.getAnalytics)
}

// @Summary Database statistics
// @Description Returns the total number of movies, ratings, tags and links
// @Tags analytics
// @Produce json
// @Success 200 {object} AnalyticsResponseDTO "Counts"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /analytics [get]
func (c *Controller) getAnalytics(ctx *gin.Context) {
	analytics, err := c.uc.Snapshot(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load analytics", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load analytics",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromAnalytics(analytics))
}
