package http_health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller struct{}

func New() *Controller {
	return &Controller{}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.health)
}

// @Summary Health check
// @Description Returns a fixed payload without touching storage, suitable for liveness probes
// @Tags monitoring
// @Produce json
// @Success 200 {object} map[string]string "API is up"
// @Router / [get]
func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "MovieLens API is up and running"})
}
