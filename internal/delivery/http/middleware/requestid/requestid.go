package http_requestid_middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	Header     = "X-Request-ID"
	ContextKey = "request_id"
)

// New tags every request with an id, keeping an incoming X-Request-ID
// when the caller already set one.
func New() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Set(ContextKey, id)
		ctx.Writer.Header().Set(Header, id)
		ctx.Next()
	}
}
