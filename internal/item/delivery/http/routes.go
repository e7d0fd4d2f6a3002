package http

import (
	"item-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods under rg.
// All item routes share the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.RateLimit())
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
