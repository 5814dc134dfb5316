package http

import (
	"github.com/gin-gonic/gin"

	"assistente-agenda/internal/middleware"
)

// RegisterRoutes mounts the assistant routes under rg (normally /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/messages", mw.RateLimit(), h.SendMessage)
	rg.GET("/events/upcoming", h.Upcoming)
}
