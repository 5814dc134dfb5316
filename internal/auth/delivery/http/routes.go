package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the sign-in routes under rg (normally /auth).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/google", h.Google)
	rg.GET("/google/callback", h.Callback)
	rg.GET("/status", h.Status)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}
