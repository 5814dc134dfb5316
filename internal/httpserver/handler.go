package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "assistente-agenda/internal/assistant/delivery/http"
	authHTTP "assistente-agenda/internal/auth/delivery/http"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.registerStaticUI()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	ctx := context.Background()
	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	authHTTP.RegisterRoutes(srv.gin.Group("/auth"), srv.authHandler)
	srv.l.Infof(ctx, "Auth routes registered under /auth")

	assistantHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), srv.assistantHandler, srv.mw)
	srv.l.Infof(ctx, "Assistant routes registered under /api/v1")

	return nil
}

// registerStaticUI serves the chat page for any unmatched GET when a directory is configured.
func (srv HTTPServer) registerStaticUI() {
	if srv.staticDir == "" {
		return
	}
	fileServer := http.FileServer(http.Dir(srv.staticDir))
	srv.gin.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
	srv.l.Infof(context.Background(), "Static UI served from %s", srv.staticDir)
}
