package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sportshub-backend/internal/domains/user"
	"sportshub-backend/internal/shared/middleware"
	"sportshub-backend/pkg/container"
)

// SetupRouter registers all routes. The route map mirrors the public
// API: auth under /api/auth, articles under /api/articles.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.CORSOrigin),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupArticleRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(api *gin.RouterGroup, c *container.Container) {
	articles := api.Group("/articles")

	// Public reads. Order matters: /search and /my must be registered
	// before /:id or gin would treat them as ids.
	articles.GET("", c.ArticleHandler.List)
	articles.GET("/search", c.ArticleHandler.Search)

	// Author-only routes
	authorOnly := articles.Group("")
	authorOnly.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.RequireRole(string(user.RoleAuthor), string(user.RoleAdmin)),
	)
	{
		authorOnly.GET("/my", c.ArticleHandler.ListMine)
		authorOnly.POST("", c.ArticleHandler.Create)
		authorOnly.PATCH("/:id", c.ArticleHandler.Update)
		authorOnly.DELETE("/:id", c.ArticleHandler.Delete)
	}

	articles.GET("/:id", c.ArticleHandler.Get)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"storage":   appCtx.Config.Storage.Driver,
		}

		// The memory driver has nothing external to check.
		if appCtx.DB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			dbStatus := "ok"
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error"
				health["status"] = "degraded"
			}

			redisStatus := "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "disconnected"
			}

			health["services"] = gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			}
		}

		statusCode := http.StatusOK
		if health["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, health)
	}
}
