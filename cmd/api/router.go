package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.EnableCORS),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupBlogRoutes(api, c)
		setupProjectRoutes(api, c)
		setupSkillRoutes(api, c)
		setupContactRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login",
			middleware.RateLimit(c.Cache, "login", 10, 15*time.Minute),
			c.AdminHandler.Login,
		)
	}
}

func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	blogs := api.Group("/blogs")
	{
		blogs.GET("", c.BlogHandler.List)
		blogs.GET("/stats", c.BlogHandler.Stats)
		blogs.GET("/feed", c.BlogHandler.Feed)
		blogs.GET("/:slug", c.BlogHandler.GetBySlug)

		blogs.POST("", middleware.AuthMiddleware(c.JWTManager), c.BlogHandler.Create)
		blogs.PATCH("/:id", middleware.AuthMiddleware(c.JWTManager), c.BlogHandler.Update)
		blogs.DELETE("/:id", middleware.AuthMiddleware(c.JWTManager), c.BlogHandler.Delete)
	}
}

func setupProjectRoutes(api *gin.RouterGroup, c *container.Container) {
	projects := api.Group("/projects")
	{
		projects.GET("", c.ProjectHandler.List)
		projects.GET("/:id", c.ProjectHandler.GetByID)

		projects.POST("", middleware.AuthMiddleware(c.JWTManager), c.ProjectHandler.Create)
		projects.PATCH("/:id", middleware.AuthMiddleware(c.JWTManager), c.ProjectHandler.Update)
		projects.DELETE("/:id", middleware.AuthMiddleware(c.JWTManager), c.ProjectHandler.Delete)
	}
}

func setupSkillRoutes(api *gin.RouterGroup, c *container.Container) {
	skills := api.Group("/skills")
	{
		skills.GET("", c.SkillHandler.List)
		skills.GET("/by-category", c.SkillHandler.ByCategory)
		skills.GET("/:id", c.SkillHandler.GetByID)

		skills.POST("", middleware.AuthMiddleware(c.JWTManager), c.SkillHandler.Create)
		skills.PATCH("/:id", middleware.AuthMiddleware(c.JWTManager), c.SkillHandler.Update)
		skills.DELETE("/:id", middleware.AuthMiddleware(c.JWTManager), c.SkillHandler.Delete)
	}
}

func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	contact := api.Group("/contact")
	{
		contact.POST("",
			middleware.RateLimit(c.Cache, "contact", 10, time.Hour),
			c.ContactHandler.Create,
		)

		// TODO: put these behind AuthMiddleware; the current frontend
		// admin panel still calls them without a token.
		contact.GET("", c.ContactHandler.List)
		contact.PATCH("/:id/read", c.ContactHandler.MarkRead)
		contact.DELETE("/:id", c.ContactHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
