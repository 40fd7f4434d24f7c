package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scribverse-backend/internal/shared/middleware"
	"scribverse-backend/pkg/container"
)

// SetupRouter wires every route. Public endpoints sit in ungated groups;
// everything else goes through the auth middleware. Registration is exact:
// there is no path-pattern allow list anywhere.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.AuthRequired(c.JWTManager)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		users := v1.Group("/user")
		{
			users.POST("/signup", c.UserHandler.Signup)
			users.POST("/signin", c.UserHandler.Signin)
			users.GET("/profile", auth, c.UserHandler.GetProfile)
			users.PUT("/update-profile", auth, c.UserHandler.UpdateProfile)
		}

		blog := v1.Group("/blog")
		{
			// Public reads
			blog.GET("/bulk", c.PostHandler.ListPublished)
			blog.GET("/categories", c.CategoryHandler.ListAll)
			blog.GET("/category/:slug", c.PostHandler.ListByCategory)
			blog.GET("/search", c.PostHandler.Search)

			// Authenticated
			blog.GET("/blogg/:id", auth, c.PostHandler.GetByID)
			blog.POST("/post", auth, c.PostHandler.Create)
			blog.PUT("/update", auth, c.PostHandler.Update)
			blog.POST("/upload-image", auth, c.PostHandler.UploadImage)
		}

		aiGroup := v1.Group("/ai")
		aiGroup.Use(auth)
		{
			aiGroup.GET("/get-topics", c.AIHandler.GetTopics)
			aiGroup.GET("/generate-content", c.AIHandler.GenerateContent)
		}
	}

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
