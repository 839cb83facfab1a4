package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

// SetupRouter builds the route table at startup: every (method, path)
// pair maps to one handler.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	authors := router.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.PATCH("/:id", c.AuthorHandler.PartialUpdate)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
		authors.GET("/age/under/:age", c.AuthorHandler.ListUnderAge)
		authors.GET("/age/over/:age", c.AuthorHandler.ListOverAge)
	}
}

func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:isbn", c.BookHandler.GetByISBN)
		books.PUT("/:isbn", c.BookHandler.Upsert)
		books.PATCH("/:isbn", c.BookHandler.PartialUpdate)
		books.DELETE("/:isbn", c.BookHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}
