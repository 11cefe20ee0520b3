package main

import (
	"github.com/Eman-Abukhater/kanban-board-backend/internal/config"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/middleware"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// registerRoutes wires the API. Every route passes SoftAuth so a valid token
// always yields a principal; role and viewer-scope gates run per route.
func registerRoutes(r *gin.Engine, cfg *config.Config, app *appServices) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "kanban-board-backend"})
	})

	// Uploaded images, read-only, caching disabled.
	uploadsGroup := r.Group("/uploads", func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	})
	uploadsGroup.Static("/", cfg.Upload.Dir)

	api := r.Group("")
	api.Use(middleware.SoftAuth())

	staff := middleware.RequireRole(models.RoleAdmin, models.RoleEmployee)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(1, 5), app.authHandler.Login)
		auth.GET("/me", app.authHandler.Me)
	}

	api.GET("/members", staff, app.memberHandler.List)
	api.GET("/projects", staff, app.projectHandler.List)
	api.GET("/projects/:projectId/boards", staff, app.boardHandler.ListByProject)

	boards := api.Group("/boards")
	{
		boards.POST("", staff, app.boardHandler.Create)
		boards.PATCH("/:boardId", staff, app.boardHandler.Update)
		boards.DELETE("/:boardId", adminOnly, app.boardHandler.Delete)

		// External-id routes; the kanban read is public, gated only by the
		// viewer board scope when a viewer token is presented.
		boards.GET("/:boardId/kanban", middleware.ViewerBoardScope("boardId"), app.boardHandler.Kanban)
		boards.GET("/:boardId/share", staff, app.boardHandler.Share)
		boards.PATCH("/:boardId/close", adminOnly, app.boardHandler.Close)
		boards.POST("/:boardId/lists", staff, app.listHandler.Create)
	}

	lists := api.Group("/lists")
	{
		lists.PATCH("/reorder", staff, app.listHandler.Reorder)
		lists.DELETE("/:listId", staff, app.listHandler.Delete)
		lists.POST("/:listId/cards", staff, app.cardHandler.Create)
	}

	cards := api.Group("/cards")
	{
		cards.PATCH("/move", staff, app.cardHandler.Move)
		cards.PUT("/:cardId", staff, app.cardHandler.Update)
		cards.DELETE("/:cardId", staff, app.cardHandler.Delete)
		cards.POST("/:cardId/tasks", staff, app.taskHandler.Create)
		cards.POST("/:cardId/tags", staff, app.tagHandler.Create)
		cards.POST("/:cardId/comments", staff, app.commentHandler.Create)
	}

	tasks := api.Group("/tasks")
	{
		tasks.PATCH("/:taskId", staff, app.taskHandler.Update)
		tasks.DELETE("/:taskId", staff, app.taskHandler.Delete)
	}

	api.DELETE("/tags/:tagId", staff, app.tagHandler.Delete)
}
