package main

import (
	"github.com/Eman-Abukhater/kanban-board-backend/internal/config"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/handlers"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/services"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/utils"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/logger"
)

// appServices holds the initialized dependencies shared by the route table.
type appServices struct {
	uploads *services.UploadStore
	sweeper *services.UploadSweeper

	authHandler    *handlers.AuthHandler
	memberHandler  *handlers.MemberHandler
	projectHandler *handlers.ProjectHandler
	boardHandler   *handlers.BoardHandler
	listHandler    *handlers.ListHandler
	cardHandler    *handlers.CardHandler
	taskHandler    *handlers.TaskHandler
	tagHandler     *handlers.TagHandler
	commentHandler *handlers.CommentHandler
}

// bootstrap initializes the database, blob store, background sweeper and
// handlers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	uploads, err := services.NewUploadStore(&cfg.Upload)
	if err != nil {
		logger.Fatalf("Failed to initialize upload store: %v", err)
	}

	var sweeper *services.UploadSweeper
	if cfg.Cleanup.Enabled {
		sweeper = services.NewUploadSweeper(models.GetDB(), uploads, cfg.Cleanup.Schedule)
		if err := sweeper.Start(); err != nil {
			logger.Warn().Err(err).Msg("Failed to start upload sweeper")
		}
	}

	db := models.GetDB()
	return &appServices{
		uploads: uploads,
		sweeper: sweeper,

		authHandler:    handlers.NewAuthHandler(db, &cfg.JWT),
		memberHandler:  handlers.NewMemberHandler(db),
		projectHandler: handlers.NewProjectHandler(db),
		boardHandler:   handlers.NewBoardHandler(db, uploads, &cfg.JWT),
		listHandler:    handlers.NewListHandler(db),
		cardHandler:    handlers.NewCardHandler(db, uploads),
		taskHandler:    handlers.NewTaskHandler(db),
		tagHandler:     handlers.NewTagHandler(db),
		commentHandler: handlers.NewCommentHandler(db),
	}
}

// shutdown stops background services.
func (s *appServices) shutdown() {
	if s.sweeper != nil {
		s.sweeper.Stop()
	}
}
