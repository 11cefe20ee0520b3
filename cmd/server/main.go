package main

import (
	"os"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/config"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/middleware"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)

	app := bootstrap(cfg)

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(logger.GinLogger())
	r.Use(logger.GinRecovery())
	r.Use(middleware.CORS(cfg.CORS.Origins))

	registerRoutes(r, cfg, app)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("API running on http://%s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
