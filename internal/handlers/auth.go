package handlers

import (
	"github.com/Eman-Abukhater/kanban-board-backend/internal/config"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/middleware"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/services"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService(db, jwtCfg)}
}

// Login authenticates a seeded user and returns a user token.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// Me returns the authenticated user.
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.Principal(c)
	if claims == nil || !claims.IsUser() {
		response.Unauthorized(c, "auth required")
		return
	}

	user, err := h.authService.GetUserByID(claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}
