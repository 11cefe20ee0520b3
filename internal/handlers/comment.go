package handlers

import (
	"strconv"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/services"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{commentService: services.NewCommentService(db)}
}

// Create adds a comment to a card.
// POST /cards/:cardId/comments
func (h *CommentHandler) Create(c *gin.Context) {
	cardID, err := strconv.ParseUint(c.Param("cardId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid card id")
		return
	}

	var req services.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "author and message are required")
		return
	}

	comment, err := h.commentService.Create(uint(cardID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}
