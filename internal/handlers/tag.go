package handlers

import (
	"strconv"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/services"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{tagService: services.NewTagService(db)}
}

// Create adds a tag to a card.
// POST /cards/:cardId/tags
func (h *TagHandler) Create(c *gin.Context) {
	cardID, err := strconv.ParseUint(c.Param("cardId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid card id")
		return
	}

	var req services.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title is required")
		return
	}

	tag, err := h.tagService.Create(uint(cardID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tag)
}

// Delete removes a tag.
// DELETE /tags/:tagId
func (h *TagHandler) Delete(c *gin.Context) {
	tagID, err := strconv.ParseUint(c.Param("tagId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	if err := h.tagService.Delete(uint(tagID)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": uint(tagID)})
}
