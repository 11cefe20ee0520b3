package handlers

import (
	"strconv"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/services"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ListHandler struct {
	listService *services.ListService
}

func NewListHandler(db *gorm.DB) *ListHandler {
	return &ListHandler{listService: services.NewListService(db)}
}

// Create appends a list to a board, keyed by external id.
// POST /boards/:boardId/lists
func (h *ListHandler) Create(c *gin.Context) {
	var req services.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name is required")
		return
	}

	list, err := h.listService.Create(c.Param("boardId"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

// Reorder moves a list to another list's position on the same board.
// PATCH /lists/reorder
func (h *ListHandler) Reorder(c *gin.Context) {
	var req services.ReorderListsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "boardId, fromListId and toListId are required")
		return
	}

	if err := h.listService.Reorder(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"reordered": true})
}

// Delete cascade-deletes a list and re-densifies the board's list positions.
// DELETE /lists/:listId
func (h *ListHandler) Delete(c *gin.Context) {
	listID, err := strconv.ParseUint(c.Param("listId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}

	if err := h.listService.Delete(uint(listID)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": uint(listID)})
}
