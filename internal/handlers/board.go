package handlers

import (
	"strconv"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/config"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/services"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BoardHandler struct {
	boardService *services.BoardService
}

func NewBoardHandler(db *gorm.DB, uploads *services.UploadStore, jwtCfg *config.JWTConfig) *BoardHandler {
	return &BoardHandler{boardService: services.NewBoardService(db, uploads, jwtCfg)}
}

// ListByProject returns the boards of one project.
// GET /projects/:projectId/boards
func (h *BoardHandler) ListByProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("projectId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	rows, err := h.boardService.ListByProject(uint(projectID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, rows)
}

// Create creates a board, upserting its project and seeding default lists.
// POST /boards
func (h *BoardHandler) Create(c *gin.Context) {
	var req services.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "projectName and fkpoid are required")
		return
	}

	row, err := h.boardService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, row)
}

// Update applies a partial board update.
// PATCH /boards/:boardId
func (h *BoardHandler) Update(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("boardId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid board id")
		return
	}

	var req services.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	row, err := h.boardService.Update(uint(boardID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, row)
}

// Delete removes a board and its whole subtree.
// DELETE /boards/:boardId
func (h *BoardHandler) Delete(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("boardId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid board id")
		return
	}

	if err := h.boardService.Delete(uint(boardID)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": uint(boardID)})
}

// Kanban returns the full tree of one board, keyed by external id.
// GET /boards/:boardId/kanban
func (h *BoardHandler) Kanban(c *gin.Context) {
	view, err := h.boardService.Kanban(c.Param("boardId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, view)
}

// Share issues a board-scoped viewer token for share links.
// GET /boards/:boardId/share
func (h *BoardHandler) Share(c *gin.Context) {
	externalID := c.Param("boardId")

	token, err := h.boardService.Share(externalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"fkboardid": externalID, "token": token})
}

// Close closes a fully done board.
// PATCH /boards/:boardId/close
func (h *BoardHandler) Close(c *gin.Context) {
	row, err := h.boardService.Close(c.Param("boardId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, row)
}
