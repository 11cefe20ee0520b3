package handlers

import (
	"strconv"
	"time"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/services"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CardHandler struct {
	cardService *services.CardService
	uploads     *services.UploadStore
}

func NewCardHandler(db *gorm.DB, uploads *services.UploadStore) *CardHandler {
	return &CardHandler{
		cardService: services.NewCardService(db, uploads),
		uploads:     uploads,
	}
}

// Create appends a card to a list.
// POST /lists/:listId/cards
func (h *CardHandler) Create(c *gin.Context) {
	listID, err := strconv.ParseUint(c.Param("listId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}

	var req services.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title is required")
		return
	}

	card, err := h.cardService.Create(uint(listID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, card)
}

// Update applies a partial card update from a multipart form, optionally
// replacing the stored image.
// PUT /cards/:cardId
func (h *CardHandler) Update(c *gin.Context) {
	cardID, err := strconv.ParseUint(c.Param("cardId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid card id")
		return
	}

	// Reject oversized bodies before buffering the form.
	if c.Request.ContentLength > h.uploads.MaxBytes()+1<<20 {
		response.PayloadTooLarge(c, "uploaded file too large")
		return
	}

	req := services.UpdateCardRequest{}

	if v, ok := c.GetPostForm("title"); ok {
		req.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		req.Description = &v
	}
	if v, ok := c.GetPostForm("startDate"); ok {
		t, err := parseDate(v)
		if err != nil {
			response.BadRequest(c, "invalid startDate")
			return
		}
		req.StartDate = t
	}
	if v, ok := c.GetPostForm("endDate"); ok {
		t, err := parseDate(v)
		if err != nil {
			response.BadRequest(c, "invalid endDate")
			return
		}
		req.EndDate = t
	}

	if v, ok := c.GetPostForm("removeImage"); ok && v == "true" {
		empty := ""
		req.ImagePath = &empty
	}

	if fh, err := c.FormFile("image"); err == nil {
		name, err := h.uploads.Save(fh)
		if err != nil {
			response.Error(c, err)
			return
		}
		req.ImagePath = &name
	}

	card, err := h.cardService.Update(uint(cardID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, services.NewCardRow(card, h.uploads))
}

// Move reparents or repositions a card.
// PATCH /cards/move
func (h *CardHandler) Move(c *gin.Context) {
	var req services.MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "cardId and toListId are required")
		return
	}

	if err := h.cardService.Move(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"moved": true})
}

// Delete cascade-deletes a card and re-densifies its list.
// DELETE /cards/:cardId
func (h *CardHandler) Delete(c *gin.Context) {
	cardID, err := strconv.ParseUint(c.Param("cardId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid card id")
		return
	}

	if err := h.cardService.Delete(uint(cardID)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": uint(cardID)})
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(v string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
