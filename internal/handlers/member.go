package handlers

import (
	"github.com/Eman-Abukhater/kanban-board-backend/internal/services"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberHandler struct {
	memberService *services.MemberService
}

func NewMemberHandler(db *gorm.DB) *MemberHandler {
	return &MemberHandler{memberService: services.NewMemberService(db)}
}

// List returns all users as member picker entries.
// GET /members
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, members)
}
