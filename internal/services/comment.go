package services

import (
	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

type CreateCommentRequest struct {
	Author  string `json:"author" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Create adds a comment to a card. Comments carry no position; reads order
// them by creation time.
func (s *CommentService) Create(cardID uint, req *CreateCommentRequest) (*models.Comment, error) {
	var count int64
	if err := s.db.Model(&models.Card{}).Where("id = ?", cardID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, response.NewNotFound("card not found")
	}

	comment := models.Comment{
		CardID:  cardID,
		Author:  req.Author,
		Message: req.Message,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
