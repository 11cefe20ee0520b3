package services

import (
	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"gorm.io/gorm"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

type CreateTagRequest struct {
	Title string `json:"title" binding:"required"`
	Color string `json:"color"`
}

// Create adds a tag to a card. Tags are unordered.
func (s *TagService) Create(cardID uint, req *CreateTagRequest) (*models.Tag, error) {
	var count int64
	if err := s.db.Model(&models.Card{}).Where("id = ?", cardID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, response.NewNotFound("card not found")
	}

	tag := models.Tag{
		CardID: cardID,
		Title:  req.Title,
		Color:  req.Color,
	}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes a tag.
func (s *TagService) Delete(tagID uint) error {
	result := s.db.Delete(&models.Tag{}, tagID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("tag not found")
	}
	return nil
}
