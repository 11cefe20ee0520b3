package services

import (
	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"gorm.io/gorm"
)

type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

// List returns all users as id+name pairs for member pickers.
func (s *MemberService) List() ([]MemberRef, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	refs := make([]MemberRef, 0, len(users))
	for _, u := range users {
		refs = append(refs, MemberRef{ID: u.ID, Name: u.Name})
	}
	return refs, nil
}
