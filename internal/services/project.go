package services

import (
	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// List returns all projects as id+name pairs, ordered by id.
func (s *ProjectService) List() ([]ProjectRef, error) {
	var projects []models.Project
	if err := s.db.Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}

	refs := make([]ProjectRef, 0, len(projects))
	for _, p := range projects {
		refs = append(refs, ProjectRef{ID: p.ID, Name: p.Name})
	}
	return refs, nil
}
