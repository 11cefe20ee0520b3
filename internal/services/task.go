package services

import (
	"errors"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

type CreateTaskRequest struct {
	Name       string `json:"name" binding:"required"`
	AssigneeID *uint  `json:"assigneeId"`
}

// UpdateTaskRequest is a partial update. RemoveAssignee clears the assignee
// back to unassigned; it wins over a simultaneously supplied assigneeId.
type UpdateTaskRequest struct {
	Name           *string            `json:"name"`
	Status         *models.TaskStatus `json:"status" binding:"omitempty,oneof=todo done"`
	AssigneeID     *uint              `json:"assigneeId"`
	RemoveAssignee bool               `json:"removeAssignee"`
}

// Create adds a task to a card. Tasks are unordered.
func (s *TaskService) Create(cardID uint, req *CreateTaskRequest) (*models.Task, error) {
	var count int64
	if err := s.db.Model(&models.Card{}).Where("id = ?", cardID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, response.NewNotFound("card not found")
	}

	task := models.Task{
		CardID:     cardID,
		Name:       req.Name,
		Status:     models.TaskTodo,
		AssigneeID: req.AssigneeID,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a partial update to a task.
func (s *TaskService) Update(taskID uint, req *UpdateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("task not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, response.NewValidation("invalid task status")
		}
		updates["status"] = *req.Status
	}
	if req.RemoveAssignee {
		updates["assignee_id"] = nil
	} else if req.AssigneeID != nil {
		updates["assignee_id"] = *req.AssigneeID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&task).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(taskID uint) error {
	result := s.db.Delete(&models.Task{}, taskID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("task not found")
	}
	return nil
}
