package services

import (
	"math"
	"strings"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"gorm.io/gorm"
)

// ComputeProgress derives the completion percentage of a board from the live
// tree: the share of cards sitting in the list whose trimmed, case-insensitive
// name is "done", rounded half-up. A board without such a list reports 0
// regardless of task state, and an empty board reports 0.
func ComputeProgress(tx *gorm.DB, boardID uint) (int, error) {
	var lists []models.List
	if err := tx.Where("board_id = ?", boardID).Find(&lists).Error; err != nil {
		return 0, err
	}

	var total, done int64
	for _, list := range lists {
		var count int64
		if err := tx.Model(&models.Card{}).Where("list_id = ?", list.ID).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
		if strings.EqualFold(strings.TrimSpace(list.Name), "done") {
			done += count
		}
	}

	if total == 0 {
		return 0, nil
	}
	return int(math.Floor(float64(done)/float64(total)*100 + 0.5)), nil
}
