package services

import (
	"errors"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"gorm.io/gorm"
)

type ListService struct {
	db *gorm.DB
}

func NewListService(db *gorm.DB) *ListService {
	return &ListService{db: db}
}

type CreateListRequest struct {
	Name string `json:"name" binding:"required"`
}

type ReorderListsRequest struct {
	BoardID    uint `json:"boardId" binding:"required"`
	FromListID uint `json:"fromListId" binding:"required"`
	ToListID   uint `json:"toListId" binding:"required"`
}

// Create appends a list to the board identified by its external id. The new
// list takes position = current sibling count; existing lists are untouched.
func (s *ListService) Create(boardExternalID string, req *CreateListRequest) (*models.List, error) {
	var list models.List

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var board models.Board
		if err := tx.Where("external_id = ?", boardExternalID).First(&board).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("board not found")
			}
			return err
		}

		pos, err := nextListPosition(tx, board.ID)
		if err != nil {
			return err
		}

		list = models.List{
			BoardID:  board.ID,
			Name:     req.Name,
			Position: pos,
		}
		return tx.Create(&list).Error
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Reorder moves fromListId to the position currently held by toListId with
// splice semantics, then rewrites the positions of the whole sequence. Both
// ids must belong to the board.
func (s *ListService) Reorder(req *ReorderListsRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var lists []models.List
		if err := tx.Where("board_id = ?", req.BoardID).
			Order("position ASC, id ASC").
			Find(&lists).Error; err != nil {
			return err
		}

		ids := make([]uint, len(lists))
		for i, l := range lists {
			ids[i] = l.ID
		}

		from := indexOf(ids, req.FromListID)
		to := indexOf(ids, req.ToListID)
		if from == -1 || to == -1 {
			return response.NewNotFound("list not found on board")
		}
		if from == to {
			return nil
		}

		ordered := splice(ids, from, to)
		for i, id := range ordered {
			if lists[indexOf(ids, id)].Position == i {
				continue
			}
			if err := tx.Model(&models.List{}).
				Where("id = ?", id).
				Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete cascade-deletes one list: every card's tasks, tags and comments,
// then the cards, then the list itself, then re-densifies the remaining list
// positions on the board. Atomic: a failing step rolls the whole cascade back.
func (s *ListService) Delete(listID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var list models.List
		if err := tx.First(&list, listID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("list not found")
			}
			return err
		}

		if err := deleteListSubtree(tx, list.ID); err != nil {
			return err
		}
		if err := tx.Delete(&models.List{}, list.ID).Error; err != nil {
			return err
		}

		return resequenceLists(tx, list.BoardID)
	})
}

// deleteListSubtree removes all cards of a list together with their children.
// The list row itself is left for the caller.
func deleteListSubtree(tx *gorm.DB, listID uint) error {
	var cardIDs []uint
	if err := tx.Model(&models.Card{}).
		Where("list_id = ?", listID).
		Pluck("id", &cardIDs).Error; err != nil {
		return err
	}
	if len(cardIDs) == 0 {
		return nil
	}

	if err := tx.Where("card_id IN ?", cardIDs).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	if err := tx.Where("card_id IN ?", cardIDs).Delete(&models.Tag{}).Error; err != nil {
		return err
	}
	if err := tx.Where("card_id IN ?", cardIDs).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return tx.Where("list_id = ?", listID).Delete(&models.Card{}).Error
}
