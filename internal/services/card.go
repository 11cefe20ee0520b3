package services

import (
	"errors"
	"time"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"gorm.io/gorm"
)

type CardService struct {
	db      *gorm.DB
	uploads *UploadStore
}

func NewCardService(db *gorm.DB, uploads *UploadStore) *CardService {
	return &CardService{db: db, uploads: uploads}
}

type CreateCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateCardRequest is a partial update: only non-nil fields are applied.
// ImagePath replaces the stored image ("" means remove); the handler owns the
// multipart parsing and the upload store interaction.
type UpdateCardRequest struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	ImagePath   *string
}

type MoveCardRequest struct {
	CardID   uint `json:"cardId" binding:"required"`
	ToListID uint `json:"toListId" binding:"required"`
	ToIndex  *int `json:"toIndex"`
}

// Create appends a card to a list at position = current sibling count.
func (s *CardService) Create(listID uint, req *CreateCardRequest) (*models.Card, error) {
	var card models.Card

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var list models.List
		if err := tx.First(&list, listID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("list not found")
			}
			return err
		}

		pos, err := nextCardPosition(tx, list.ID)
		if err != nil {
			return err
		}

		card = models.Card{
			ListID:      list.ID,
			Title:       req.Title,
			Description: req.Description,
			Position:    pos,
		}
		return tx.Create(&card).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetByID loads one card.
func (s *CardService) GetByID(cardID uint) (*models.Card, error) {
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("card not found")
		}
		return nil, err
	}
	return &card, nil
}

// Update applies a partial update. When the image is replaced, the superseded
// file is removed best-effort after commit; a failed removal never fails the
// request.
func (s *CardService) Update(cardID uint, req *UpdateCardRequest) (*models.Card, error) {
	var card models.Card
	var supersededImage string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&card, cardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("card not found")
			}
			return err
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.StartDate != nil {
			updates["start_date"] = *req.StartDate
		}
		if req.EndDate != nil {
			updates["end_date"] = *req.EndDate
		}
		if req.ImagePath != nil && *req.ImagePath != card.ImagePath {
			supersededImage = card.ImagePath
			updates["image_path"] = *req.ImagePath
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&card).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	if supersededImage != "" {
		s.uploads.Remove(supersededImage)
	}
	return &card, nil
}

// Move reparents a card (or repositions it within its list) and leaves every
// affected list with dense positions. A nil or out-of-range ToIndex appends
// to the end of the destination.
func (s *CardService) Move(req *MoveCardRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var card models.Card
		if err := tx.First(&card, req.CardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("card not found")
			}
			return err
		}

		var dest models.List
		if err := tx.First(&dest, req.ToListID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("destination list not found")
			}
			return err
		}

		if card.ListID == dest.ID {
			return s.moveWithinList(tx, &card, req.ToIndex)
		}
		return s.moveAcrossLists(tx, &card, dest.ID, req.ToIndex)
	})
}

func (s *CardService) moveWithinList(tx *gorm.DB, card *models.Card, toIndex *int) error {
	var cards []models.Card
	if err := tx.Where("list_id = ?", card.ListID).
		Order("position ASC, id ASC").
		Find(&cards).Error; err != nil {
		return err
	}

	ids := make([]uint, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}

	from := indexOf(ids, card.ID)
	to := len(ids) - 1
	if toIndex != nil && *toIndex >= 0 && *toIndex < len(ids) {
		to = *toIndex
	}
	if from == to {
		return nil
	}

	ordered := splice(ids, from, to)
	return writeCardPositions(tx, cards, ordered)
}

func (s *CardService) moveAcrossLists(tx *gorm.DB, card *models.Card, destListID uint, toIndex *int) error {
	sourceListID := card.ListID
	if err := tx.Model(card).Update("list_id", destListID).Error; err != nil {
		return err
	}

	// Remaining source siblings close the gap left by the card.
	if err := resequenceCards(tx, sourceListID); err != nil {
		return err
	}

	var siblings []models.Card
	if err := tx.Where("list_id = ? AND id != ?", destListID, card.ID).
		Order("position ASC, id ASC").
		Find(&siblings).Error; err != nil {
		return err
	}

	ids := make([]uint, 0, len(siblings)+1)
	for _, c := range siblings {
		ids = append(ids, c.ID)
	}

	at := len(ids)
	if toIndex != nil && *toIndex >= 0 && *toIndex < len(ids) {
		at = *toIndex
	}

	tail := make([]uint, len(ids[at:]))
	copy(tail, ids[at:])
	ordered := append(append(ids[:at], card.ID), tail...)

	all := append(siblings, *card)
	return writeCardPositions(tx, all, ordered)
}

// writeCardPositions writes position = index for each id in ordered, skipping
// rows whose stored position already matches.
func writeCardPositions(tx *gorm.DB, cards []models.Card, ordered []uint) error {
	stored := make(map[uint]int, len(cards))
	for _, c := range cards {
		stored[c.ID] = c.Position
	}

	for i, id := range ordered {
		if pos, ok := stored[id]; ok && pos == i {
			continue
		}
		if err := tx.Model(&models.Card{}).
			Where("id = ?", id).
			Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete cascade-deletes a card's tasks, tags and comments, then the card,
// then re-densifies the remaining cards of the list.
func (s *CardService) Delete(cardID uint) error {
	var imagePath string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var card models.Card
		if err := tx.First(&card, cardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("card not found")
			}
			return err
		}
		imagePath = card.ImagePath

		if err := tx.Where("card_id = ?", card.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("card_id = ?", card.ID).Delete(&models.Tag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("card_id = ?", card.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Card{}, card.ID).Error; err != nil {
			return err
		}

		return resequenceCards(tx, card.ListID)
	})
	if err != nil {
		return err
	}

	if imagePath != "" {
		s.uploads.Remove(imagePath)
	}
	return nil
}
