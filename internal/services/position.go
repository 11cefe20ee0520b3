package services

import (
	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"gorm.io/gorm"
)

// Position sequencing. Sibling lists (per board) and sibling cards (per list)
// keep a dense 0-based position index: after any mutation the stored positions
// are exactly {0,...,count-1}. New siblings append at the current count, so
// inserts never touch existing rows; removals and moves rewrite only the rows
// whose stored position no longer matches their index. All helpers run inside
// the caller's transaction.

// resequenceLists re-densifies the list positions of one board. An empty
// board is a no-op.
func resequenceLists(tx *gorm.DB, boardID uint) error {
	var lists []models.List
	if err := tx.Where("board_id = ?", boardID).
		Order("position ASC, id ASC").
		Find(&lists).Error; err != nil {
		return err
	}

	for i := range lists {
		if lists[i].Position == i {
			continue
		}
		if err := tx.Model(&models.List{}).
			Where("id = ?", lists[i].ID).
			Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}

// resequenceCards re-densifies the card positions of one list.
func resequenceCards(tx *gorm.DB, listID uint) error {
	var cards []models.Card
	if err := tx.Where("list_id = ?", listID).
		Order("position ASC, id ASC").
		Find(&cards).Error; err != nil {
		return err
	}

	for i := range cards {
		if cards[i].Position == i {
			continue
		}
		if err := tx.Model(&models.Card{}).
			Where("id = ?", cards[i].ID).
			Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}

// nextListPosition returns the append position for a new list on a board.
func nextListPosition(tx *gorm.DB, boardID uint) (int, error) {
	var count int64
	if err := tx.Model(&models.List{}).Where("board_id = ?", boardID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// nextCardPosition returns the append position for a new card in a list.
func nextCardPosition(tx *gorm.DB, listID uint) (int, error) {
	var count int64
	if err := tx.Model(&models.Card{}).Where("list_id = ?", listID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// splice removes the element at from and reinserts it at to, shifting the
// elements in between by one. Indices must be in range.
func splice(ids []uint, from, to int) []uint {
	out := make([]uint, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	tail := make([]uint, len(out[to:]))
	copy(tail, out[to:])
	out = append(out[:to], append([]uint{ids[from]}, tail...)...)
	return out
}

// indexOf returns the index of id in ids, or -1.
func indexOf(ids []uint, id uint) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
