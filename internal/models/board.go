package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardStatus is the lifecycle state of a board.
type BoardStatus string

const (
	BoardOpen   BoardStatus = "open"
	BoardClosed BoardStatus = "closed"
)

// Board is the aggregate root of the kanban tree. It is addressed internally
// by its numeric ID and externally by the opaque ExternalID; the numeric key
// never appears in responses for externally keyed routes.
//
// Invariant: Status == BoardClosed implies Progress == 100.
type Board struct {
	ID          uint        `gorm:"primaryKey" json:"boardid"`
	ExternalID  string      `gorm:"uniqueIndex;size:36;not null" json:"fkboardid"`
	ProjectID   uint        `gorm:"index;not null" json:"fkpoid"`
	Title       string      `gorm:"size:200;not null" json:"title"`
	Description string      `gorm:"size:2000" json:"description"`
	Status      BoardStatus `gorm:"size:20;default:open" json:"status"`
	Progress    int         `gorm:"default:0" json:"progress"`
	AddedBy     string      `gorm:"size:100" json:"addedby"`
	AddedByID   uint        `json:"addedbyid"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"-"`
	Members     []User      `gorm:"many2many:board_members" json:"-"`
}

func (Board) TableName() string { return "boards" }

// BeforeCreate assigns the opaque external id used in share links.
func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ExternalID == "" {
		b.ExternalID = uuid.NewString()
	}
	return nil
}

// BoardMember is the membership join row. Declared explicitly so cascade
// deletes and membership replacement can address it directly.
type BoardMember struct {
	BoardID uint `gorm:"primaryKey"`
	UserID  uint `gorm:"primaryKey"`
}

func (BoardMember) TableName() string { return "board_members" }
