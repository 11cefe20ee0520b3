package models

import "time"

// Card is a work item inside a list.
//
// Invariant: positions within a list are dense {0,...,count-1}. Moving a card
// between lists re-densifies both the source and the destination sequence.
type Card struct {
	ID          uint       `gorm:"primaryKey" json:"cardid"`
	ListID      uint       `gorm:"index;not null" json:"listid"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:4000" json:"description"`
	Position    int        `gorm:"not null" json:"position"`
	ImagePath   string     `gorm:"size:500" json:"-"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}

func (Card) TableName() string { return "cards" }
