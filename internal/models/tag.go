package models

import "time"

// Tag is an unordered label on a card.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"tagid"`
	CardID    uint      `gorm:"index;not null" json:"cardid"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Color     string    `gorm:"size:30" json:"color"`
	CreatedAt time.Time `json:"-"`
}

func (Tag) TableName() string { return "tags" }
