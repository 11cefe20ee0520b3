package models

import "time"

// Comment is a note on a card. Comments carry no stored position; reads order
// them by creation time.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"commentid"`
	CardID    uint      `gorm:"index;not null" json:"cardid"`
	Author    string    `gorm:"size:100;not null" json:"author"`
	Message   string    `gorm:"size:4000;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Comment) TableName() string { return "comments" }
