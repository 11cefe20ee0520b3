package models

import "time"

// List is a column on a board.
//
// Invariant: for every board, the positions of its lists are exactly
// {0,...,count-1} with no duplicates or gaps.
type List struct {
	ID        uint      `gorm:"primaryKey" json:"listid"`
	BoardID   uint      `gorm:"index;not null" json:"boardid"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (List) TableName() string { return "lists" }

// DefaultListNames are seeded, in order, on every new board.
var DefaultListNames = []string{"To-do", "In-progress", "Done"}
