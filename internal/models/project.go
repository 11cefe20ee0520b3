package models

import "time"

// Project groups boards. Its id lives in an external id space: callers supply
// the numeric id and the project is upserted on first use, never auto-assigned.
type Project struct {
	ID          uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"size:2000" json:"description"`
	Status      string    `gorm:"size:20;default:open" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

func (Project) TableName() string { return "projects" }
