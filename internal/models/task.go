package models

import "time"

// TaskStatus is the completion state of a checklist task.
type TaskStatus string

const (
	TaskTodo TaskStatus = "todo"
	TaskDone TaskStatus = "done"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	return s == TaskTodo || s == TaskDone
}

// Task is an unordered checklist item on a card.
type Task struct {
	ID         uint       `gorm:"primaryKey" json:"taskid"`
	CardID     uint       `gorm:"index;not null" json:"cardid"`
	Name       string     `gorm:"size:200;not null" json:"name"`
	Status     TaskStatus `gorm:"size:20;default:todo" json:"status"`
	AssigneeID *uint      `json:"assigneeId"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
}

func (Task) TableName() string { return "tasks" }
