package services

import (
	"time"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
)

// Client-facing row shapes. Identifiers are renamed for the client (boardid,
// fkboardid, fkpoid) and image paths are resolved to absolute URLs.

type MemberRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BoardRow is the board shape returned by the management routes.
type BoardRow struct {
	BoardID     uint               `json:"boardid"`
	FkBoardID   string             `json:"fkboardid"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Members     []MemberRef        `json:"members"`
	Status      models.BoardStatus `json:"status"`
	Progress    int                `json:"progress"`
	CreatedAt   time.Time          `json:"createdAt"`
	AddedBy     string             `json:"addedby"`
	AddedByID   uint               `json:"addedbyid"`
	FkPoID      uint               `json:"fkpoid"`
}

func boardRow(b *models.Board) BoardRow {
	members := make([]MemberRef, 0, len(b.Members))
	for _, m := range b.Members {
		members = append(members, MemberRef{ID: m.ID, Name: m.Name})
	}

	return BoardRow{
		BoardID:     b.ID,
		FkBoardID:   b.ExternalID,
		Title:       b.Title,
		Description: b.Description,
		Members:     members,
		Status:      b.Status,
		Progress:    b.Progress,
		CreatedAt:   b.CreatedAt,
		AddedBy:     b.AddedBy,
		AddedByID:   b.AddedByID,
		FkPoID:      b.ProjectID,
	}
}

// KanbanView is the full tree for one board. It is keyed by the external id
// and deliberately omits the board's internal numeric key: this surface is
// reachable with a viewer token or anonymously.
type KanbanView struct {
	FkBoardID   string             `json:"fkboardid"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      models.BoardStatus `json:"status"`
	Progress    int                `json:"progress"`
	Lists       []ListView         `json:"lists"`
}

type ListView struct {
	ListID   uint       `json:"listid"`
	Name     string     `json:"name"`
	Position int        `json:"position"`
	Cards    []CardView `json:"cards"`
}

type CardView struct {
	CardID      uint             `json:"cardid"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Position    int              `json:"position"`
	ImageURL    string           `json:"imageUrl"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Tasks       []models.Task    `json:"tasks"`
	Tags        []models.Tag     `json:"tags"`
	Comments    []models.Comment `json:"comments"`
}

// CardRow is the single-card shape returned by card mutations.
type CardRow struct {
	CardID      uint       `json:"cardid"`
	ListID      uint       `json:"listid"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Position    int        `json:"position"`
	ImageURL    string     `json:"imageUrl"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// NewCardRow maps a card to its client row, resolving the image URL.
func NewCardRow(c *models.Card, uploads *UploadStore) CardRow {
	return CardRow{
		CardID:      c.ID,
		ListID:      c.ListID,
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
		ImageURL:    uploads.URLFor(c.ImagePath),
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
	}
}
