package services

import (
	"testing"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/config"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// newTestUploads returns an upload store backed by a temp dir.
func newTestUploads(t *testing.T) *UploadStore {
	t.Helper()

	store, err := NewUploadStore(&config.UploadConfig{
		Dir:       t.TempDir(),
		BaseURL:   "http://localhost:4000",
		MaxSizeMB: 5,
	})
	if err != nil {
		t.Fatalf("upload store: %v", err)
	}
	return store
}

var testJWTConfig = config.JWTConfig{Secret: "test-secret", ExpireHour: 168}

// utilsSetSecret installs the shared test signing secret.
func utilsSetSecret(t *testing.T) {
	t.Helper()
	utils.SetJWTSecret(testJWTConfig.Secret)
}

// seedBoard creates a board with lists named as given, positions 0..n-1.
func seedBoard(t *testing.T, db *gorm.DB, listNames ...string) (*models.Board, []models.List) {
	t.Helper()

	board := models.Board{
		ProjectID: 1001,
		Title:     "Test Board",
		Status:    models.BoardOpen,
		AddedBy:   "System",
	}
	if err := db.Create(&board).Error; err != nil {
		t.Fatalf("create board: %v", err)
	}

	lists := make([]models.List, 0, len(listNames))
	for i, name := range listNames {
		list := models.List{BoardID: board.ID, Name: name, Position: i}
		if err := db.Create(&list).Error; err != nil {
			t.Fatalf("create list %q: %v", name, err)
		}
		lists = append(lists, list)
	}
	return &board, lists
}

// seedCard appends a card to a list at the next free position.
func seedCard(t *testing.T, db *gorm.DB, listID uint, title string) *models.Card {
	t.Helper()

	var count int64
	db.Model(&models.Card{}).Where("list_id = ?", listID).Count(&count)

	card := models.Card{ListID: listID, Title: title, Position: int(count)}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("create card %q: %v", title, err)
	}
	return &card
}

// listPositions returns the stored positions of a board's lists ordered by
// position.
func listPositions(t *testing.T, db *gorm.DB, boardID uint) []int {
	t.Helper()

	var lists []models.List
	if err := db.Where("board_id = ?", boardID).Order("position ASC").Find(&lists).Error; err != nil {
		t.Fatalf("load lists: %v", err)
	}
	positions := make([]int, len(lists))
	for i, l := range lists {
		positions[i] = l.Position
	}
	return positions
}

// cardPositions returns the stored positions of a list's cards ordered by
// position.
func cardPositions(t *testing.T, db *gorm.DB, listID uint) []int {
	t.Helper()

	var cards []models.Card
	if err := db.Where("list_id = ?", listID).Order("position ASC").Find(&cards).Error; err != nil {
		t.Fatalf("load cards: %v", err)
	}
	positions := make([]int, len(cards))
	for i, c := range cards {
		positions[i] = c.Position
	}
	return positions
}

// assertDense fails unless positions are exactly 0..len-1.
func assertDense(t *testing.T, positions []int) {
	t.Helper()
	for i, p := range positions {
		if p != i {
			t.Fatalf("positions not dense: got %v", positions)
		}
	}
}
