package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
)

func TestComputeProgress_QuarterDone(t *testing.T) {
	db := newTestDB(t)
	board, lists := seedBoard(t, db, "To-do", "Done")

	seedCard(t, db, lists[0].ID, "a")
	seedCard(t, db, lists[0].ID, "b")
	seedCard(t, db, lists[0].ID, "c")
	seedCard(t, db, lists[1].ID, "d")

	got, err := ComputeProgress(db, board.ID)
	if err != nil {
		t.Fatalf("ComputeProgress() error = %v", err)
	}
	if got != 25 {
		t.Errorf("progress = %d, want 25", got)
	}
}

func TestComputeProgress_RoundsHalfUp(t *testing.T) {
	db := newTestDB(t)
	board, lists := seedBoard(t, db, "To-do", "Done")

	// 2 of 3 done is 66.67, which rounds to 67 not 66.
	seedCard(t, db, lists[0].ID, "a")
	seedCard(t, db, lists[1].ID, "b")
	seedCard(t, db, lists[1].ID, "c")

	got, err := ComputeProgress(db, board.ID)
	if err != nil {
		t.Fatalf("ComputeProgress() error = %v", err)
	}
	if got != 67 {
		t.Errorf("progress = %d, want 67", got)
	}
}

func TestComputeProgress_EmptyBoardIsZero(t *testing.T) {
	db := newTestDB(t)
	board, _ := seedBoard(t, db, "To-do", "Done")

	got, err := ComputeProgress(db, board.ID)
	if err != nil {
		t.Fatalf("ComputeProgress() error = %v", err)
	}
	if got != 0 {
		t.Errorf("progress = %d, want 0 for a board with no cards", got)
	}
}

func TestComputeProgress_NoDoneListIsZero(t *testing.T) {
	db := newTestDB(t)
	board, lists := seedBoard(t, db, "To-do", "Doing")
	seedCard(t, db, lists[0].ID, "a")
	seedCard(t, db, lists[1].ID, "b")

	got, err := ComputeProgress(db, board.ID)
	if err != nil {
		t.Fatalf("ComputeProgress() error = %v", err)
	}
	if got != 0 {
		t.Errorf("progress = %d, want 0 without a done list", got)
	}
}

func TestComputeProgress_DoneNameIsFuzzyMatched(t *testing.T) {
	db := newTestDB(t)
	board, lists := seedBoard(t, db, "To-do", "  DONE ")
	seedCard(t, db, lists[1].ID, "a")

	got, err := ComputeProgress(db, board.ID)
	if err != nil {
		t.Fatalf("ComputeProgress() error = %v", err)
	}
	if got != 100 {
		t.Errorf("progress = %d, done match must ignore case and whitespace", got)
	}
}

func TestCloseBoard_RejectedBelowFull(t *testing.T) {
	db := newTestDB(t)
	board, lists := seedBoard(t, db, "To-do", "Done")
	db.Model(&models.Board{}).Where("id = ?", board.ID).Update("external_id", "ext-close")

	seedCard(t, db, lists[0].ID, "a")
	seedCard(t, db, lists[1].ID, "b")

	svc := NewBoardService(db, newTestUploads(t), &testJWTConfig)
	_, err := svc.Close("ext-close")

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Close() error = %v, want AppError", err)
	}
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", appErr.HTTPStatus)
	}
	if got, ok := appErr.Details["progress"]; !ok || got != 50 {
		t.Errorf("details progress = %v, want 50", got)
	}

	var stored models.Board
	db.First(&stored, board.ID)
	if stored.Status != models.BoardOpen {
		t.Errorf("board status = %v, rejected close must not change it", stored.Status)
	}
}

func TestCloseBoard_SucceedsAtFull(t *testing.T) {
	db := newTestDB(t)
	board, lists := seedBoard(t, db, "To-do", "Done")
	db.Model(&models.Board{}).Where("id = ?", board.ID).Update("external_id", "ext-close-ok")

	seedCard(t, db, lists[1].ID, "a")
	seedCard(t, db, lists[1].ID, "b")

	svc := NewBoardService(db, newTestUploads(t), &testJWTConfig)
	row, err := svc.Close("ext-close-ok")
	if err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if row.Status != models.BoardClosed || row.Progress != 100 {
		t.Errorf("closed board = %v/%d, want closed/100", row.Status, row.Progress)
	}
}
