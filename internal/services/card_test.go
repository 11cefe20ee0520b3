package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
)

func TestCreateCard_AppendsAtEnd(t *testing.T) {
	db := newTestDB(t)
	_, lists := seedBoard(t, db, "To-do")

	svc := NewCardService(db, newTestUploads(t))
	first, err := svc.Create(lists[0].ID, &CreateCardRequest{Title: "one"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := svc.Create(lists[0].ID, &CreateCardRequest{Title: "two"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if first.Position != 0 || second.Position != 1 {
		t.Errorf("positions = %d, %d; want 0, 1", first.Position, second.Position)
	}
}

func TestMoveCard_AcrossListsRedensifiesBoth(t *testing.T) {
	db := newTestDB(t)
	_, lists := seedBoard(t, db, "To-do", "Doing")

	a := seedCard(t, db, lists[0].ID, "a")
	b := seedCard(t, db, lists[0].ID, "b")
	c := seedCard(t, db, lists[0].ID, "c")
	x := seedCard(t, db, lists[1].ID, "x")

	svc := NewCardService(db, newTestUploads(t))
	at := 0
	err := svc.Move(&MoveCardRequest{CardID: b.ID, ToListID: lists[1].ID, ToIndex: &at})
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	assertDense(t, cardPositions(t, db, lists[0].ID))
	assertDense(t, cardPositions(t, db, lists[1].ID))

	var source []models.Card
	db.Where("list_id = ?", lists[0].ID).Order("position ASC").Find(&source)
	if len(source) != 2 || source[0].ID != a.ID || source[1].ID != c.ID {
		t.Errorf("source order wrong after move: %+v", source)
	}

	var dest []models.Card
	db.Where("list_id = ?", lists[1].ID).Order("position ASC").Find(&dest)
	if len(dest) != 2 || dest[0].ID != b.ID || dest[1].ID != x.ID {
		t.Errorf("dest order wrong after move: %+v", dest)
	}
}

func TestMoveCard_NoIndexAppendsToEnd(t *testing.T) {
	db := newTestDB(t)
	_, lists := seedBoard(t, db, "To-do", "Done")

	a := seedCard(t, db, lists[0].ID, "a")
	seedCard(t, db, lists[1].ID, "x")
	seedCard(t, db, lists[1].ID, "y")

	svc := NewCardService(db, newTestUploads(t))
	if err := svc.Move(&MoveCardRequest{CardID: a.ID, ToListID: lists[1].ID}); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	var moved models.Card
	db.First(&moved, a.ID)
	if moved.ListID != lists[1].ID {
		t.Fatalf("card not reparented: list = %d", moved.ListID)
	}
	if moved.Position != 2 {
		t.Errorf("Position = %d, want 2 (append)", moved.Position)
	}
	assertDense(t, cardPositions(t, db, lists[1].ID))
}

func TestMoveCard_WithinList(t *testing.T) {
	db := newTestDB(t)
	_, lists := seedBoard(t, db, "To-do")

	a := seedCard(t, db, lists[0].ID, "a")
	b := seedCard(t, db, lists[0].ID, "b")
	c := seedCard(t, db, lists[0].ID, "c")

	svc := NewCardService(db, newTestUploads(t))
	at := 0
	if err := svc.Move(&MoveCardRequest{CardID: c.ID, ToListID: lists[0].ID, ToIndex: &at}); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	var got []models.Card
	db.Where("list_id = ?", lists[0].ID).Order("position ASC").Find(&got)
	wantOrder := []uint{c.ID, a.ID, b.ID}
	for i, card := range got {
		if card.ID != wantOrder[i] {
			t.Errorf("position %d: got card %d, want %d", i, card.ID, wantOrder[i])
		}
	}
	assertDense(t, cardPositions(t, db, lists[0].ID))
}

func TestMoveCard_OutOfRangeIndexAppends(t *testing.T) {
	db := newTestDB(t)
	_, lists := seedBoard(t, db, "To-do", "Done")

	a := seedCard(t, db, lists[0].ID, "a")
	b := seedCard(t, db, lists[0].ID, "b")
	seedCard(t, db, lists[1].ID, "x")

	svc := NewCardService(db, newTestUploads(t))

	// Indices outside the destination sequence clamp to append.
	for _, at := range []int{-3, 99} {
		if err := svc.Move(&MoveCardRequest{CardID: a.ID, ToListID: lists[1].ID, ToIndex: &at}); err != nil {
			t.Fatalf("Move(toIndex=%d) error = %v", at, err)
		}
		if err := svc.Move(&MoveCardRequest{CardID: a.ID, ToListID: lists[0].ID, ToIndex: &at}); err != nil {
			t.Fatalf("Move(back, toIndex=%d) error = %v", at, err)
		}
		assertDense(t, cardPositions(t, db, lists[0].ID))
		assertDense(t, cardPositions(t, db, lists[1].ID))
	}

	var moved models.Card
	db.First(&moved, a.ID)
	if moved.ListID != lists[0].ID || moved.Position != 1 {
		t.Errorf("card at list %d position %d, want appended at end of source", moved.ListID, moved.Position)
	}

	var untouched models.Card
	db.First(&untouched, b.ID)
	if untouched.Position != 0 {
		t.Errorf("sibling position = %d, want 0", untouched.Position)
	}
}

func TestMoveCard_UnknownDestinationIsNotFound(t *testing.T) {
	db := newTestDB(t)
	_, lists := seedBoard(t, db, "To-do")
	a := seedCard(t, db, lists[0].ID, "a")

	svc := NewCardService(db, newTestUploads(t))
	err := svc.Move(&MoveCardRequest{CardID: a.ID, ToListID: 9999})

	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("Move() error = %v, want NotFound", err)
	}
}

func TestDeleteCard_SoleCardLeavesEmptyList(t *testing.T) {
	db := newTestDB(t)
	_, lists := seedBoard(t, db, "To-do")
	a := seedCard(t, db, lists[0].ID, "only")

	db.Create(&models.Task{CardID: a.ID, Name: "sub", Status: models.TaskTodo})
	db.Create(&models.Tag{CardID: a.ID, Title: "urgent"})
	db.Create(&models.Comment{CardID: a.ID, Author: "me", Message: "hi"})

	svc := NewCardService(db, newTestUploads(t))
	if err := svc.Delete(a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var cards, tasks, tags, comments int64
	db.Model(&models.Card{}).Where("list_id = ?", lists[0].ID).Count(&cards)
	db.Model(&models.Task{}).Where("card_id = ?", a.ID).Count(&tasks)
	db.Model(&models.Tag{}).Where("card_id = ?", a.ID).Count(&tags)
	db.Model(&models.Comment{}).Where("card_id = ?", a.ID).Count(&comments)

	if cards != 0 || tasks != 0 || tags != 0 || comments != 0 {
		t.Errorf("orphans left: cards=%d tasks=%d tags=%d comments=%d", cards, tasks, tags, comments)
	}
}

func TestDeleteCard_RedensifiesList(t *testing.T) {
	db := newTestDB(t)
	_, lists := seedBoard(t, db, "To-do")

	a := seedCard(t, db, lists[0].ID, "a")
	b := seedCard(t, db, lists[0].ID, "b")
	c := seedCard(t, db, lists[0].ID, "c")

	svc := NewCardService(db, newTestUploads(t))
	if err := svc.Delete(b.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	positions := cardPositions(t, db, lists[0].ID)
	if len(positions) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(positions))
	}
	assertDense(t, positions)

	var got []models.Card
	db.Where("list_id = ?", lists[0].ID).Order("position ASC").Find(&got)
	if got[0].ID != a.ID || got[1].ID != c.ID {
		t.Errorf("order wrong after delete: %+v", got)
	}
}

func TestUpdateCard_PartialFieldsOnly(t *testing.T) {
	db := newTestDB(t)
	_, lists := seedBoard(t, db, "To-do")
	a := seedCard(t, db, lists[0].ID, "before")
	db.Model(&models.Card{}).Where("id = ?", a.ID).Update("description", "keep me")

	svc := NewCardService(db, newTestUploads(t))
	title := "after"
	if _, err := svc.Update(a.ID, &UpdateCardRequest{Title: &title}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var got models.Card
	db.First(&got, a.ID)
	if got.Title != "after" {
		t.Errorf("Title = %q, want %q", got.Title, "after")
	}
	if got.Description != "keep me" {
		t.Errorf("Description = %q, want untouched %q", got.Description, "keep me")
	}
}
