package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

func TestBoardRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	board := &domain.Board{
		Title:   "Roadmap",
		Slug:    "roadmap",
		OwnerID: uuid.New(),
	}
	if err := repo.Create(ctx, board); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if board.ID == uuid.Nil {
		t.Fatal("Create() did not assign an ID")
	}

	found, err := repo.FindByID(ctx, board.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Title != "Roadmap" || found.OwnerID != board.OwnerID {
		t.Errorf("FindByID() returned wrong board: %+v", found)
	}
}

func TestBoardRepository_FindByID_ExcludesDestroyed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	board := &domain.Board{Title: "Archived", OwnerID: uuid.New()}
	if err := repo.Create(ctx, board); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	now := time.Now().UTC()
	if _, err := repo.Update(ctx, board.ID, map[string]interface{}{
		"destroyed":    true,
		"destroyed_at": now,
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if _, err := repo.FindByID(ctx, board.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID() after destroy: want ErrRecordNotFound, got %v", err)
	}
}

func TestBoardRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	member := uuid.New()
	stranger := uuid.New()

	// Owned board, board where the user is only a member, unrelated board
	owned := &domain.Board{Title: "Owned", OwnerID: owner}
	owned.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	shared := &domain.Board{Title: "Shared", OwnerID: uuid.New(), MemberIDs: []uuid.UUID{member, owner}}
	shared.CreatedAt = time.Now().UTC().Add(-1 * time.Hour)
	other := &domain.Board{Title: "Other", OwnerID: uuid.New()}
	other.CreatedAt = time.Now().UTC()

	for _, b := range []*domain.Board{owned, shared, other} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	boards, total, err := repo.FindByUser(ctx, owner, 0, 12)
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if total != 2 || len(boards) != 2 {
		t.Fatalf("FindByUser() = %d boards, total %d; want 2, 2", len(boards), total)
	}
	// Newest first
	if boards[0].Title != "Shared" || boards[1].Title != "Owned" {
		t.Errorf("FindByUser() order = [%s, %s]; want [Shared, Owned]", boards[0].Title, boards[1].Title)
	}

	if _, total, _ := repo.FindByUser(ctx, stranger, 0, 12); total != 0 {
		t.Errorf("FindByUser() for stranger: total = %d, want 0", total)
	}
}

func TestBoardRepository_FindByUser_Paging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	for i := 0; i < 5; i++ {
		b := &domain.Board{Title: "Board", OwnerID: owner}
		b.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	page, total, err := repo.FindByUser(ctx, owner, 2, 2)
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(page) != 2 {
		t.Errorf("page size = %d, want 2", len(page))
	}

	// Offset past the end yields an empty page, same total
	empty, total, err := repo.FindByUser(ctx, owner, 10, 2)
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if len(empty) != 0 || total != 5 {
		t.Errorf("past-end page = %d items, total %d; want 0, 5", len(empty), total)
	}
}

func TestBoardRepository_Update_MissingBoard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)

	_, err := repo.Update(context.Background(), uuid.New(), map[string]interface{}{"title": "x"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Update() on missing board: want ErrRecordNotFound, got %v", err)
	}
}

func TestBoardRepository_ColumnOrderPushPull(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	board := &domain.Board{Title: "Ordered", OwnerID: uuid.New()}
	if err := repo.Create(ctx, board); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	colA, colB := uuid.New(), uuid.New()
	if err := repo.PushColumnOrderID(ctx, board.ID, colA); err != nil {
		t.Fatalf("PushColumnOrderID() error = %v", err)
	}
	if err := repo.PushColumnOrderID(ctx, board.ID, colB); err != nil {
		t.Fatalf("PushColumnOrderID() error = %v", err)
	}

	found, _ := repo.FindByID(ctx, board.ID)
	if len(found.ColumnOrderIDs) != 2 || found.ColumnOrderIDs[0] != colA || found.ColumnOrderIDs[1] != colB {
		t.Fatalf("column order = %v, want [%s %s]", found.ColumnOrderIDs, colA, colB)
	}

	if err := repo.PullColumnOrderID(ctx, board.ID, colA); err != nil {
		t.Fatalf("PullColumnOrderID() error = %v", err)
	}
	found, _ = repo.FindByID(ctx, board.ID)
	if len(found.ColumnOrderIDs) != 1 || found.ColumnOrderIDs[0] != colB {
		t.Errorf("column order after pull = %v, want [%s]", found.ColumnOrderIDs, colB)
	}

	// Pulling an absent ID is a no-op
	if err := repo.PullColumnOrderID(ctx, board.ID, uuid.New()); err != nil {
		t.Fatalf("PullColumnOrderID() absent error = %v", err)
	}
	found, _ = repo.FindByID(ctx, board.ID)
	if len(found.ColumnOrderIDs) != 1 {
		t.Errorf("column order after absent pull = %v, want 1 entry", found.ColumnOrderIDs)
	}
}

func TestBoardRepository_PurgeDestroyedBefore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	old := time.Now().UTC().Add(-40 * 24 * time.Hour)
	recent := time.Now().UTC().Add(-1 * 24 * time.Hour)

	oldDestroyed := &domain.Board{Title: "Old", OwnerID: uuid.New()}
	recentDestroyed := &domain.Board{Title: "Recent", OwnerID: uuid.New()}
	live := &domain.Board{Title: "Live", OwnerID: uuid.New()}
	for _, b := range []*domain.Board{oldDestroyed, recentDestroyed, live} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	repo.Update(ctx, oldDestroyed.ID, map[string]interface{}{"destroyed": true, "destroyed_at": old})
	repo.Update(ctx, recentDestroyed.ID, map[string]interface{}{"destroyed": true, "destroyed_at": recent})

	count, err := repo.PurgeDestroyedBefore(ctx, time.Now().UTC().Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("PurgeDestroyedBefore() error = %v", err)
	}
	if count != 1 {
		t.Errorf("purged %d rows, want 1", count)
	}

	var remaining int64
	db.Model(&domain.Board{}).Count(&remaining)
	if remaining != 2 {
		t.Errorf("%d rows remain, want 2", remaining)
	}
}
