package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Board, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Board, error)
	ReplaceColumnOrder(ctx context.Context, id uuid.UUID, columnOrderIDs []uuid.UUID) error
	PushColumnOrderID(ctx context.Context, boardID, columnID uuid.UUID) error
	PullColumnOrderID(ctx context.Context, boardID, columnID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	PurgeDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) BoardRepository
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

func (r *boardRepositoryImpl) WithTx(tx *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: tx}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	if board.ID == uuid.Nil {
		board.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a board by its ID, excluding destroyed rows
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Where("id = ? AND destroyed = ?", id, false).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByUser returns the boards the user owns or is a member of, newest
// first, with the total count before paging. Membership lives in a jsonb
// array, so the member filter runs in memory after a narrow candidate fetch.
func (r *boardRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Board, int64, error) {
	var candidates []*domain.Board
	if err := r.db.WithContext(ctx).
		Where("destroyed = ?", false).
		Order("created_at DESC").
		Find(&candidates).Error; err != nil {
		return nil, 0, err
	}

	visible := make([]*domain.Board, 0, len(candidates))
	for _, b := range candidates {
		if b.HasMember(userID) {
			visible = append(visible, b)
		}
	}

	total := int64(len(visible))
	if offset >= len(visible) {
		return []*domain.Board{}, total, nil
	}
	end := offset + limit
	if end > len(visible) {
		end = len(visible)
	}
	return visible[offset:end], total, nil
}

// Update merges the given fields into the board and returns the post-update
// row. gorm.ErrRecordNotFound is returned when no live row matches.
func (r *boardRepositoryImpl) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Board, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("id = ? AND destroyed = ?", id, false).
		Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var board domain.Board
	if err := r.db.WithContext(ctx).First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// ReplaceColumnOrder overwrites the board's column order list
func (r *boardRepositoryImpl) ReplaceColumnOrder(ctx context.Context, id uuid.UUID, columnOrderIDs []uuid.UUID) error {
	_, err := r.Update(ctx, id, map[string]interface{}{
		"column_order_ids": toJSONSlice(columnOrderIDs),
	})
	return err
}

// PushColumnOrderID appends a column ID to the board's column order list
func (r *boardRepositoryImpl) PushColumnOrderID(ctx context.Context, boardID, columnID uuid.UUID) error {
	board, err := r.FindByID(ctx, boardID)
	if err != nil {
		return err
	}
	order := append([]uuid.UUID(board.ColumnOrderIDs), columnID)
	return r.ReplaceColumnOrder(ctx, boardID, order)
}

// PullColumnOrderID removes a column ID from the board's column order list.
// Removing an absent ID is a no-op.
func (r *boardRepositoryImpl) PullColumnOrderID(ctx context.Context, boardID, columnID uuid.UUID) error {
	board, err := r.FindByID(ctx, boardID)
	if err != nil {
		return err
	}
	order := make([]uuid.UUID, 0, len(board.ColumnOrderIDs))
	for _, id := range board.ColumnOrderIDs {
		if id != columnID {
			order = append(order, id)
		}
	}
	return r.ReplaceColumnOrder(ctx, boardID, order)
}

// Delete removes a board row
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Board{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// PurgeDestroyedBefore permanently deletes boards destroyed before cutoff
func (r *boardRepositoryImpl) PurgeDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("destroyed = ? AND destroyed_at < ?", true, cutoff).
		Delete(&domain.Board{})
	return result.RowsAffected, result.Error
}
