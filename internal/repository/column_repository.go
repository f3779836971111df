package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// ColumnRepository defines the interface for column data access
type ColumnRepository interface {
	Create(ctx context.Context, column *domain.Column) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Column, error)
	ReplaceCardOrder(ctx context.Context, id uuid.UUID, cardOrderIDs []uuid.UUID) error
	PushCardOrderID(ctx context.Context, columnID, cardID uuid.UUID) error
	PullCardOrderID(ctx context.Context, columnID, cardID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	PurgeDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) ColumnRepository
}

// columnRepositoryImpl is the GORM implementation of ColumnRepository
type columnRepositoryImpl struct {
	db *gorm.DB
}

// NewColumnRepository creates a new instance of ColumnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepositoryImpl{db: db}
}

func (r *columnRepositoryImpl) WithTx(tx *gorm.DB) ColumnRepository {
	return &columnRepositoryImpl{db: tx}
}

// Create creates a new column
func (r *columnRepositoryImpl) Create(ctx context.Context, column *domain.Column) error {
	if column.ID == uuid.Nil {
		column.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(column).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a column by its ID, excluding destroyed rows
func (r *columnRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	var column domain.Column
	if err := r.db.WithContext(ctx).
		Where("id = ? AND destroyed = ?", id, false).
		First(&column).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

// FindByBoardID returns the live columns of a board in creation order
func (r *columnRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error) {
	var columns []*domain.Column
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND destroyed = ?", boardID, false).
		Order("created_at ASC").
		Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// Update merges the given fields into the column and returns the post-update
// row. gorm.ErrRecordNotFound is returned when no live row matches.
func (r *columnRepositoryImpl) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Column, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Column{}).
		Where("id = ? AND destroyed = ?", id, false).
		Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var column domain.Column
	if err := r.db.WithContext(ctx).First(&column, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

// ReplaceCardOrder overwrites the column's card order list with the given
// sequence. The caller is trusted to supply the full intended order.
func (r *columnRepositoryImpl) ReplaceCardOrder(ctx context.Context, id uuid.UUID, cardOrderIDs []uuid.UUID) error {
	_, err := r.Update(ctx, id, map[string]interface{}{
		"card_order_ids": toJSONSlice(cardOrderIDs),
	})
	return err
}

// PushCardOrderID appends a card ID to the column's card order list
func (r *columnRepositoryImpl) PushCardOrderID(ctx context.Context, columnID, cardID uuid.UUID) error {
	column, err := r.FindByID(ctx, columnID)
	if err != nil {
		return err
	}
	order := append([]uuid.UUID(column.CardOrderIDs), cardID)
	return r.ReplaceCardOrder(ctx, columnID, order)
}

// PullCardOrderID removes a card ID from the column's card order list.
// Removing an absent ID is a no-op.
func (r *columnRepositoryImpl) PullCardOrderID(ctx context.Context, columnID, cardID uuid.UUID) error {
	column, err := r.FindByID(ctx, columnID)
	if err != nil {
		return err
	}
	order := make([]uuid.UUID, 0, len(column.CardOrderIDs))
	for _, id := range column.CardOrderIDs {
		if id != cardID {
			order = append(order, id)
		}
	}
	return r.ReplaceCardOrder(ctx, columnID, order)
}

// Delete removes a column row
func (r *columnRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Column{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// PurgeDestroyedBefore permanently deletes columns destroyed before cutoff
func (r *columnRepositoryImpl) PurgeDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("destroyed = ? AND destroyed_at < ?", true, cutoff).
		Delete(&domain.Column{})
	return result.RowsAffected, result.Error
}
