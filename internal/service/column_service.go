package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// ColumnService defines the interface for column business logic
type ColumnService interface {
	CreateColumn(ctx context.Context, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	UpdateColumn(ctx context.Context, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error)
	DeleteColumn(ctx context.Context, columnID uuid.UUID) error
}

// columnServiceImpl is the implementation of ColumnService
type columnServiceImpl struct {
	db         TxRunner
	boardRepo  repository.BoardRepository
	columnRepo repository.ColumnRepository
	cardRepo   repository.CardRepository
	cache      *BoardCache
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewColumnService creates a new instance of ColumnService
func NewColumnService(
	db TxRunner,
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	cardRepo repository.CardRepository,
	cache *BoardCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) ColumnService {
	return &columnServiceImpl{
		db:         db,
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		cache:      cache,
		metrics:    m,
		logger:     logger,
	}
}

// CreateColumn creates a column on an existing board and appends its ID to
// the board's column order list
func (s *columnServiceImpl) CreateColumn(ctx context.Context, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	if _, err := s.boardRepo.FindByID(ctx, req.BoardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	column := &domain.Column{
		BoardID: req.BoardID,
		Title:   req.Title,
	}
	if err := s.columnRepo.Create(ctx, column); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create column", err.Error())
	}

	if err := s.boardRepo.PushColumnOrderID(ctx, req.BoardID, column.ID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register column on board", err.Error())
	}

	s.metrics.IncrementColumnCreated()
	s.cache.Invalidate(ctx, req.BoardID)

	resp := dto.NewColumnResponse(column)
	return &resp, nil
}

// UpdateColumn merges the patch into the column. Replacing CardOrderIDs is
// how cards are reordered within a single column.
func (s *columnServiceImpl) UpdateColumn(ctx context.Context, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	patch := map[string]interface{}{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.CardOrderIDs != nil {
		patch["card_order_ids"] = datatypes.NewJSONSlice(*req.CardOrderIDs)
	}
	if req.Destroyed != nil {
		patch["destroyed"] = *req.Destroyed
		if *req.Destroyed {
			patch["destroyed_at"] = time.Now().UTC()
		} else {
			patch["destroyed_at"] = nil
		}
	}
	if len(patch) == 0 {
		return nil, response.NewAppError(response.ErrCodeValidation, "Update requires at least one field", "")
	}

	column, err := s.columnRepo.Update(ctx, columnID, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update column", err.Error())
	}

	s.cache.Invalidate(ctx, column.BoardID)

	resp := dto.NewColumnResponse(column)
	return &resp, nil
}

// DeleteColumn removes the column, its cards, and its entry in the board's
// column order list, all in one transaction
func (s *columnServiceImpl) DeleteColumn(ctx context.Context, columnID uuid.UUID) error {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch column", err.Error())
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.cardRepo.WithTx(tx).DeleteByColumnID(ctx, columnID); err != nil {
			return err
		}
		if err := s.columnRepo.WithTx(tx).Delete(ctx, columnID); err != nil {
			return err
		}
		return s.boardRepo.WithTx(tx).PullColumnOrderID(ctx, column.BoardID, columnID)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete column", err.Error())
	}

	s.cache.Invalidate(ctx, column.BoardID)

	return nil
}
