package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
	"taskboard-api/internal/util"
)

const (
	// Defaults applied when the board list request carries no paging
	DefaultPage         = 1
	DefaultItemsPerPage = 12

	boardBackgroundFolder = "board-backgrounds"
)

// TxRunner runs a function inside a database transaction. *gorm.DB
// satisfies it; tests substitute a pass-through.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoards(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (*dto.BoardListResponse, error)
	GetBoardDetails(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	UpdateBoardBackground(ctx context.Context, boardID uuid.UUID, fileName, contentType string, body io.Reader) (*dto.BoardResponse, error)
	MoveCardToColumn(ctx context.Context, req *dto.MoveCardRequest) error
	DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	db         TxRunner
	boardRepo  repository.BoardRepository
	columnRepo repository.ColumnRepository
	cardRepo   repository.CardRepository
	storage    client.ObjectStorage
	cache      *BoardCache
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	db TxRunner,
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	cardRepo repository.CardRepository,
	storage client.ObjectStorage,
	cache *BoardCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		db:         db,
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		storage:    storage,
		cache:      cache,
		metrics:    m,
		logger:     logger,
	}
}

// CreateBoard creates a new board owned by the user
func (s *boardServiceImpl) CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	board := &domain.Board{
		Title:       req.Title,
		Slug:        util.Slugify(req.Title),
		Description: req.Description,
		OwnerID:     userID,
		MemberIDs:   []uuid.UUID{},
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	s.metrics.IncrementBoardCreated()

	resp := dto.NewBoardResponse(board)
	return &resp, nil
}

// GetBoards returns a page of boards the user owns or is a member of
func (s *boardServiceImpl) GetBoards(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (*dto.BoardListResponse, error) {
	if page < 1 {
		page = DefaultPage
	}
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}

	boards, total, err := s.boardRepo.FindByUser(ctx, userID, (page-1)*itemsPerPage, itemsPerPage)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list boards", err.Error())
	}

	items := make([]dto.BoardResponse, 0, len(boards))
	for _, b := range boards {
		items = append(items, dto.NewBoardResponse(b))
	}

	return &dto.BoardListResponse{
		Boards:       items,
		Page:         page,
		ItemsPerPage: itemsPerPage,
		Total:        total,
	}, nil
}

// GetBoardDetails assembles the full board view: the board plus its columns
// in declared order, each column carrying the cards whose columnId points at
// it, in the order the card fetch returned them. The result is built from
// fresh response structs, so callers never alias stored state.
func (s *boardServiceImpl) GetBoardDetails(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}
	// Invisible boards look identical to missing ones
	if !board.HasMember(userID) {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
	}

	if cached := s.cache.GetDetail(ctx, boardID); cached != nil {
		return cached, nil
	}

	columns, err := s.columnRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch columns", err.Error())
	}
	cards, err := s.cardRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cards", err.Error())
	}

	detail := &dto.BoardDetailResponse{
		BoardResponse: dto.NewBoardResponse(board),
		Columns:       nestCards(board.ColumnOrderIDs, columns, cards),
	}

	s.cache.SetDetail(ctx, boardID, detail)

	return detail, nil
}

// nestCards groups cards under their owning column, walking columns in the
// board's declared order. Columns missing from the order list (the list is
// maintained by convention, not enforced by the store) are appended in
// creation order so nothing silently disappears. Card order within a column
// is the fetch order, untouched.
func nestCards(order []uuid.UUID, columns []*domain.Column, cards []*domain.Card) []dto.ColumnWithCards {
	byID := make(map[uuid.UUID]*domain.Column, len(columns))
	for _, col := range columns {
		byID[col.ID] = col
	}

	ordered := make([]*domain.Column, 0, len(columns))
	seen := make(map[uuid.UUID]bool, len(columns))
	for _, id := range order {
		if col, ok := byID[id]; ok {
			ordered = append(ordered, col)
			seen[id] = true
		}
	}
	for _, col := range columns {
		if !seen[col.ID] {
			ordered = append(ordered, col)
		}
	}

	out := make([]dto.ColumnWithCards, 0, len(ordered))
	for _, col := range ordered {
		nested := dto.ColumnWithCards{
			ColumnResponse: dto.NewColumnResponse(col),
			Cards:          []dto.CardResponse{},
		}
		for _, card := range cards {
			if card.ColumnID == col.ID {
				nested.Cards = append(nested.Cards, dto.NewCardResponse(card))
			}
		}
		out = append(out, nested)
	}
	return out
}

// UpdateBoard merges the patch into the board. Labels supplied without an ID
// get one generated; a title change re-derives the slug.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	patch := map[string]interface{}{}
	if req.Title != nil {
		patch["title"] = *req.Title
		patch["slug"] = util.Slugify(*req.Title)
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.MemberIDs != nil {
		patch["member_ids"] = datatypes.NewJSONSlice(*req.MemberIDs)
	}
	if req.Labels != nil {
		labels := make([]domain.Label, 0, len(*req.Labels))
		for _, l := range *req.Labels {
			id := uuid.New()
			if l.ID != nil {
				id = *l.ID
			}
			labels = append(labels, domain.Label{ID: id, Name: l.Name, Color: l.Color})
		}
		patch["labels"] = datatypes.NewJSONSlice(labels)
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

	board, err := s.boardRepo.Update(ctx, boardID, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
	}

	s.cache.Invalidate(ctx, boardID)

	resp := dto.NewBoardResponse(board)
	return &resp, nil
}

// UpdateBoardBackground uploads the image and stores its URL on the board.
// The upload is awaited before the row write; an upload failure leaves the
// board untouched.
func (s *boardServiceImpl) UpdateBoardBackground(ctx context.Context, boardID uuid.UUID, fileName, contentType string, body io.Reader) (*dto.BoardResponse, error) {
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Image storage is not configured", "")
	}

	start := time.Now()
	url, err := s.storage.UploadImage(ctx, boardBackgroundFolder, fileName, contentType, body)
	if s.metrics != nil {
		s.metrics.RecordStorageUpload(boardBackgroundFolder, time.Since(start), err)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload background image", err.Error())
	}

	board, err := s.boardRepo.Update(ctx, boardID, map[string]interface{}{
		"background_image_url": url,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
	}

	s.cache.Invalidate(ctx, boardID)

	resp := dto.NewBoardResponse(board)
	return &resp, nil
}

// MoveCardToColumn moves a card between columns: the source column's order
// list, the destination's order list, and the card's owning column are
// rewritten inside one transaction, so a failing step rolls the others
// back. The caller-supplied order arrays are trusted as-is.
func (s *boardServiceImpl) MoveCardToColumn(ctx context.Context, req *dto.MoveCardRequest) error {
	var boardID uuid.UUID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		columns := s.columnRepo.WithTx(tx)
		cards := s.cardRepo.WithTx(tx)

		if err := columns.ReplaceCardOrder(ctx, req.PrevColumnID, req.PrevCardOrderIDs); err != nil {
			return err
		}
		if err := columns.ReplaceCardOrder(ctx, req.NextColumnID, req.NextCardOrderIDs); err != nil {
			return err
		}
		card, err := cards.Update(ctx, req.CurrentCardID, map[string]interface{}{
			"column_id": req.NextColumnID,
		})
		if err != nil {
			return err
		}
		boardID = card.BoardID
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Column or card not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to move card", err.Error())
	}

	s.metrics.IncrementCardMoved()
	s.cache.Invalidate(ctx, boardID)

	return nil
}

// DeleteBoard removes the board with its columns and cards. Boards not
// visible to the user report NotFound, same as missing ones.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}
	if !board.HasMember(userID) {
		return response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		boards := s.boardRepo.WithTx(tx)
		columns := s.columnRepo.WithTx(tx)
		cards := s.cardRepo.WithTx(tx)

		cols, err := columns.FindByBoardID(ctx, boardID)
		if err != nil {
			return err
		}
		for _, col := range cols {
			if err := cards.DeleteByColumnID(ctx, col.ID); err != nil {
				return err
			}
			if err := columns.Delete(ctx, col.ID); err != nil {
				return err
			}
		}
		return boards.Delete(ctx, boardID)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.cache.Invalidate(ctx, boardID)

	return nil
}
