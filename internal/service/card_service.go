package service

import (
	"context"
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
)

const cardCoverFolder = "card-covers"

// CardService defines the interface for card business logic
type CardService interface {
	CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardResponse, error)
	UpdateCard(ctx context.Context, user AuthUser, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error)
	UpdateCardCover(ctx context.Context, cardID uuid.UUID, fileName, contentType string, body io.Reader) (*dto.CardResponse, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	CreateChecklist(ctx context.Context, user AuthUser, cardID uuid.UUID, req *dto.CreateChecklistRequest) (*dto.CardResponse, error)
	AddChecklistItem(ctx context.Context, user AuthUser, cardID, checklistID uuid.UUID, req *dto.AddChecklistItemRequest) (*dto.CardResponse, error)
	DeleteChecklist(ctx context.Context, user AuthUser, cardID, checklistID uuid.UUID) (*dto.CardResponse, error)
}

// cardServiceImpl is the implementation of CardService
type cardServiceImpl struct {
	boardRepo  repository.BoardRepository
	columnRepo repository.ColumnRepository
	cardRepo   repository.CardRepository
	ownership  OwnershipValidator
	storage    client.ObjectStorage
	cache      *BoardCache
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewCardService creates a new instance of CardService
func NewCardService(
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	cardRepo repository.CardRepository,
	ownership OwnershipValidator,
	storage client.ObjectStorage,
	cache *BoardCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) CardService {
	return &cardServiceImpl{
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		ownership:  ownership,
		storage:    storage,
		cache:      cache,
		metrics:    m,
		logger:     logger,
	}
}

// CreateCard creates a card in a column and appends its ID to the column's
// card order list. The column must exist and belong to the named board.
func (s *cardServiceImpl) CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	column, err := s.columnRepo.FindByID(ctx, req.ColumnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch column", err.Error())
	}
	if column.BoardID != req.BoardID {
		return nil, response.NewAppError(response.ErrCodeValidation, "Column does not belong to the given board", "")
	}

	card := &domain.Card{
		BoardID:  req.BoardID,
		ColumnID: req.ColumnID,
		Title:    req.Title,
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create card", err.Error())
	}

	if err := s.columnRepo.PushCardOrderID(ctx, req.ColumnID, card.ID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register card on column", err.Error())
	}

	s.metrics.IncrementCardCreated()
	s.cache.Invalidate(ctx, req.BoardID)

	resp := dto.NewCardResponse(card)
	return &resp, nil
}

// UpdateCard applies exactly one of the update modes: a comment prepend, a
// member toggle, or a generic field patch. A request populating more than
// one mode is rejected.
func (s *cardServiceImpl) UpdateCard(ctx context.Context, user AuthUser, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error) {
	switch count := req.ModeCount(); {
	case count == 0:
		return nil, response.NewAppError(response.ErrCodeValidation, "Update requires at least one field", "")
	case count > 1:
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment, member, and field updates cannot be combined", "")
	}

	var (
		card *domain.Card
		err  error
	)
	switch {
	case req.CommentToAdd != nil:
		card, err = s.addComment(ctx, user, cardID, req.CommentToAdd)
	case req.MemberUpdate != nil:
		card, err = s.updateMember(ctx, cardID, req.MemberUpdate)
	default:
		card, err = s.applyFieldPatch(ctx, cardID, req)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Card not found", "")
		}
		var appErr *response.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	s.cache.Invalidate(ctx, card.BoardID)

	resp := dto.NewCardResponse(card)
	return &resp, nil
}

// addComment prepends a comment authored by the authenticated user. Identity
// fields are snapshotted at write time; later profile changes do not rewrite
// history.
func (s *cardServiceImpl) addComment(ctx context.Context, user AuthUser, cardID uuid.UUID, payload *dto.CommentPayload) (*domain.Card, error) {
	comment := domain.Comment{
		UserID:          user.ID,
		UserEmail:       user.Email,
		UserDisplayName: payload.UserDisplayName,
		UserAvatar:      payload.UserAvatar,
		Content:         payload.Content,
		CommentedAt:     time.Now().UTC(),
	}
	if comment.UserDisplayName == "" {
		comment.UserDisplayName = user.DisplayName
	}

	card, err := s.cardRepo.PrependComment(ctx, cardID, comment)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementCommentAdded()
	return card, nil
}

func (s *cardServiceImpl) updateMember(ctx context.Context, cardID uuid.UUID, update *dto.MemberUpdate) (*domain.Card, error) {
	switch update.Action {
	case dto.MemberActionAdd:
		return s.cardRepo.AddMember(ctx, cardID, update.UserID)
	case dto.MemberActionRemove:
		return s.cardRepo.RemoveMember(ctx, cardID, update.UserID)
	default:
		return nil, response.NewAppError(response.ErrCodeValidation, "Unknown member action", string(update.Action))
	}
}

func (s *cardServiceImpl) applyFieldPatch(ctx context.Context, cardID uuid.UUID, req *dto.UpdateCardRequest) (*domain.Card, error) {
	patch := map[string]interface{}{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.SelectedLabelIDs != nil {
		patch["selected_label_ids"] = datatypes.NewJSONSlice(*req.SelectedLabelIDs)
	}
	if req.Destroyed != nil {
		patch["destroyed"] = *req.Destroyed
		if *req.Destroyed {
			patch["destroyed_at"] = time.Now().UTC()
		} else {
			patch["destroyed_at"] = nil
		}
	}
	return s.cardRepo.Update(ctx, cardID, patch)
}

// UpdateCardCover uploads the image and stores its hosted URL on the card
func (s *cardServiceImpl) UpdateCardCover(ctx context.Context, cardID uuid.UUID, fileName, contentType string, body io.Reader) (*dto.CardResponse, error) {
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Image storage is not configured", "")
	}

	start := time.Now()
	url, err := s.storage.UploadImage(ctx, cardCoverFolder, fileName, contentType, body)
	if s.metrics != nil {
		s.metrics.RecordStorageUpload(cardCoverFolder, time.Since(start), err)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload cover image", err.Error())
	}

	card, err := s.cardRepo.Update(ctx, cardID, map[string]interface{}{
		"cover_url": url,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Card not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	s.cache.Invalidate(ctx, card.BoardID)

	resp := dto.NewCardResponse(card)
	return &resp, nil
}

// DeleteCard removes the card and pulls its ID from the owning column's
// order list
func (s *cardServiceImpl) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Card not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch card", err.Error())
	}

	if err := s.cardRepo.Delete(ctx, cardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete card", err.Error())
	}
	if err := s.columnRepo.PullCardOrderID(ctx, card.ColumnID, cardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to unregister card from column", err.Error())
	}

	s.cache.Invalidate(ctx, card.BoardID)

	return nil
}

// authorizeCardAccess loads the card and confirms the user may mutate its
// substructures
func (s *cardServiceImpl) authorizeCardAccess(ctx context.Context, user AuthUser, cardID uuid.UUID) (*domain.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Card not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch card", err.Error())
	}
	if !s.ownership.ValidateCardOwners(ctx, card.ID, card.ColumnID, card.BoardID, user.ID) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have access to this card", "")
	}
	return card, nil
}

// CreateChecklist appends an empty checklist with the given title to the card
func (s *cardServiceImpl) CreateChecklist(ctx context.Context, user AuthUser, cardID uuid.UUID, req *dto.CreateChecklistRequest) (*dto.CardResponse, error) {
	card, err := s.authorizeCardAccess(ctx, user, cardID)
	if err != nil {
		return nil, err
	}

	checklist := domain.Checklist{
		ID:    uuid.New(),
		Title: req.Title,
		Items: []domain.ChecklistItem{},
	}
	updated, err := s.cardRepo.AppendChecklist(ctx, cardID, checklist)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create checklist", err.Error())
	}

	s.cache.Invalidate(ctx, card.BoardID)

	resp := dto.NewCardResponse(updated)
	return &resp, nil
}

// AddChecklistItem appends an unchecked item to the named checklist
func (s *cardServiceImpl) AddChecklistItem(ctx context.Context, user AuthUser, cardID, checklistID uuid.UUID, req *dto.AddChecklistItemRequest) (*dto.CardResponse, error) {
	card, err := s.authorizeCardAccess(ctx, user, cardID)
	if err != nil {
		return nil, err
	}

	item := domain.ChecklistItem{
		ID:        uuid.New(),
		Text:      req.Text,
		Completed: false,
		CreatedAt: time.Now().UTC(),
		CreatedBy: user.ID,
	}
	updated, err := s.cardRepo.AddChecklistItem(ctx, cardID, checklistID, item)
	if err != nil {
		if errors.Is(err, repository.ErrChecklistNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Checklist not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add checklist item", err.Error())
	}

	s.cache.Invalidate(ctx, card.BoardID)

	resp := dto.NewCardResponse(updated)
	return &resp, nil
}

// DeleteChecklist removes the named checklist. Deleting a checklist that is
// already gone succeeds, so retries are safe.
func (s *cardServiceImpl) DeleteChecklist(ctx context.Context, user AuthUser, cardID, checklistID uuid.UUID) (*dto.CardResponse, error) {
	card, err := s.authorizeCardAccess(ctx, user, cardID)
	if err != nil {
		return nil, err
	}

	updated, err := s.cardRepo.RemoveChecklist(ctx, cardID, checklistID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to delete checklist", err.Error())
	}

	s.cache.Invalidate(ctx, card.BoardID)

	resp := dto.NewCardResponse(updated)
	return &resp, nil
}
