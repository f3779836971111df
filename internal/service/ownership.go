package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard-api/internal/repository"
)

// AuthUser is the identity the auth middleware decoded from the request
// token. Email and display name are carried so comment authorship can be
// snapshotted at write time.
type AuthUser struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
}

// OwnershipValidator decides whether a user may mutate a card's
// substructures (checklists, comments). It answers false rather than
// erroring when any structural link is broken or the user is not a board
// member; callers translate false into a forbidden failure.
type OwnershipValidator interface {
	ValidateCardOwners(ctx context.Context, cardID, columnID, boardID, userID uuid.UUID) bool
}

type ownershipValidatorImpl struct {
	boardRepo  repository.BoardRepository
	columnRepo repository.ColumnRepository
	cardRepo   repository.CardRepository
	logger     *zap.Logger
}

// NewOwnershipValidator creates a new instance of OwnershipValidator
func NewOwnershipValidator(
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	cardRepo repository.CardRepository,
	logger *zap.Logger,
) OwnershipValidator {
	return &ownershipValidatorImpl{
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		logger:     logger,
	}
}

// ValidateCardOwners confirms card -> column -> board containment and board
// membership of the user. Read-only; no side effects.
func (v *ownershipValidatorImpl) ValidateCardOwners(ctx context.Context, cardID, columnID, boardID, userID uuid.UUID) bool {
	card, err := v.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return false
	}
	if card.ColumnID != columnID || card.BoardID != boardID {
		v.logger.Debug("card ownership mismatch",
			zap.String("card_id", cardID.String()),
			zap.String("column_id", columnID.String()),
			zap.String("board_id", boardID.String()),
		)
		return false
	}

	column, err := v.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return false
	}
	if column.BoardID != boardID {
		return false
	}

	board, err := v.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return false
	}
	return board.HasMember(userID)
}
