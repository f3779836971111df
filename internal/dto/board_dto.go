package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard-api/internal/domain"
)

// CreateBoardRequest represents the request to create a new board
type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// LabelPayload is a label definition supplied by the client. ID is optional;
// labels without one get an ID generated on write.
type LabelPayload struct {
	ID    *uuid.UUID `json:"id"`
	Name  string     `json:"name" binding:"required,min=1,max=50"`
	Color string     `json:"color" binding:"required,min=1,max=32"`
}

// UpdateBoardRequest represents a generic board patch. Nil fields are left
// untouched.
type UpdateBoardRequest struct {
	Title       *string         `json:"title" binding:"omitempty,min=3,max=50"`
	Description *string         `json:"description" binding:"omitempty,max=500"`
	MemberIDs   *[]uuid.UUID    `json:"memberIds" binding:"omitempty,dive,uuid4"`
	Labels      *[]LabelPayload `json:"labels" binding:"omitempty,dive"`
	Destroyed   *bool           `json:"_destroy"`
}

// MoveCardRequest moves a card between two columns. The caller supplies the
// full resulting order of both columns; the service trusts the arrays and
// does not recompute them.
type MoveCardRequest struct {
	CurrentCardID    uuid.UUID   `json:"currentCardId" binding:"required"`
	PrevColumnID     uuid.UUID   `json:"prevColumnId" binding:"required"`
	PrevCardOrderIDs []uuid.UUID `json:"prevCardOrderIds" binding:"required"`
	NextColumnID     uuid.UUID   `json:"nextColumnId" binding:"required"`
	NextCardOrderIDs []uuid.UUID `json:"nextCardOrderIds" binding:"required"`
}

// BoardResponse represents a board without its nested columns
type BoardResponse struct {
	ID                 uuid.UUID      `json:"id"`
	Title              string         `json:"title"`
	Slug               string         `json:"slug"`
	Description        string         `json:"description,omitempty"`
	OwnerID            uuid.UUID      `json:"ownerId"`
	MemberIDs          []uuid.UUID    `json:"memberIds"`
	ColumnOrderIDs     []uuid.UUID    `json:"columnOrderIds"`
	Labels             []domain.Label `json:"labels"`
	BackgroundImageURL string         `json:"backgroundImageUrl,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// ColumnWithCards is a column with its cards nested in display order
type ColumnWithCards struct {
	ColumnResponse
	Cards []CardResponse `json:"cards"`
}

// BoardDetailResponse is the aggregated board view: the board plus its
// columns in declared order, each carrying its own cards. There is no flat
// card list; cards appear only inside columns.
type BoardDetailResponse struct {
	BoardResponse
	Columns []ColumnWithCards `json:"columns"`
}

// BoardListResponse is a page of boards visible to a user
type BoardListResponse struct {
	Boards       []BoardResponse `json:"boards"`
	Page         int             `json:"page"`
	ItemsPerPage int             `json:"itemsPerPage"`
	Total        int64           `json:"total"`
}

// NewBoardResponse converts a domain board into its response form. The
// response owns fresh slices, so callers can never alias stored state.
func NewBoardResponse(board *domain.Board) BoardResponse {
	return BoardResponse{
		ID:                 board.ID,
		Title:              board.Title,
		Slug:               board.Slug,
		Description:        board.Description,
		OwnerID:            board.OwnerID,
		MemberIDs:          append([]uuid.UUID{}, board.MemberIDs...),
		ColumnOrderIDs:     append([]uuid.UUID{}, board.ColumnOrderIDs...),
		Labels:             append([]domain.Label{}, board.Labels...),
		BackgroundImageURL: board.BackgroundImageURL,
		CreatedAt:          board.CreatedAt,
		UpdatedAt:          board.UpdatedAt,
	}
}
