package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard-api/internal/domain"
)

// CreateColumnRequest represents the request to create a new column
type CreateColumnRequest struct {
	BoardID uuid.UUID `json:"boardId" binding:"required"`
	Title   string    `json:"title" binding:"required,min=3,max=50"`
}

// UpdateColumnRequest patches a column. CardOrderIDs replaces the full order
// list, which is how same-column card reordering works.
type UpdateColumnRequest struct {
	Title        *string      `json:"title" binding:"omitempty,min=3,max=50"`
	CardOrderIDs *[]uuid.UUID `json:"cardOrderIds"`
	Destroyed    *bool        `json:"_destroy"`
}

// ColumnResponse represents a column without nested cards
type ColumnResponse struct {
	ID           uuid.UUID   `json:"id"`
	BoardID      uuid.UUID   `json:"boardId"`
	Title        string      `json:"title"`
	CardOrderIDs []uuid.UUID `json:"cardOrderIds"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// NewColumnResponse converts a domain column into its response form
func NewColumnResponse(column *domain.Column) ColumnResponse {
	return ColumnResponse{
		ID:           column.ID,
		BoardID:      column.BoardID,
		Title:        column.Title,
		CardOrderIDs: append([]uuid.UUID{}, column.CardOrderIDs...),
		CreatedAt:    column.CreatedAt,
		UpdatedAt:    column.UpdatedAt,
	}
}
