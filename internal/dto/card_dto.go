package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard-api/internal/domain"
)

// MemberAction selects what a member update does to a card
type MemberAction string

const (
	MemberActionAdd    MemberAction = "ADD"
	MemberActionRemove MemberAction = "REMOVE"
)

// CreateCardRequest represents the request to create a new card
type CreateCardRequest struct {
	BoardID  uuid.UUID `json:"boardId" binding:"required"`
	ColumnID uuid.UUID `json:"columnId" binding:"required"`
	Title    string    `json:"title" binding:"required,min=3,max=50"`
}

// CommentPayload carries a new comment's content. Author identity and email
// come from the authenticated user, never from the body.
type CommentPayload struct {
	Content         string `json:"content" binding:"required,min=1"`
	UserDisplayName string `json:"userDisplayName" binding:"omitempty,max=100"`
	UserAvatar      string `json:"userAvatar" binding:"omitempty,url"`
}

// MemberUpdate adds or removes one member on a card
type MemberUpdate struct {
	UserID uuid.UUID    `json:"userId" binding:"required"`
	Action MemberAction `json:"action" binding:"required,oneof=ADD REMOVE"`
}

// UpdateCardRequest is a tagged card update: a comment prepend, a member
// toggle, or a generic field patch. Exactly one mode may be populated per
// request; supplying several is rejected instead of silently picking one.
// Cover replacement has its own multipart endpoint.
type UpdateCardRequest struct {
	Title            *string         `json:"title" binding:"omitempty,min=3,max=50"`
	Description      *string         `json:"description"`
	SelectedLabelIDs *[]uuid.UUID    `json:"selectedLabelIds"`
	Destroyed        *bool           `json:"_destroy"`
	CommentToAdd     *CommentPayload `json:"commentToAdd"`
	MemberUpdate     *MemberUpdate   `json:"incomingMemberInfo"`
}

// HasFieldPatch reports whether any generic patch field is set
func (r *UpdateCardRequest) HasFieldPatch() bool {
	return r.Title != nil || r.Description != nil || r.SelectedLabelIDs != nil || r.Destroyed != nil
}

// ModeCount counts how many of the mutually exclusive update modes the
// request populates
func (r *UpdateCardRequest) ModeCount() int {
	count := 0
	if r.CommentToAdd != nil {
		count++
	}
	if r.MemberUpdate != nil {
		count++
	}
	if r.HasFieldPatch() {
		count++
	}
	return count
}

// CreateChecklistRequest represents the request to add a checklist to a card
type CreateChecklistRequest struct {
	Title string `json:"title" binding:"required,min=1,max=100"`
}

// AddChecklistItemRequest represents the request to add an item to a
// checklist
type AddChecklistItemRequest struct {
	Text string `json:"text" binding:"required,min=1,max=500"`
}

// CardResponse represents a card with its embedded sequences
type CardResponse struct {
	ID               uuid.UUID          `json:"id"`
	BoardID          uuid.UUID          `json:"boardId"`
	ColumnID         uuid.UUID          `json:"columnId"`
	Title            string             `json:"title"`
	Description      string             `json:"description,omitempty"`
	CoverURL         string             `json:"cover,omitempty"`
	MemberIDs        []uuid.UUID        `json:"memberIds"`
	Comments         []domain.Comment   `json:"comments"`
	Checklists       []domain.Checklist `json:"checklists"`
	SelectedLabelIDs []uuid.UUID        `json:"selectedLabelIds"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// NewCardResponse converts a domain card into its response form. Slices are
// copied so the response never aliases stored state.
func NewCardResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:               card.ID,
		BoardID:          card.BoardID,
		ColumnID:         card.ColumnID,
		Title:            card.Title,
		Description:      card.Description,
		CoverURL:         card.CoverURL,
		MemberIDs:        append([]uuid.UUID{}, card.MemberIDs...),
		Comments:         append([]domain.Comment{}, card.Comments...),
		Checklists:       copyChecklists(card.Checklists),
		SelectedLabelIDs: append([]uuid.UUID{}, card.SelectedLabelIDs...),
		CreatedAt:        card.CreatedAt,
		UpdatedAt:        card.UpdatedAt,
	}
}

func copyChecklists(checklists []domain.Checklist) []domain.Checklist {
	out := make([]domain.Checklist, len(checklists))
	for i, cl := range checklists {
		out[i] = domain.Checklist{
			ID:    cl.ID,
			Title: cl.Title,
			Items: append([]domain.ChecklistItem{}, cl.Items...),
		}
	}
	return out
}
