package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Comment is an embedded card comment. Author identity, email and display
// name are snapshots taken from the authenticated user at write time.
// Comments are stored newest first.
type Comment struct {
	UserID          uuid.UUID `json:"userId"`
	UserEmail       string    `json:"userEmail"`
	UserDisplayName string    `json:"userDisplayName,omitempty"`
	UserAvatar      string    `json:"userAvatar,omitempty"`
	Content         string    `json:"content"`
	CommentedAt     time.Time `json:"commentedAt"`
}

// ChecklistItem is a single line inside a checklist.
type ChecklistItem struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy uuid.UUID `json:"createdBy"`
}

// Checklist is an embedded card checklist. Checklists keep append order.
type Checklist struct {
	ID    uuid.UUID       `json:"id"`
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

// Card is the atomic work item. BoardID and ColumnID are denormalized
// back-references; comments, checklists, members and selected labels are
// embedded as jsonb so a card mutation stays a single row write.
type Card struct {
	BaseModel
	BoardID          uuid.UUID                      `gorm:"type:uuid;not null;index:idx_cards_board_id" json:"boardId"`
	ColumnID         uuid.UUID                      `gorm:"type:uuid;not null;index:idx_cards_column_id" json:"columnId"`
	Title            string                         `gorm:"type:varchar(255);not null" json:"title"`
	Description      string                         `gorm:"type:text" json:"description"`
	CoverURL         string                         `gorm:"type:text" json:"cover"`
	MemberIDs        datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb" json:"memberIds"`
	Comments         datatypes.JSONSlice[Comment]   `gorm:"type:jsonb" json:"comments"`
	Checklists       datatypes.JSONSlice[Checklist] `gorm:"type:jsonb" json:"checklists"`
	SelectedLabelIDs datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb" json:"selectedLabelIds"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}
