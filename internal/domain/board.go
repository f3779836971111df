package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Label is a color tag defined at board level and referenced by cards.
type Label struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// Board is the top-level container of columns. Column display order lives in
// ColumnOrderIDs; every entry must reference a column whose BoardID is this
// board's ID. Member lists and labels are embedded as jsonb, mirroring the
// document they form from the client's point of view.
type Board struct {
	BaseModel
	Title              string                         `gorm:"type:varchar(255);not null" json:"title"`
	Slug               string                         `gorm:"type:varchar(255);not null;index:idx_boards_slug" json:"slug"`
	Description        string                         `gorm:"type:text" json:"description"`
	OwnerID            uuid.UUID                      `gorm:"type:uuid;not null;index:idx_boards_owner_id" json:"ownerId"`
	MemberIDs          datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb" json:"memberIds"`
	ColumnOrderIDs     datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb" json:"columnOrderIds"`
	Labels             datatypes.JSONSlice[Label]     `gorm:"type:jsonb" json:"labels"`
	BackgroundImageURL string                         `gorm:"type:text" json:"backgroundImageUrl"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// HasMember reports whether the user owns the board or appears in its member
// list.
func (b *Board) HasMember(userID uuid.UUID) bool {
	if b.OwnerID == userID {
		return true
	}
	for _, id := range b.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
