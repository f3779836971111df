package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Column is an ordered container of cards within a board. CardOrderIDs holds
// the display order; consistency between it and each card's ColumnID is
// maintained by the move/delete paths, not by the store.
type Column struct {
	BaseModel
	BoardID      uuid.UUID                      `gorm:"type:uuid;not null;index:idx_columns_board_id" json:"boardId"`
	Title        string                         `gorm:"type:varchar(255);not null" json:"title"`
	CardOrderIDs datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb" json:"cardOrderIds"`
}

// TableName specifies the table name for Column
func (Column) TableName() string {
	return "columns"
}
