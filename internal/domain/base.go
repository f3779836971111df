package domain

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel contains common fields for all domain entities
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
	// Destroyed marks a row as logically deleted. Read paths filter on it;
	// the purge job removes destroyed rows past the retention window.
	Destroyed   bool       `gorm:"not null;default:false;index" json:"_destroy"`
	DestroyedAt *time.Time `gorm:"index" json:"destroyedAt,omitempty"`
}
