package repository

import (
	"errors"

	"gorm.io/datatypes"
)

// ErrChecklistNotFound is returned when a card exists but has no checklist
// with the requested ID.
var ErrChecklistNotFound = errors.New("checklist not found")

// toJSONSlice wraps a slice for storage in a jsonb column. A nil slice is
// normalized to an empty one so the stored document round-trips as [].
func toJSONSlice[T any](v []T) datatypes.JSONSlice[T] {
	if v == nil {
		v = []T{}
	}
	return datatypes.NewJSONSlice(v)
}
