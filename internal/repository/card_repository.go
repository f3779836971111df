package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// CardRepository defines the interface for card data access. Embedded
// sequences (comments, checklists, members) live in jsonb columns, so each
// mutation below is a single row write.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Card, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Card, error)
	PrependComment(ctx context.Context, cardID uuid.UUID, comment domain.Comment) (*domain.Card, error)
	AddMember(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
	RemoveMember(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
	AppendChecklist(ctx context.Context, cardID uuid.UUID, checklist domain.Checklist) (*domain.Card, error)
	AddChecklistItem(ctx context.Context, cardID, checklistID uuid.UUID, item domain.ChecklistItem) (*domain.Card, error)
	RemoveChecklist(ctx context.Context, cardID, checklistID uuid.UUID) (*domain.Card, error)
	SetColumn(ctx context.Context, cardID, columnID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByColumnID(ctx context.Context, columnID uuid.UUID) error
	PurgeDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) CardRepository
}

// cardRepositoryImpl is the GORM implementation of CardRepository
type cardRepositoryImpl struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepositoryImpl{db: db}
}

func (r *cardRepositoryImpl) WithTx(tx *gorm.DB) CardRepository {
	return &cardRepositoryImpl{db: tx}
}

// Create creates a new card
func (r *cardRepositoryImpl) Create(ctx context.Context, card *domain.Card) error {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a card by its ID, excluding destroyed rows
func (r *cardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	var card domain.Card
	if err := r.db.WithContext(ctx).
		Where("id = ? AND destroyed = ?", id, false).
		First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByBoardID returns the live cards of a board in creation order. The
// aggregation path relies on this order being stable.
func (r *cardRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Card, error) {
	var cards []*domain.Card
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND destroyed = ?", boardID, false).
		Order("created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Update merges the given fields into the card and returns the post-update
// row. gorm.ErrRecordNotFound is returned when no live row matches, which is
// how a mutation on a missing card surfaces.
func (r *cardRepositoryImpl) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Card, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Card{}).
		Where("id = ? AND destroyed = ?", id, false).
		Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var card domain.Card
	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// mutateColumn loads the card, lets fn rewrite one of its embedded
// sequences, and writes back the single jsonb column named by field.
func (r *cardRepositoryImpl) mutateColumn(ctx context.Context, cardID uuid.UUID, field string, fn func(*domain.Card) (interface{}, error)) (*domain.Card, error) {
	card, err := r.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	value, err := fn(card)
	if err != nil {
		return nil, err
	}

	return r.Update(ctx, cardID, map[string]interface{}{field: value})
}

// PrependComment inserts the comment at position 0, keeping existing
// comments in place. Newest-first ordering is an invariant of the comments
// sequence.
func (r *cardRepositoryImpl) PrependComment(ctx context.Context, cardID uuid.UUID, comment domain.Comment) (*domain.Card, error) {
	return r.mutateColumn(ctx, cardID, "comments", func(card *domain.Card) (interface{}, error) {
		comments := make([]domain.Comment, 0, len(card.Comments)+1)
		comments = append(comments, comment)
		comments = append(comments, card.Comments...)
		return toJSONSlice(comments), nil
	})
}

// AddMember appends the user to the card's member list. Duplicates are kept;
// the member list is a plain sequence, not a set.
func (r *cardRepositoryImpl) AddMember(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	return r.mutateColumn(ctx, cardID, "member_ids", func(card *domain.Card) (interface{}, error) {
		return toJSONSlice(append([]uuid.UUID(card.MemberIDs), userID)), nil
	})
}

// RemoveMember removes every occurrence of the user from the card's member
// list. Removing an absent user is a no-op.
func (r *cardRepositoryImpl) RemoveMember(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	return r.mutateColumn(ctx, cardID, "member_ids", func(card *domain.Card) (interface{}, error) {
		members := make([]uuid.UUID, 0, len(card.MemberIDs))
		for _, id := range card.MemberIDs {
			if id != userID {
				members = append(members, id)
			}
		}
		return toJSONSlice(members), nil
	})
}

// AppendChecklist adds the checklist to the end of the card's checklist
// sequence
func (r *cardRepositoryImpl) AppendChecklist(ctx context.Context, cardID uuid.UUID, checklist domain.Checklist) (*domain.Card, error) {
	return r.mutateColumn(ctx, cardID, "checklists", func(card *domain.Card) (interface{}, error) {
		return toJSONSlice(append([]domain.Checklist(card.Checklists), checklist)), nil
	})
}

// AddChecklistItem appends the item to the checklist with the given ID.
// ErrChecklistNotFound is returned when the card has no such checklist.
func (r *cardRepositoryImpl) AddChecklistItem(ctx context.Context, cardID, checklistID uuid.UUID, item domain.ChecklistItem) (*domain.Card, error) {
	return r.mutateColumn(ctx, cardID, "checklists", func(card *domain.Card) (interface{}, error) {
		checklists := []domain.Checklist(card.Checklists)
		for i := range checklists {
			if checklists[i].ID == checklistID {
				checklists[i].Items = append(checklists[i].Items, item)
				return toJSONSlice(checklists), nil
			}
		}
		return nil, ErrChecklistNotFound
	})
}

// RemoveChecklist removes the checklist with the given ID. Removing a
// missing checklist is a no-op, making delete idempotent.
func (r *cardRepositoryImpl) RemoveChecklist(ctx context.Context, cardID, checklistID uuid.UUID) (*domain.Card, error) {
	return r.mutateColumn(ctx, cardID, "checklists", func(card *domain.Card) (interface{}, error) {
		checklists := make([]domain.Checklist, 0, len(card.Checklists))
		for _, cl := range card.Checklists {
			if cl.ID != checklistID {
				checklists = append(checklists, cl)
			}
		}
		return toJSONSlice(checklists), nil
	})
}

// SetColumn rewrites the card's owning column reference
func (r *cardRepositoryImpl) SetColumn(ctx context.Context, cardID, columnID uuid.UUID) error {
	_, err := r.Update(ctx, cardID, map[string]interface{}{
		"column_id": columnID,
	})
	return err
}

// Delete removes a card row
func (r *cardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Card{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByColumnID removes all cards of a column
func (r *cardRepositoryImpl) DeleteByColumnID(ctx context.Context, columnID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("column_id = ?", columnID).
		Delete(&domain.Card{}).Error; err != nil {
		return err
	}
	return nil
}

// PurgeDestroyedBefore permanently deletes cards destroyed before cutoff
func (r *cardRepositoryImpl) PurgeDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("destroyed = ? AND destroyed_at < ?", true, cutoff).
		Delete(&domain.Card{})
	return result.RowsAffected, result.Error
}
