package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/repository"
)

// fakeTxRunner satisfies TxRunner without a database: the callback runs
// immediately with a nil handle, which the repository mocks ignore.
type fakeTxRunner struct {
	err error
}

func (f *fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	if f.err != nil {
		return f.err
	}
	return fc(nil)
}

type mockBoardRepository struct {
	CreateFunc               func(ctx context.Context, board *domain.Board) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByUserFunc           func(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Board, int64, error)
	UpdateFunc               func(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Board, error)
	ReplaceColumnOrderFunc   func(ctx context.Context, id uuid.UUID, columnOrderIDs []uuid.UUID) error
	PushColumnOrderIDFunc    func(ctx context.Context, boardID, columnID uuid.UUID) error
	PullColumnOrderIDFunc    func(ctx context.Context, boardID, columnID uuid.UUID) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	PurgeDestroyedBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	return m.CreateFunc(ctx, board)
}

func (m *mockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockBoardRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Board, int64, error) {
	return m.FindByUserFunc(ctx, userID, offset, limit)
}

func (m *mockBoardRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Board, error) {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockBoardRepository) ReplaceColumnOrder(ctx context.Context, id uuid.UUID, columnOrderIDs []uuid.UUID) error {
	return m.ReplaceColumnOrderFunc(ctx, id, columnOrderIDs)
}

func (m *mockBoardRepository) PushColumnOrderID(ctx context.Context, boardID, columnID uuid.UUID) error {
	return m.PushColumnOrderIDFunc(ctx, boardID, columnID)
}

func (m *mockBoardRepository) PullColumnOrderID(ctx context.Context, boardID, columnID uuid.UUID) error {
	return m.PullColumnOrderIDFunc(ctx, boardID, columnID)
}

func (m *mockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockBoardRepository) PurgeDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return m.PurgeDestroyedBeforeFunc(ctx, cutoff)
}

func (m *mockBoardRepository) WithTx(tx *gorm.DB) repository.BoardRepository {
	return m
}

type mockColumnRepository struct {
	CreateFunc               func(ctx context.Context, column *domain.Column) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Column, error)
	FindByBoardIDFunc        func(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)
	UpdateFunc               func(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Column, error)
	ReplaceCardOrderFunc     func(ctx context.Context, id uuid.UUID, cardOrderIDs []uuid.UUID) error
	PushCardOrderIDFunc      func(ctx context.Context, columnID, cardID uuid.UUID) error
	PullCardOrderIDFunc      func(ctx context.Context, columnID, cardID uuid.UUID) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	PurgeDestroyedBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockColumnRepository) Create(ctx context.Context, column *domain.Column) error {
	return m.CreateFunc(ctx, column)
}

func (m *mockColumnRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockColumnRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error) {
	return m.FindByBoardIDFunc(ctx, boardID)
}

func (m *mockColumnRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Column, error) {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockColumnRepository) ReplaceCardOrder(ctx context.Context, id uuid.UUID, cardOrderIDs []uuid.UUID) error {
	return m.ReplaceCardOrderFunc(ctx, id, cardOrderIDs)
}

func (m *mockColumnRepository) PushCardOrderID(ctx context.Context, columnID, cardID uuid.UUID) error {
	return m.PushCardOrderIDFunc(ctx, columnID, cardID)
}

func (m *mockColumnRepository) PullCardOrderID(ctx context.Context, columnID, cardID uuid.UUID) error {
	return m.PullCardOrderIDFunc(ctx, columnID, cardID)
}

func (m *mockColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockColumnRepository) PurgeDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return m.PurgeDestroyedBeforeFunc(ctx, cutoff)
}

func (m *mockColumnRepository) WithTx(tx *gorm.DB) repository.ColumnRepository {
	return m
}

type mockCardRepository struct {
	CreateFunc               func(ctx context.Context, card *domain.Card) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	FindByBoardIDFunc        func(ctx context.Context, boardID uuid.UUID) ([]*domain.Card, error)
	UpdateFunc               func(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Card, error)
	PrependCommentFunc       func(ctx context.Context, cardID uuid.UUID, comment domain.Comment) (*domain.Card, error)
	AddMemberFunc            func(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
	RemoveMemberFunc         func(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
	AppendChecklistFunc      func(ctx context.Context, cardID uuid.UUID, checklist domain.Checklist) (*domain.Card, error)
	AddChecklistItemFunc     func(ctx context.Context, cardID, checklistID uuid.UUID, item domain.ChecklistItem) (*domain.Card, error)
	RemoveChecklistFunc      func(ctx context.Context, cardID, checklistID uuid.UUID) (*domain.Card, error)
	SetColumnFunc            func(ctx context.Context, cardID, columnID uuid.UUID) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	DeleteByColumnIDFunc     func(ctx context.Context, columnID uuid.UUID) error
	PurgeDestroyedBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockCardRepository) Create(ctx context.Context, card *domain.Card) error {
	return m.CreateFunc(ctx, card)
}

func (m *mockCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCardRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Card, error) {
	return m.FindByBoardIDFunc(ctx, boardID)
}

func (m *mockCardRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.Card, error) {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockCardRepository) PrependComment(ctx context.Context, cardID uuid.UUID, comment domain.Comment) (*domain.Card, error) {
	return m.PrependCommentFunc(ctx, cardID, comment)
}

func (m *mockCardRepository) AddMember(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	return m.AddMemberFunc(ctx, cardID, userID)
}

func (m *mockCardRepository) RemoveMember(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	return m.RemoveMemberFunc(ctx, cardID, userID)
}

func (m *mockCardRepository) AppendChecklist(ctx context.Context, cardID uuid.UUID, checklist domain.Checklist) (*domain.Card, error) {
	return m.AppendChecklistFunc(ctx, cardID, checklist)
}

func (m *mockCardRepository) AddChecklistItem(ctx context.Context, cardID, checklistID uuid.UUID, item domain.ChecklistItem) (*domain.Card, error) {
	return m.AddChecklistItemFunc(ctx, cardID, checklistID, item)
}

func (m *mockCardRepository) RemoveChecklist(ctx context.Context, cardID, checklistID uuid.UUID) (*domain.Card, error) {
	return m.RemoveChecklistFunc(ctx, cardID, checklistID)
}

func (m *mockCardRepository) SetColumn(ctx context.Context, cardID, columnID uuid.UUID) error {
	return m.SetColumnFunc(ctx, cardID, columnID)
}

func (m *mockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockCardRepository) DeleteByColumnID(ctx context.Context, columnID uuid.UUID) error {
	return m.DeleteByColumnIDFunc(ctx, columnID)
}

func (m *mockCardRepository) PurgeDestroyedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return m.PurgeDestroyedBeforeFunc(ctx, cutoff)
}

func (m *mockCardRepository) WithTx(tx *gorm.DB) repository.CardRepository {
	return m
}

type mockOwnershipValidator struct {
	ValidateCardOwnersFunc func(ctx context.Context, cardID, columnID, boardID, userID uuid.UUID) bool
}

func (m *mockOwnershipValidator) ValidateCardOwners(ctx context.Context, cardID, columnID, boardID, userID uuid.UUID) bool {
	return m.ValidateCardOwnersFunc(ctx, cardID, columnID, boardID, userID)
}
