package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/service"
)

// setupTestRouter builds a bare engine with a stand-in for the auth
// middleware. A nil userID leaves the context unauthenticated.
func setupTestRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(middleware.ContextUserID, userID)
			c.Set(middleware.ContextUserEmail, "tester@example.com")
			c.Set(middleware.ContextUserName, "Tester")
		}
		c.Next()
	})
	return r
}

// MockBoardService is a mock implementation of service.BoardService
type MockBoardService struct {
	CreateBoardFunc           func(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoardsFunc             func(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (*dto.BoardListResponse, error)
	GetBoardDetailsFunc       func(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoardFunc           func(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	UpdateBoardBackgroundFunc func(ctx context.Context, boardID uuid.UUID, fileName, contentType string, body io.Reader) (*dto.BoardResponse, error)
	MoveCardToColumnFunc      func(ctx context.Context, req *dto.MoveCardRequest) error
	DeleteBoardFunc           func(ctx context.Context, userID, boardID uuid.UUID) error
}

func (m *MockBoardService) CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, userID, req)
	}
	return &dto.BoardResponse{}, nil
}

func (m *MockBoardService) GetBoards(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (*dto.BoardListResponse, error) {
	if m.GetBoardsFunc != nil {
		return m.GetBoardsFunc(ctx, userID, page, itemsPerPage)
	}
	return &dto.BoardListResponse{}, nil
}

func (m *MockBoardService) GetBoardDetails(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	if m.GetBoardDetailsFunc != nil {
		return m.GetBoardDetailsFunc(ctx, userID, boardID)
	}
	return &dto.BoardDetailResponse{}, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, boardID, req)
	}
	return &dto.BoardResponse{}, nil
}

func (m *MockBoardService) UpdateBoardBackground(ctx context.Context, boardID uuid.UUID, fileName, contentType string, body io.Reader) (*dto.BoardResponse, error) {
	if m.UpdateBoardBackgroundFunc != nil {
		return m.UpdateBoardBackgroundFunc(ctx, boardID, fileName, contentType, body)
	}
	return &dto.BoardResponse{}, nil
}

func (m *MockBoardService) MoveCardToColumn(ctx context.Context, req *dto.MoveCardRequest) error {
	if m.MoveCardToColumnFunc != nil {
		return m.MoveCardToColumnFunc(ctx, req)
	}
	return nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, userID, boardID)
	}
	return nil
}

// MockColumnService is a mock implementation of service.ColumnService
type MockColumnService struct {
	CreateColumnFunc func(ctx context.Context, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	UpdateColumnFunc func(ctx context.Context, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error)
	DeleteColumnFunc func(ctx context.Context, columnID uuid.UUID) error
}

func (m *MockColumnService) CreateColumn(ctx context.Context, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	if m.CreateColumnFunc != nil {
		return m.CreateColumnFunc(ctx, req)
	}
	return &dto.ColumnResponse{}, nil
}

func (m *MockColumnService) UpdateColumn(ctx context.Context, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	if m.UpdateColumnFunc != nil {
		return m.UpdateColumnFunc(ctx, columnID, req)
	}
	return &dto.ColumnResponse{}, nil
}

func (m *MockColumnService) DeleteColumn(ctx context.Context, columnID uuid.UUID) error {
	if m.DeleteColumnFunc != nil {
		return m.DeleteColumnFunc(ctx, columnID)
	}
	return nil
}

// MockCardService is a mock implementation of service.CardService
type MockCardService struct {
	CreateCardFunc       func(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardResponse, error)
	UpdateCardFunc       func(ctx context.Context, user service.AuthUser, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error)
	UpdateCardCoverFunc  func(ctx context.Context, cardID uuid.UUID, fileName, contentType string, body io.Reader) (*dto.CardResponse, error)
	DeleteCardFunc       func(ctx context.Context, cardID uuid.UUID) error
	CreateChecklistFunc  func(ctx context.Context, user service.AuthUser, cardID uuid.UUID, req *dto.CreateChecklistRequest) (*dto.CardResponse, error)
	AddChecklistItemFunc func(ctx context.Context, user service.AuthUser, cardID, checklistID uuid.UUID, req *dto.AddChecklistItemRequest) (*dto.CardResponse, error)
	DeleteChecklistFunc  func(ctx context.Context, user service.AuthUser, cardID, checklistID uuid.UUID) (*dto.CardResponse, error)
}

func (m *MockCardService) CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	if m.CreateCardFunc != nil {
		return m.CreateCardFunc(ctx, req)
	}
	return &dto.CardResponse{}, nil
}

func (m *MockCardService) UpdateCard(ctx context.Context, user service.AuthUser, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error) {
	if m.UpdateCardFunc != nil {
		return m.UpdateCardFunc(ctx, user, cardID, req)
	}
	return &dto.CardResponse{}, nil
}

func (m *MockCardService) UpdateCardCover(ctx context.Context, cardID uuid.UUID, fileName, contentType string, body io.Reader) (*dto.CardResponse, error) {
	if m.UpdateCardCoverFunc != nil {
		return m.UpdateCardCoverFunc(ctx, cardID, fileName, contentType, body)
	}
	return &dto.CardResponse{}, nil
}

func (m *MockCardService) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	if m.DeleteCardFunc != nil {
		return m.DeleteCardFunc(ctx, cardID)
	}
	return nil
}

func (m *MockCardService) CreateChecklist(ctx context.Context, user service.AuthUser, cardID uuid.UUID, req *dto.CreateChecklistRequest) (*dto.CardResponse, error) {
	if m.CreateChecklistFunc != nil {
		return m.CreateChecklistFunc(ctx, user, cardID, req)
	}
	return &dto.CardResponse{}, nil
}

func (m *MockCardService) AddChecklistItem(ctx context.Context, user service.AuthUser, cardID, checklistID uuid.UUID, req *dto.AddChecklistItemRequest) (*dto.CardResponse, error) {
	if m.AddChecklistItemFunc != nil {
		return m.AddChecklistItemFunc(ctx, user, cardID, checklistID, req)
	}
	return &dto.CardResponse{}, nil
}

func (m *MockCardService) DeleteChecklist(ctx context.Context, user service.AuthUser, cardID, checklistID uuid.UUID) (*dto.CardResponse, error) {
	if m.DeleteChecklistFunc != nil {
		return m.DeleteChecklistFunc(ctx, user, cardID, checklistID)
	}
	return &dto.CardResponse{}, nil
}
