package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
	logger       *zap.Logger
}

func NewBoardHandler(boardService service.BoardService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// CreateBoard godoc
// @Summary      Create board
// @Description  Creates a board owned by the authenticated user
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse} "Board created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), user.ID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// GetBoards godoc
// @Summary      List boards
// @Description  Returns a page of boards the authenticated user owns or is a member of
// @Tags         boards
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        itemsPerPage query int false "Page size"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardListResponse} "Board list"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Router       /boards [get]
func (h *BoardHandler) GetBoards(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	itemsPerPage, _ := strconv.Atoi(c.DefaultQuery("itemsPerPage", "12"))

	boards, err := h.boardService.GetBoards(c.Request.Context(), user.ID, page, itemsPerPage)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// GetBoardDetails godoc
// @Summary      Get board details
// @Description  Returns the board with its columns in declared order, each carrying its cards
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardDetailResponse} "Aggregated board"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoardDetails(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	detail, err := h.boardService.GetBoardDetails(c.Request.Context(), user.ID, boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, detail)
}

// UpdateBoard godoc
// @Summary      Update board
// @Description  Merges the given fields into the board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.UpdateBoardRequest true "Board update request"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "Updated board"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /boards/{boardId} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// UpdateBoardBackground godoc
// @Summary      Update board background
// @Description  Uploads a background image and stores its URL on the board
// @Tags         boards
// @Accept       multipart/form-data
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        image formData file true "Background image"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "Updated board"
// @Failure      400 {object} response.ErrorResponse "Missing or invalid image"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /boards/{boardId}/background [put]
func (h *BoardHandler) UpdateBoardBackground(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "image file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	board, err := h.boardService.UpdateBoardBackground(
		c.Request.Context(),
		boardID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// MoveCard godoc
// @Summary      Move card between columns
// @Description  Rewrites both column order lists and the card's owning column in one transaction
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.MoveCardRequest true "Card move request"
// @Success      200 {object} response.SuccessResponse "Card moved"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Column or card not found"
// @Router       /boards/{boardId}/move-card [put]
func (h *BoardHandler) MoveCard(c *gin.Context) {
	if _, ok := parseIDParam(c, "boardId"); !ok {
		return
	}

	var req dto.MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.boardService.MoveCardToColumn(c.Request.Context(), &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Card moved successfully"})
}

// DeleteBoard godoc
// @Summary      Delete board
// @Description  Removes the board with all of its columns and cards
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Board deleted"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), user.ID, boardID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Board deleted successfully"})
}
