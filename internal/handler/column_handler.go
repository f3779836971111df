package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type ColumnHandler struct {
	columnService service.ColumnService
	logger        *zap.Logger
}

func NewColumnHandler(columnService service.ColumnService, logger *zap.Logger) *ColumnHandler {
	return &ColumnHandler{
		columnService: columnService,
		logger:        logger,
	}
}

// CreateColumn godoc
// @Summary      Create column
// @Description  Creates a column on a board and appends it to the board's column order
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateColumnRequest true "Column creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.ColumnResponse} "Column created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /columns [post]
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.CreateColumn(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, column)
}

// UpdateColumn godoc
// @Summary      Update column
// @Description  Merges the given fields into the column; replacing cardOrderIds reorders its cards
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.UpdateColumnRequest true "Column update request"
// @Success      200 {object} response.SuccessResponse{data=dto.ColumnResponse} "Updated column"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Column not found"
// @Router       /columns/{columnId} [put]
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	columnID, ok := parseIDParam(c, "columnId")
	if !ok {
		return
	}

	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.UpdateColumn(c.Request.Context(), columnID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, column)
}

// DeleteColumn godoc
// @Summary      Delete column
// @Description  Removes the column with its cards and unregisters it from the board
// @Tags         columns
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Column deleted"
// @Failure      404 {object} response.ErrorResponse "Column not found"
// @Router       /columns/{columnId} [delete]
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	columnID, ok := parseIDParam(c, "columnId")
	if !ok {
		return
	}

	if err := h.columnService.DeleteColumn(c.Request.Context(), columnID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Column deleted successfully"})
}
