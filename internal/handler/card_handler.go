package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type CardHandler struct {
	cardService service.CardService
	logger      *zap.Logger
}

func NewCardHandler(cardService service.CardService, logger *zap.Logger) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		logger:      logger,
	}
}

// CreateCard godoc
// @Summary      Create card
// @Description  Creates a card in a column and appends it to the column's card order
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCardRequest true "Card creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.CardResponse} "Card created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Column not found"
// @Router       /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, card)
}

// UpdateCard godoc
// @Summary      Update card
// @Description  Applies one update mode: comment prepend, member add/remove, or field patch
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.UpdateCardRequest true "Card update request"
// @Success      200 {object} response.SuccessResponse{data=dto.CardResponse} "Updated card"
// @Failure      400 {object} response.ErrorResponse "Invalid or mixed-mode request"
// @Failure      404 {object} response.ErrorResponse "Card not found"
// @Router       /cards/{cardId} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), user, cardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// UpdateCardCover godoc
// @Summary      Update card cover
// @Description  Uploads a cover image and stores its URL on the card
// @Tags         cards
// @Accept       multipart/form-data
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Param        image formData file true "Cover image"
// @Success      200 {object} response.SuccessResponse{data=dto.CardResponse} "Updated card"
// @Failure      400 {object} response.ErrorResponse "Missing or invalid image"
// @Failure      404 {object} response.ErrorResponse "Card not found"
// @Router       /cards/{cardId}/cover [put]
func (h *CardHandler) UpdateCardCover(c *gin.Context) {
	cardID, ok := parseIDParam(c, "cardId")
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

	card, err := h.cardService.UpdateCardCover(
		c.Request.Context(),
		cardID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// DeleteCard godoc
// @Summary      Delete card
// @Description  Removes the card and unregisters it from its column's card order
// @Tags         cards
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Card deleted"
// @Failure      404 {object} response.ErrorResponse "Card not found"
// @Router       /cards/{cardId} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	cardID, ok := parseIDParam(c, "cardId")
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), cardID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Card deleted successfully"})
}

// CreateChecklist godoc
// @Summary      Create checklist
// @Description  Appends an empty checklist to the card
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.CreateChecklistRequest true "Checklist creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.CardResponse} "Updated card"
// @Failure      403 {object} response.ErrorResponse "No access to this card"
// @Failure      404 {object} response.ErrorResponse "Card not found"
// @Router       /cards/{cardId}/checklists [post]
func (h *CardHandler) CreateChecklist(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	card, err := h.cardService.CreateChecklist(c.Request.Context(), user, cardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, card)
}

// AddChecklistItem godoc
// @Summary      Add checklist item
// @Description  Appends an unchecked item to the named checklist
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Param        checklistId path string true "Checklist ID (UUID)"
// @Param        request body dto.AddChecklistItemRequest true "Checklist item request"
// @Success      201 {object} response.SuccessResponse{data=dto.CardResponse} "Updated card"
// @Failure      403 {object} response.ErrorResponse "No access to this card"
// @Failure      404 {object} response.ErrorResponse "Card or checklist not found"
// @Router       /cards/{cardId}/checklists/{checklistId}/items [post]
func (h *CardHandler) AddChecklistItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "cardId")
	if !ok {
		return
	}
	checklistID, ok := parseIDParam(c, "checklistId")
	if !ok {
		return
	}

	var req dto.AddChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	card, err := h.cardService.AddChecklistItem(c.Request.Context(), user, cardID, checklistID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, card)
}

// DeleteChecklist godoc
// @Summary      Delete checklist
// @Description  Removes the named checklist; deleting an absent checklist succeeds
// @Tags         checklists
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Param        checklistId path string true "Checklist ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CardResponse} "Updated card"
// @Failure      403 {object} response.ErrorResponse "No access to this card"
// @Failure      404 {object} response.ErrorResponse "Card not found"
// @Router       /cards/{cardId}/checklists/{checklistId} [delete]
func (h *CardHandler) DeleteChecklist(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "cardId")
	if !ok {
		return
	}
	checklistID, ok := parseIDParam(c, "checklistId")
	if !ok {
		return
	}

	card, err := h.cardService.DeleteChecklist(c.Request.Context(), user, cardID, checklistID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}
