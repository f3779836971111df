package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard-api/internal/middleware"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// currentUser reads the identity the auth middleware stored on the context.
// When the user ID is missing the request was routed past the middleware by
// mistake; respond 401 and report false.
func currentUser(c *gin.Context) (service.AuthUser, bool) {
	raw, exists := c.Get(middleware.ContextUserID)
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return service.AuthUser{}, false
	}
	userID, ok := raw.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return service.AuthUser{}, false
	}

	user := service.AuthUser{ID: userID}
	if email, ok := c.Get(middleware.ContextUserEmail); ok {
		user.Email, _ = email.(string)
	}
	if name, ok := c.Get(middleware.ContextUserName); ok {
		user.DisplayName, _ = name.(string)
	}
	return user, true
}

// parseIDParam parses a UUID path parameter, responding 400 on malformed
// input
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
