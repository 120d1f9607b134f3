package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/infrastructure/middleware"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// principal retrieves the resolved caller from context; a missing principal
// means the route was registered outside the auth middleware.
func principal(c *gin.Context) (access.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
	}
	return p, ok
}

// pathID parses the :id path parameter
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// paging parses skip/limit query parameters with sane bounds
func paging(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// handleError converts app errors to HTTP responses
func handleError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch {
		case apperrors.IsNotFound(appErr.Err):
			response.NotFound(c, appErr.Message)
		case apperrors.IsAlreadyExists(appErr.Err):
			response.Conflict(c, appErr.Message)
		case apperrors.IsInactiveAccount(appErr.Err):
			response.Unauthorized(c, appErr.Message)
		case apperrors.IsUnauthorized(appErr.Err):
			response.Unauthorized(c, appErr.Message)
		case apperrors.IsSelfDeletion(appErr.Err):
			response.Forbidden(c, appErr.Message)
		case apperrors.IsForbidden(appErr.Err):
			response.Forbidden(c, appErr.Message)
		case apperrors.IsValidation(appErr.Err):
			response.ValidationError(c, appErr.Message)
		default:
			response.InternalError(c, appErr.Message)
		}
		return
	}
	response.InternalError(c, "internal server error")
}
