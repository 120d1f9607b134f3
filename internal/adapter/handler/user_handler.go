package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/usecase/user"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

// UserHandler handles user administration requests
type UserHandler struct {
	userUseCase user.UseCase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase user.UseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// Create godoc
// @Summary Create a user account
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body user.CreateInput true "Create input"
// @Success 201 {object} response.Response{data=entity.UserResponse}
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input user.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userResp, err := h.userUseCase.Create(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, userResp)
}

// Get godoc
// @Summary Get a user account
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.UserResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	userResp, err := h.userUseCase.GetByID(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, userResp)
}

// List godoc
// @Summary List user accounts
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	skip, limit := paging(c)

	users, _, err := h.userUseCase.List(c.Request.Context(), p, skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, users, skip, limit)
}

// Update godoc
// @Summary Update a user account
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body user.UpdateInput true "Update input"
// @Success 200 {object} response.Response{data=entity.UserResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input user.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userResp, err := h.userUseCase.Update(c.Request.Context(), p, id, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, userResp)
}

// Delete godoc
// @Summary Delete a user account
// @Tags users
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "user deleted"})
}
