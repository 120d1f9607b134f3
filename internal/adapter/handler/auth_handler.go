package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/usecase/auth"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authUseCase auth.UseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUseCase auth.UseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// Register godoc
// @Summary Register a new siswa account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.RegisterInput true "Register input"
// @Success 201 {object} response.Response{data=auth.AuthOutput}
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input auth.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.authUseCase.Register(c.Request.Context(), &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, output)
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.LoginInput true "Login input"
// @Success 200 {object} response.Response{data=auth.AuthOutput}
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input auth.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, output)
}

// Me godoc
// @Summary Get current account
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.UserResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	userResp, err := h.authUseCase.Me(c.Request.Context(), p.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, userResp)
}

// ChangePassword godoc
// @Summary Change own password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body auth.ChangePasswordInput true "Password change input"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input auth.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authUseCase.ChangePassword(c.Request.Context(), p.UserID, &input); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "password changed successfully"})
}
