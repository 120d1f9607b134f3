package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/usecase/siswa"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

// SiswaHandler handles student profile requests
type SiswaHandler struct {
	siswaUseCase siswa.UseCase
}

// NewSiswaHandler creates a new siswa handler
func NewSiswaHandler(siswaUseCase siswa.UseCase) *SiswaHandler {
	return &SiswaHandler{siswaUseCase: siswaUseCase}
}

// Me godoc
// @Summary Get own student profile
// @Tags siswa
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.Siswa}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/siswa/me [get]
func (h *SiswaHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	result, err := h.siswaUseCase.Me(c.Request.Context(), p)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateMe godoc
// @Summary Update own student profile
// @Tags siswa
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body siswa.UpdateInput true "Update input"
// @Success 200 {object} response.Response{data=entity.Siswa}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/siswa/me [put]
func (h *SiswaHandler) UpdateMe(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input siswa.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.siswaUseCase.UpdateMe(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// Get godoc
// @Summary Get a student profile
// @Tags siswa
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.Siswa}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/siswa/{id} [get]
func (h *SiswaHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.siswaUseCase.Get(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// List godoc
// @Summary List student profiles visible to the caller
// @Tags siswa
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/siswa [get]
func (h *SiswaHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	skip, limit := paging(c)

	list, _, err := h.siswaUseCase.List(c.Request.Context(), p, skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// Delete godoc
// @Summary Delete a student profile
// @Tags siswa
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/siswa/{id} [delete]
func (h *SiswaHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.siswaUseCase.Delete(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "siswa deleted"})
}
