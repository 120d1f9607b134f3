package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/usecase/pendaftaran"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

// PendaftaranHandler handles admission application requests
type PendaftaranHandler struct {
	pendaftaranUseCase pendaftaran.UseCase
}

// NewPendaftaranHandler creates a new pendaftaran handler
func NewPendaftaranHandler(pendaftaranUseCase pendaftaran.UseCase) *PendaftaranHandler {
	return &PendaftaranHandler{pendaftaranUseCase: pendaftaranUseCase}
}

// Create godoc
// @Summary Create an admission application
// @Tags pendaftaran
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body pendaftaran.CreateInput true "Create input"
// @Success 201 {object} response.Response{data=entity.Pendaftaran}
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/pendaftaran [post]
func (h *PendaftaranHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input pendaftaran.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.pendaftaranUseCase.Create(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, result)
}

// Get godoc
// @Summary Get an admission application
// @Tags pendaftaran
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.Pendaftaran}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/pendaftaran/{id} [get]
func (h *PendaftaranHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.pendaftaranUseCase.Get(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// List godoc
// @Summary List admission applications visible to the caller
// @Tags pendaftaran
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/pendaftaran [get]
func (h *PendaftaranHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	skip, limit := paging(c)

	list, _, err := h.pendaftaranUseCase.List(c.Request.Context(), p, skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// Submit godoc
// @Summary Submit own draft application
// @Tags pendaftaran
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.Pendaftaran}
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/pendaftaran/{id}/submit [post]
func (h *PendaftaranHandler) Submit(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.pendaftaranUseCase.Submit(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateStatus godoc
// @Summary Apply a verification decision to an application
// @Tags pendaftaran
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body pendaftaran.UpdateStatusInput true "Status input"
// @Success 200 {object} response.Response{data=entity.Pendaftaran}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/pendaftaran/{id}/status [put]
func (h *PendaftaranHandler) UpdateStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input pendaftaran.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.pendaftaranUseCase.UpdateStatus(c.Request.Context(), p, id, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// Delete godoc
// @Summary Delete an admission application
// @Tags pendaftaran
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/pendaftaran/{id} [delete]
func (h *PendaftaranHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.pendaftaranUseCase.Delete(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "pendaftaran deleted"})
}
