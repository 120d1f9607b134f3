package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/usecase/dinas"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

// DinasHandler handles district requests
type DinasHandler struct {
	dinasUseCase dinas.UseCase
}

// NewDinasHandler creates a new dinas handler
func NewDinasHandler(dinasUseCase dinas.UseCase) *DinasHandler {
	return &DinasHandler{dinasUseCase: dinasUseCase}
}

// Create godoc
// @Summary Create a dinas
// @Tags dinas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dinas.CreateInput true "Create input"
// @Success 201 {object} response.Response{data=entity.Dinas}
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/dinas [post]
func (h *DinasHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input dinas.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.dinasUseCase.Create(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, result)
}

// Get godoc
// @Summary Get a dinas
// @Tags dinas
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.Dinas}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/dinas/{id} [get]
func (h *DinasHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.dinasUseCase.Get(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// List godoc
// @Summary List dinas
// @Tags dinas
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/dinas [get]
func (h *DinasHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	skip, limit := paging(c)

	list, err := h.dinasUseCase.List(c.Request.Context(), p, skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// Update godoc
// @Summary Update a dinas
// @Tags dinas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dinas.UpdateInput true "Update input"
// @Success 200 {object} response.Response{data=entity.Dinas}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/dinas/{id} [put]
func (h *DinasHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input dinas.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.dinasUseCase.Update(c.Request.Context(), p, id, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// Delete godoc
// @Summary Delete a dinas
// @Tags dinas
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/dinas/{id} [delete]
func (h *DinasHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.dinasUseCase.Delete(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "dinas deleted"})
}
