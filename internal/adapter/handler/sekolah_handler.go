package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/usecase/sekolah"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

// SekolahHandler handles school requests
type SekolahHandler struct {
	sekolahUseCase sekolah.UseCase
}

// NewSekolahHandler creates a new sekolah handler
func NewSekolahHandler(sekolahUseCase sekolah.UseCase) *SekolahHandler {
	return &SekolahHandler{sekolahUseCase: sekolahUseCase}
}

// Create godoc
// @Summary Create a sekolah
// @Tags sekolah
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body sekolah.CreateInput true "Create input"
// @Success 201 {object} response.Response{data=entity.Sekolah}
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/sekolah [post]
func (h *SekolahHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input sekolah.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.sekolahUseCase.Create(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, result)
}

// Get godoc
// @Summary Get a sekolah
// @Tags sekolah
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.Sekolah}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/sekolah/{id} [get]
func (h *SekolahHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.sekolahUseCase.Get(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// List godoc
// @Summary List sekolah visible to the caller
// @Tags sekolah
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/sekolah [get]
func (h *SekolahHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	skip, limit := paging(c)

	list, _, err := h.sekolahUseCase.List(c.Request.Context(), p, skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// ListPublic godoc
// @Summary List schools for the public directory
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/public/sekolah [get]
func (h *SekolahHandler) ListPublic(c *gin.Context) {
	skip, limit := paging(c)

	list, err := h.sekolahUseCase.ListPublic(c.Request.Context(), skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// Update godoc
// @Summary Update a sekolah
// @Tags sekolah
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body sekolah.UpdateInput true "Update input"
// @Success 200 {object} response.Response{data=entity.Sekolah}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/sekolah/{id} [put]
func (h *SekolahHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input sekolah.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.sekolahUseCase.Update(c.Request.Context(), p, id, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// Delete godoc
// @Summary Delete a sekolah
// @Tags sekolah
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/sekolah/{id} [delete]
func (h *SekolahHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.sekolahUseCase.Delete(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "sekolah deleted"})
}
