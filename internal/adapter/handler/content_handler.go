package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/usecase/content"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

// ContentHandler handles announcement and news requests
type ContentHandler struct {
	contentUseCase content.UseCase
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentUseCase content.UseCase) *ContentHandler {
	return &ContentHandler{contentUseCase: contentUseCase}
}

// CreatePengumuman godoc
// @Summary Create an announcement
// @Tags pengumuman
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body content.PengumumanInput true "Pengumuman input"
// @Success 201 {object} response.Response{data=entity.Pengumuman}
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/pengumuman [post]
func (h *ContentHandler) CreatePengumuman(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input content.PengumumanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.contentUseCase.CreatePengumuman(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, result)
}

// GetPengumuman godoc
// @Summary Get an announcement
// @Tags pengumuman
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.Pengumuman}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/pengumuman/{id} [get]
func (h *ContentHandler) GetPengumuman(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.contentUseCase.GetPengumuman(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// ListPengumuman godoc
// @Summary List announcements visible to the caller
// @Tags pengumuman
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/pengumuman [get]
func (h *ContentHandler) ListPengumuman(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	skip, limit := paging(c)

	list, err := h.contentUseCase.ListPengumuman(c.Request.Context(), p, skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// PublicListPengumuman godoc
// @Summary List published announcements
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/public/pengumuman [get]
func (h *ContentHandler) PublicListPengumuman(c *gin.Context) {
	skip, limit := paging(c)

	list, err := h.contentUseCase.ListPublishedPengumuman(c.Request.Context(), skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// UpdatePengumuman godoc
// @Summary Update an announcement
// @Tags pengumuman
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body content.PengumumanUpdateInput true "Pengumuman update input"
// @Success 200 {object} response.Response{data=entity.Pengumuman}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/pengumuman/{id} [put]
func (h *ContentHandler) UpdatePengumuman(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input content.PengumumanUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.contentUseCase.UpdatePengumuman(c.Request.Context(), p, id, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// DeletePengumuman godoc
// @Summary Delete an announcement
// @Tags pengumuman
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/pengumuman/{id} [delete]
func (h *ContentHandler) DeletePengumuman(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contentUseCase.DeletePengumuman(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "pengumuman deleted"})
}

// CreateBerita godoc
// @Summary Create a news article
// @Tags berita
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body content.BeritaInput true "Berita input"
// @Success 201 {object} response.Response{data=entity.Berita}
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/berita [post]
func (h *ContentHandler) CreateBerita(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input content.BeritaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.contentUseCase.CreateBerita(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, result)
}

// GetBerita godoc
// @Summary Get a news article
// @Tags berita
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.Berita}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/berita/{id} [get]
func (h *ContentHandler) GetBerita(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.contentUseCase.GetBerita(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// PublicGetBeritaBySlug godoc
// @Summary Get a published news article by slug
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=entity.Berita}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/public/berita/{slug} [get]
func (h *ContentHandler) PublicGetBeritaBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "missing slug")
		return
	}

	result, err := h.contentUseCase.GetBeritaBySlug(c.Request.Context(), slug)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// ListBerita godoc
// @Summary List news articles visible to the caller
// @Tags berita
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/berita [get]
func (h *ContentHandler) ListBerita(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	skip, limit := paging(c)

	list, err := h.contentUseCase.ListBerita(c.Request.Context(), p, skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// PublicListBerita godoc
// @Summary List published news articles
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/public/berita [get]
func (h *ContentHandler) PublicListBerita(c *gin.Context) {
	skip, limit := paging(c)

	list, err := h.contentUseCase.ListPublishedBerita(c.Request.Context(), skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// UpdateBerita godoc
// @Summary Update a news article
// @Tags berita
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body content.BeritaUpdateInput true "Berita update input"
// @Success 200 {object} response.Response{data=entity.Berita}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/berita/{id} [put]
func (h *ContentHandler) UpdateBerita(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input content.BeritaUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.contentUseCase.UpdateBerita(c.Request.Context(), p, id, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBerita godoc
// @Summary Delete a news article
// @Tags berita
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/berita/{id} [delete]
func (h *ContentHandler) DeleteBerita(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contentUseCase.DeleteBerita(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "berita deleted"})
}
