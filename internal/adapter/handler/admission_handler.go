package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/usecase/admission"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

// AdmissionHandler handles admission configuration requests: jalur, tahun
// ajaran and kuota. The Public* handlers back the unauthenticated config
// endpoints.
type AdmissionHandler struct {
	admissionUseCase admission.UseCase
}

// NewAdmissionHandler creates a new admission handler
func NewAdmissionHandler(admissionUseCase admission.UseCase) *AdmissionHandler {
	return &AdmissionHandler{admissionUseCase: admissionUseCase}
}

// CreateJalur godoc
// @Summary Create an admission track
// @Tags jalur
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body admission.JalurInput true "Jalur input"
// @Success 201 {object} response.Response{data=entity.Jalur}
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/jalur [post]
func (h *AdmissionHandler) CreateJalur(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input admission.JalurInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.admissionUseCase.CreateJalur(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, result)
}

// ListJalur godoc
// @Summary List all admission tracks
// @Tags jalur
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/jalur [get]
func (h *AdmissionHandler) ListJalur(c *gin.Context) {
	skip, limit := paging(c)

	list, err := h.admissionUseCase.ListJalur(c.Request.Context(), skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// PublicListJalur godoc
// @Summary List active admission tracks
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=[]entity.Jalur}
// @Router /api/v1/public/jalur [get]
func (h *AdmissionHandler) PublicListJalur(c *gin.Context) {
	list, err := h.admissionUseCase.ListActiveJalur(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, list)
}

// UpdateJalur godoc
// @Summary Update an admission track
// @Tags jalur
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body admission.JalurUpdateInput true "Jalur update input"
// @Success 200 {object} response.Response{data=entity.Jalur}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/jalur/{id} [put]
func (h *AdmissionHandler) UpdateJalur(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input admission.JalurUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.admissionUseCase.UpdateJalur(c.Request.Context(), p, id, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteJalur godoc
// @Summary Delete an admission track
// @Tags jalur
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/jalur/{id} [delete]
func (h *AdmissionHandler) DeleteJalur(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.admissionUseCase.DeleteJalur(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "jalur deleted"})
}

// CreateTahunAjaran godoc
// @Summary Create an academic year
// @Tags tahun-ajaran
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body admission.TahunAjaranInput true "Tahun ajaran input"
// @Success 201 {object} response.Response{data=entity.TahunAjaran}
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/tahun-ajaran [post]
func (h *AdmissionHandler) CreateTahunAjaran(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input admission.TahunAjaranInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.admissionUseCase.CreateTahunAjaran(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, result)
}

// PublicListTahunAjaran godoc
// @Summary List academic years
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=[]entity.TahunAjaran}
// @Router /api/v1/public/tahun-ajaran [get]
func (h *AdmissionHandler) PublicListTahunAjaran(c *gin.Context) {
	list, err := h.admissionUseCase.ListTahunAjaran(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, list)
}

// PublicActiveTahunAjaran godoc
// @Summary Get the active academic year
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=entity.TahunAjaran}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/public/tahun-ajaran/active [get]
func (h *AdmissionHandler) PublicActiveTahunAjaran(c *gin.Context) {
	result, err := h.admissionUseCase.GetActiveTahunAjaran(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// SetActiveTahunAjaran godoc
// @Summary Activate an academic year
// @Tags tahun-ajaran
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.TahunAjaran}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/tahun-ajaran/{id}/activate [post]
func (h *AdmissionHandler) SetActiveTahunAjaran(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.admissionUseCase.SetActiveTahunAjaran(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteTahunAjaran godoc
// @Summary Delete an academic year
// @Tags tahun-ajaran
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse
// @Router /api/v1/tahun-ajaran/{id} [delete]
func (h *AdmissionHandler) DeleteTahunAjaran(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.admissionUseCase.DeleteTahunAjaran(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "tahun ajaran deleted"})
}

// CreateKuota godoc
// @Summary Create a quota counter
// @Tags kuota
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body admission.KuotaInput true "Kuota input"
// @Success 201 {object} response.Response{data=entity.Kuota}
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/kuota [post]
func (h *AdmissionHandler) CreateKuota(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var input admission.KuotaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.admissionUseCase.CreateKuota(c.Request.Context(), p, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, result)
}

// GetKuota godoc
// @Summary Get a quota counter
// @Tags kuota
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=entity.Kuota}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/kuota/{id} [get]
func (h *AdmissionHandler) GetKuota(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.admissionUseCase.GetKuota(c.Request.Context(), p, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// ListKuota godoc
// @Summary List quota counters visible to the caller
// @Tags kuota
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/kuota [get]
func (h *AdmissionHandler) ListKuota(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	skip, limit := paging(c)

	list, err := h.admissionUseCase.ListKuota(c.Request.Context(), p, skip, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessList(c, list, skip, limit)
}

// UpdateKuota godoc
// @Summary Update a quota counter
// @Tags kuota
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body admission.KuotaUpdateInput true "Kuota update input"
// @Success 200 {object} response.Response{data=entity.Kuota}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/kuota/{id} [put]
func (h *AdmissionHandler) UpdateKuota(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input admission.KuotaUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.admissionUseCase.UpdateKuota(c.Request.Context(), p, id, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteKuota godoc
// @Summary Delete a quota counter
// @Tags kuota
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/kuota/{id} [delete]
func (h *AdmissionHandler) DeleteKuota(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.admissionUseCase.DeleteKuota(c.Request.Context(), p, id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "kuota deleted"})
}
