package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/middleware"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/service"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/response"
)

type murajaahService interface {
	List(ctx context.Context, studentID string, kind models.MurajaahType) ([]models.MurajaahRecord, error)
	ListAll(ctx context.Context, kind models.MurajaahType) ([]models.MurajaahRecord, error)
	Create(ctx context.Context, session *models.TeacherSession, studentID string, input service.MurajaahInput) (*models.MurajaahRecord, error)
	Update(ctx context.Context, id string, input service.MurajaahInput) (*models.MurajaahRecord, error)
	Delete(ctx context.Context, id string) error
}

// MurajaahHandler exposes revision sessions logged by parents and teachers.
type MurajaahHandler struct {
	service murajaahService
}

// NewMurajaahHandler constructs the handler.
func NewMurajaahHandler(svc murajaahService) *MurajaahHandler {
	return &MurajaahHandler{service: svc}
}

// List godoc
// @Summary List murajaah sessions of a student
// @Tags Murajaah
// @Produce json
// @Param id path string true "Student ID"
// @Param type query string false "home or class"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/murajaah [get]
func (h *MurajaahHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	records, err := h.service.List(c.Request.Context(), c.Param("id"), queryType(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, middleware.ExtractMeta(c))
}

// ListAll godoc
// @Summary List murajaah sessions of the class
// @Tags Murajaah
// @Produce json
// @Param type query string false "home or class"
// @Success 200 {object} response.Envelope
// @Router /murajaah [get]
func (h *MurajaahHandler) ListAll(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	records, err := h.service.ListAll(c.Request.Context(), queryType(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, middleware.ExtractMeta(c))
}

// Create godoc
// @Summary Log a murajaah session
// @Description Home sessions are open to parents; class sessions need a teacher token
// @Tags Murajaah
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.MurajaahInput true "Murajaah payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students/{id}/murajaah [post]
func (h *MurajaahHandler) Create(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var input service.MurajaahInput
	if !bindJSON(c, &input) {
		return
	}
	record, err := h.service.Create(c.Request.Context(), middleware.TeacherSession(c), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMessage(c, "Murajaah berhasil dicatat. Jazakallahu khairan!")
	response.JSON(c, http.StatusCreated, record, middleware.ExtractMeta(c))
}

// Update godoc
// @Summary Update a murajaah session
// @Tags Murajaah
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param payload body service.MurajaahInput true "Murajaah payload"
// @Success 200 {object} response.Envelope
// @Router /murajaah/{id} [put]
func (h *MurajaahHandler) Update(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var input service.MurajaahInput
	if !bindJSON(c, &input) {
		return
	}
	record, err := h.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMessage(c, "Data berhasil diperbarui")
	response.JSON(c, http.StatusOK, record, middleware.ExtractMeta(c))
}

// Delete godoc
// @Summary Delete a murajaah session
// @Tags Murajaah
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Router /murajaah/{id} [delete]
func (h *MurajaahHandler) Delete(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMessage(c, "Data murajaah berhasil dihapus")
	response.JSON(c, http.StatusOK, gin.H{"id": id}, middleware.ExtractMeta(c))
}
