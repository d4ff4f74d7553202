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

type hafalanService interface {
	List(ctx context.Context, studentID string) ([]models.HafalanRecord, error)
	Create(ctx context.Context, studentID string, input service.HafalanInput) (*models.HafalanRecord, error)
	Update(ctx context.Context, id string, input service.HafalanInput) (*models.HafalanRecord, error)
	Delete(ctx context.Context, id string) error
}

// HafalanHandler exposes graded memorisation records.
type HafalanHandler struct {
	service hafalanService
}

// NewHafalanHandler constructs the handler.
func NewHafalanHandler(svc hafalanService) *HafalanHandler {
	return &HafalanHandler{service: svc}
}

// List godoc
// @Summary List hafalan records of a student
// @Description Newest first
// @Tags Hafalan
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/hafalan [get]
func (h *HafalanHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	records, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, middleware.ExtractMeta(c))
}

// Create godoc
// @Summary Record a hafalan submission
// @Description With absent=true only the date is required
// @Tags Hafalan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param payload body service.HafalanInput true "Hafalan payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students/{id}/hafalan [post]
func (h *HafalanHandler) Create(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var input service.HafalanInput
	if !bindJSON(c, &input) {
		return
	}
	record, err := h.service.Create(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if record.IsAbsence() {
		middleware.SetMessage(c, "Data ketidakhadiran berhasil dicatat")
	} else {
		middleware.SetMessage(c, "Data hafalan berhasil ditambahkan")
	}
	response.JSON(c, http.StatusCreated, record, middleware.ExtractMeta(c))
}

// Update godoc
// @Summary Update a hafalan record
// @Tags Hafalan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param payload body service.HafalanInput true "Hafalan payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /hafalan/{id} [put]
func (h *HafalanHandler) Update(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var input service.HafalanInput
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
// @Summary Delete a hafalan record
// @Tags Hafalan
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /hafalan/{id} [delete]
func (h *HafalanHandler) Delete(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMessage(c, "Data hafalan berhasil dihapus")
	response.JSON(c, http.StatusOK, gin.H{"id": id}, middleware.ExtractMeta(c))
}
