package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/dto"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/response"
)

type reportService interface {
	StudentHafalan(ctx context.Context, studentID string, format dto.ReportFormat) (*dto.RenderedReport, error)
	StudentMurajaah(ctx context.Context, studentID string, kind models.MurajaahType, format dto.ReportFormat) (*dto.RenderedReport, error)
	HafalanRecap(ctx context.Context, period dto.Period, format dto.ReportFormat) (*dto.RenderedReport, error)
	MurajaahCompliance(ctx context.Context, period dto.Period, target int, format dto.ReportFormat) (*dto.RenderedReport, error)
}

// ReportHandler streams printable documents.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs the handler.
func NewReportHandler(svc reportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// StudentHafalan godoc
// @Summary Per-student hafalan report
// @Tags Reports
// @Produce html
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Param format query string false "html, pdf, csv or xlsx"
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /reports/students/{id}/hafalan [get]
func (h *ReportHandler) StudentHafalan(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	format, err := queryFormat(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.service.StudentHafalan(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeReport(c, report)
}

// StudentMurajaah godoc
// @Summary Per-student murajaah report
// @Tags Reports
// @Produce html
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Param type query string false "home or class"
// @Param format query string false "html, pdf, csv or xlsx"
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /reports/students/{id}/murajaah [get]
func (h *ReportHandler) StudentMurajaah(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	format, err := queryFormat(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.service.StudentMurajaah(c.Request.Context(), c.Param("id"), queryType(c), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeReport(c, report)
}

// HafalanRecap godoc
// @Summary Class hafalan recap document
// @Tags Reports
// @Produce html
// @Produce application/pdf
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param format query string false "html, pdf, csv or xlsx"
// @Success 200 {file} binary
// @Router /reports/hafalan [get]
func (h *ReportHandler) HafalanRecap(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	period, err := queryPeriod(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format, err := queryFormat(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.service.HafalanRecap(c.Request.Context(), period, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeReport(c, report)
}

// MurajaahCompliance godoc
// @Summary Parent murajaah compliance document
// @Tags Reports
// @Produce html
// @Produce application/pdf
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param target query int false "Minimum submissions"
// @Param format query string false "html, pdf, csv or xlsx"
// @Success 200 {file} binary
// @Router /reports/murajaah [get]
func (h *ReportHandler) MurajaahCompliance(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	period, err := queryPeriod(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	target, err := queryTarget(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format, err := queryFormat(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.service.MurajaahCompliance(c.Request.Context(), period, target, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeReport(c, report)
}
