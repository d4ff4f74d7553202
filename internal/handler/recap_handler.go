package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/dto"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/middleware"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/response"
)

type recapService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, bool, error)
	HafalanRecap(ctx context.Context, period dto.Period) (*dto.HafalanRecapResponse, error)
	MurajaahCompliance(ctx context.Context, period dto.Period, target int) (*dto.MurajaahComplianceResponse, error)
}

// RecapHandler exposes class level aggregations.
type RecapHandler struct {
	service recapService
}

// NewRecapHandler constructs the handler.
func NewRecapHandler(svc recapService) *RecapHandler {
	return &RecapHandler{service: svc}
}

// Dashboard godoc
// @Summary Class dashboard statistics
// @Tags Recap
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /recap/dashboard [get]
func (h *RecapHandler) Dashboard(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	summary, cacheHit, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, summary, middleware.ExtractMeta(c))
}

// Hafalan godoc
// @Summary Class hafalan recap
// @Tags Recap
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /recap/hafalan [get]
func (h *RecapHandler) Hafalan(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	period, err := queryPeriod(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	recap, err := h.service.HafalanRecap(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, recap, middleware.ExtractMeta(c))
}

// Murajaah godoc
// @Summary Parent murajaah compliance
// @Tags Recap
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param target query int false "Minimum submissions"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /recap/murajaah [get]
func (h *RecapHandler) Murajaah(c *gin.Context) {
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
	recap, err := h.service.MurajaahCompliance(c.Request.Context(), period, target)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, recap, middleware.ExtractMeta(c))
}
