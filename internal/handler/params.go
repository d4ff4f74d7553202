package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/dto"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/response"
)

// queryDate parses an optional YYYY-MM-DD query value.
func queryDate(c *gin.Context, key string) (*models.Date, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid "+key+" format, expected YYYY-MM-DD")
	}
	return &date, nil
}

// queryPeriod reads ?start and ?end. A missing bound leaves the period unbounded.
func queryPeriod(c *gin.Context) (dto.Period, error) {
	start, err := queryDate(c, "start")
	if err != nil {
		return dto.Period{}, err
	}
	end, err := queryDate(c, "end")
	if err != nil {
		return dto.Period{}, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return dto.Period{}, appErrors.Clone(appErrors.ErrValidation, "end must not be before start")
	}
	return dto.Period{Start: start, End: end}, nil
}

func queryTarget(c *gin.Context) (int, error) {
	raw := strings.TrimSpace(c.Query("target"))
	if raw == "" {
		return 0, nil
	}
	target, err := strconv.Atoi(raw)
	if err != nil || target < 1 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "target must be a positive integer")
	}
	return target, nil
}

func queryFormat(c *gin.Context) (dto.ReportFormat, error) {
	format, ok := dto.ParseReportFormat(c.Query("format"))
	if !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, "format must be one of html, pdf, csv, xlsx")
	}
	return format, nil
}

func queryType(c *gin.Context) models.MurajaahType {
	return models.MurajaahType(strings.ToLower(strings.TrimSpace(c.Query("type"))))
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid request payload"))
		return false
	}
	return true
}

// writeReport sends HTML inline so it can be printed and every other format as a download.
func writeReport(c *gin.Context, report *dto.RenderedReport) {
	if report.Format == dto.ReportFormatHTML {
		response.HTML(c, report.Body)
		return
	}
	response.Attachment(c, report.Filename, report.ContentType, report.Body)
}
