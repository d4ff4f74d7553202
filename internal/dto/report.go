package dto

import "strings"

// ReportFormat selects the rendered output of a report endpoint.
type ReportFormat string

// Supported report formats.
const (
	ReportFormatHTML ReportFormat = "html"
	ReportFormatPDF  ReportFormat = "pdf"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ParseReportFormat normalises a query value. Empty input selects HTML.
func ParseReportFormat(raw string) (ReportFormat, bool) {
	switch ReportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ReportFormatHTML:
		return ReportFormatHTML, true
	case ReportFormatPDF:
		return ReportFormatPDF, true
	case ReportFormatCSV:
		return ReportFormatCSV, true
	case ReportFormatXLSX:
		return ReportFormatXLSX, true
	}
	return "", false
}

// ContentType returns the MIME type of the format.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatPDF:
		return "application/pdf"
	case ReportFormatCSV:
		return "text/csv; charset=utf-8"
	case ReportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/html; charset=utf-8"
	}
}

// RenderedReport is a report ready to stream to the client.
type RenderedReport struct {
	Filename    string
	Format      ReportFormat
	ContentType string
	Body        []byte
}
