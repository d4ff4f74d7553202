package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders documents into a tabular A4 PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render draws the header block, the summary line and each section table.
func (e *PDFExporter) Render(doc Document) ([]byte, error) {
	if doc.HeadingOrTitle() == "" {
		return nil, fmt.Errorf("pdf requires a title")
	}
	orientation := "P"
	for _, section := range doc.Sections {
		if len(section.Headers) > 6 {
			orientation = "L"
			break
		}
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	width := pageWidth - left - right

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 9, tr(doc.HeadingOrTitle()), "", 1, "C", false, 0, "")
	if doc.Heading != "" && doc.Title != "" && doc.Title != doc.Heading {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, tr(doc.Title), "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "", 9)
	for _, subtitle := range doc.Subtitles {
		pdf.CellFormat(0, 5, tr(subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	for _, field := range doc.Fields {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(30, 6, tr(field.Label+":"), "", 0, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(field.Value), "", 1, "", false, 0, "")
	}

	if len(doc.Summary) > 0 {
		pdf.Ln(2)
		boxWidth := width / float64(len(doc.Summary))
		pdf.SetFont("Arial", "B", 13)
		for _, item := range doc.Summary {
			e.applyTextColor(pdf, doc, item.Class)
			pdf.CellFormat(boxWidth, 8, tr(item.Value), "LTR", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", 8)
		for _, item := range doc.Summary {
			pdf.CellFormat(boxWidth, 6, tr(item.Label), "LBR", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	for _, section := range doc.Sections {
		pdf.Ln(4)
		if section.Heading != "" {
			pdf.SetFont("Arial", "B", 11)
			e.applyTextColor(pdf, doc, section.Class)
			pdf.CellFormat(0, 7, tr(section.Heading), "", 1, "", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
		if len(section.Headers) == 0 {
			continue
		}
		colWidth := width / float64(len(section.Headers))

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, header := range section.Headers {
			pdf.CellFormat(colWidth, 7, tr(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		if len(section.Rows) == 0 {
			text := section.EmptyText
			if text == "" {
				text = "-"
			}
			pdf.CellFormat(width, 7, tr(text), "1", 1, "C", false, 0, "")
			continue
		}
		for _, row := range section.Rows {
			for i := range section.Headers {
				cell := Cell{}
				if i < len(row.Cells) {
					cell = row.Cells[i]
				}
				class := cell.Class
				if class == "" {
					class = row.Class
				}
				e.applyTextColor(pdf, doc, class)
				pdf.CellFormat(colWidth, 6, tr(truncate(cell.Value, colWidth)), "1", 0, "", false, 0, "")
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.Ln(-1)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) applyTextColor(pdf *gofpdf.Fpdf, doc Document, class string) {
	if color, ok := doc.colorFor(class); ok {
		pdf.SetTextColor(color.R, color.G, color.B)
		return
	}
	pdf.SetTextColor(0, 0, 0)
}

// truncate keeps long notes from overflowing a fixed-width cell (roughly 1.6mm per glyph at 8pt).
func truncate(value string, colWidth float64) string {
	limit := int(colWidth / 1.6)
	runes := []rune(strings.TrimSpace(value))
	if limit < 4 || len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit-3]) + "..."
}
