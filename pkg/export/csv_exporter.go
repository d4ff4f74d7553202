package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Dataset defines tabular export content.
type Dataset struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// CSVExporter renders Dataset records into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset. Short rows are padded to the header width.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	// UTF-8 BOM.
	buf.WriteString("\uFEFF")
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		copy(record, row)
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDocument writes every section of the document into one CSV. With more than one section
// each block starts with a row holding the section name and ends with an empty row.
func (e *CSVExporter) RenderDocument(doc Document) ([]byte, error) {
	sets := doc.Datasets()
	if len(sets) == 0 {
		return nil, fmt.Errorf("csv requires at least one section")
	}
	if len(sets) == 1 {
		return e.Render(sets[0])
	}
	buf := &bytes.Buffer{}
	buf.WriteString("\uFEFF")
	writer := csv.NewWriter(buf)
	for _, set := range sets {
		if len(set.Headers) == 0 {
			return nil, fmt.Errorf("csv section %q has no headers", set.Name)
		}
		records := [][]string{{set.Name}, set.Headers}
		for _, row := range set.Rows {
			record := make([]string, len(set.Headers))
			copy(record, row)
			records = append(records, record)
		}
		records = append(records, []string{})
		if err := writer.WriteAll(records); err != nil {
			return nil, fmt.Errorf("write csv section %q: %w", set.Name, err)
		}
	}
	return buf.Bytes(), nil
}
