package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// XLSXExporter renders each document section into its own worksheet.
type XLSXExporter struct{}

// NewXLSXExporter builds an XLSX exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Render produces an XLSX workbook. The first sheet carries the document
// header rows above its table; subsequent sheets hold only their table.
func (e *XLSXExporter) Render(doc Document) ([]byte, error) {
	sets := doc.Datasets()
	if len(sets) == 0 {
		return nil, fmt.Errorf("xlsx requires at least one section")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	used := make(map[string]struct{}, len(sets))
	for i, set := range sets {
		name := sheetName(set.Name, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}

		row := 1
		if i == 0 {
			if err := f.SetCellValue(name, "A1", doc.HeadingOrTitle()); err != nil {
				return nil, fmt.Errorf("write title: %w", err)
			}
			if err := f.SetCellStyle(name, "A1", "A1", titleStyle); err != nil {
				return nil, fmt.Errorf("style title: %w", err)
			}
			row++
			lines := append([]string(nil), doc.Subtitles...)
			for _, field := range doc.Fields {
				lines = append(lines, field.Label+": "+field.Value)
			}
			for _, item := range doc.Summary {
				lines = append(lines, item.Label+": "+item.Value)
			}
			for _, line := range lines {
				if err := f.SetCellValue(name, "A"+strconv.Itoa(row), line); err != nil {
					return nil, fmt.Errorf("write header line: %w", err)
				}
				row++
			}
			row++
		}

		if err := writeTable(f, name, row, set, headerStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, startRow int, set Dataset, headerStyle int) error {
	if len(set.Headers) == 0 {
		return fmt.Errorf("xlsx sheet %q has no headers", sheet)
	}
	headerCell, err := excelize.CoordinatesToCellName(1, startRow)
	if err != nil {
		return fmt.Errorf("resolve header cell: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(set.Headers), startRow)
	if err != nil {
		return fmt.Errorf("resolve header cell: %w", err)
	}
	headers := make([]interface{}, len(set.Headers))
	for i, header := range set.Headers {
		headers[i] = header
	}
	if err := f.SetSheetRow(sheet, headerCell, &headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	if err := f.SetCellStyle(sheet, headerCell, lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style headers: %w", err)
	}

	for i, values := range set.Rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+1+i)
		if err != nil {
			return fmt.Errorf("resolve row cell: %w", err)
		}
		record := make([]interface{}, len(set.Headers))
		for j := range record {
			if j < len(values) {
				record[j] = values[j]
			} else {
				record[j] = ""
			}
		}
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return nil
}

// sheetName strips characters Excel rejects, enforces the 31 rune limit and keeps names unique.
func sheetName(raw string, used map[string]struct{}) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, raw)
	cleaned = strings.Trim(strings.TrimSpace(cleaned), "'")
	if cleaned == "" {
		cleaned = "Sheet"
	}
	base := []rune(cleaned)
	if len(base) > maxSheetName {
		base = base[:maxSheetName]
	}
	name := string(base)
	for n := 2; ; n++ {
		if _, taken := used[strings.ToLower(name)]; !taken {
			break
		}
		suffix := " " + strconv.Itoa(n)
		trimmed := base
		if len(trimmed)+len(suffix) > maxSheetName {
			trimmed = trimmed[:maxSheetName-len(suffix)]
		}
		name = string(trimmed) + suffix
	}
	used[strings.ToLower(name)] = struct{}{}
	return name
}
