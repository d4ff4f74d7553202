package export

import (
	"bytes"
	"fmt"
	"html/template"
)

const baseStylesheet = `body { font-family: Arial, sans-serif; margin: 20px; color: #1f2937; }
.header { text-align: center; margin-bottom: 24px; border-bottom: 2px solid #166534; padding-bottom: 12px; }
.header h1 { margin: 0; color: #166534; }
.header h2 { margin: 6px 0 0; font-size: 18px; }
.header p { margin: 4px 0; font-size: 13px; color: #4b5563; }
.fields { margin-bottom: 16px; }
.fields p { margin: 4px 0; }
.summary { display: flex; gap: 12px; margin-bottom: 24px; }
.summary-item { flex: 1; border: 1px solid #d1d5db; border-radius: 8px; padding: 12px; text-align: center; }
.summary-item .number { font-size: 24px; font-weight: bold; }
.summary-item .label { font-size: 12px; color: #6b7280; }
.section { margin-bottom: 24px; }
table { width: 100%; border-collapse: collapse; font-size: 13px; }
th, td { border: 1px solid #d1d5db; padding: 6px 8px; text-align: left; }
th { background: #f3f4f6; }
.empty { text-align: center; color: #6b7280; font-style: italic; }
.badge { display: inline-block; padding: 2px 8px; border-radius: 9999px; font-size: 12px; }
@media print { body { margin: 0; } .section { page-break-inside: avoid; } }
`

const documentTemplate = `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.Stylesheet}}</style>
</head>
<body>
<div class="header">
<h1>{{.Heading}}</h1>
{{- if .Subheading}}
<h2>{{.Subheading}}</h2>
{{- end}}
{{- range .Subtitles}}
<p>{{.}}</p>
{{- end}}
</div>
{{- if .Fields}}
<div class="fields">
{{- range .Fields}}
<p><strong>{{.Label}}:</strong> {{.Value}}</p>
{{- end}}
</div>
{{- end}}
{{- if .Summary}}
<div class="summary">
{{- range .Summary}}
<div class="summary-item"><div class="number{{if .Class}} {{.Class}}{{end}}">{{.Value}}</div><div class="label">{{.Label}}</div></div>
{{- end}}
</div>
{{- end}}
{{- range .Sections}}
<div class="section">
{{- if .Heading}}
<h3{{if .Class}} class="{{.Class}}"{{end}}>{{.Heading}}</h3>
{{- end}}
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- $width := len .Headers}}
{{- range .Rows}}
<tr{{if .Class}} class="{{.Class}}"{{end}}>{{range .Cells}}<td>{{if .Badge}}<span class="badge {{.Class}}">{{.Value}}</span>{{else if .Class}}<span class="{{.Class}}">{{.Value}}</span>{{else}}{{.Value}}{{end}}</td>{{end}}</tr>
{{- else}}
<tr><td class="empty" colspan="{{$width}}">{{if .EmptyText}}{{.EmptyText}}{{else}}-{{end}}</td></tr>
{{- end}}
</tbody>
</table>
</div>
{{- end}}
</body>
</html>
`

// HTMLRenderer turns a Document into a standalone printable HTML page.
type HTMLRenderer struct {
	tmpl *template.Template
}

type htmlView struct {
	Title      string
	Heading    string
	Subheading string
	Subtitles  []string
	Fields     []Field
	Summary    []SummaryItem
	Sections   []Section
	Stylesheet template.CSS
}

// NewHTMLRenderer parses the document template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse document template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render executes the template. Equal documents produce byte-identical output.
func (r *HTMLRenderer) Render(doc Document) ([]byte, error) {
	view := htmlView{
		Title:      doc.Title,
		Heading:    doc.HeadingOrTitle(),
		Subtitles:  doc.Subtitles,
		Fields:     doc.Fields,
		Summary:    doc.Summary,
		Sections:   doc.Sections,
		Stylesheet: template.CSS(doc.stylesheet()),
	}
	if doc.Heading != "" && doc.Title != doc.Heading {
		view.Subheading = doc.Title
	}
	buf := &bytes.Buffer{}
	if err := r.tmpl.Execute(buf, view); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
