package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/dto"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/export"
)

var errRendererMissing = errors.New("renderer not configured")

type recapProvider interface {
	HafalanRecap(ctx context.Context, period dto.Period) (*dto.HafalanRecapResponse, error)
	MurajaahCompliance(ctx context.Context, period dto.Period, target int) (*dto.MurajaahComplianceResponse, error)
}

type documentRenderer interface {
	Render(doc export.Document) ([]byte, error)
}

type documentCSVRenderer interface {
	RenderDocument(doc export.Document) ([]byte, error)
}

// ReportServiceConfig labels every printed document.
type ReportServiceConfig struct {
	SchoolName string
	ClassName  string
	Policy     models.GradePolicy
}

// ReportServiceParams groups constructor dependencies.
type ReportServiceParams struct {
	Hafalan  hafalanLister
	Murajaah murajaahLister
	Recaps   recapProvider
	HTML     documentRenderer
	PDF      documentRenderer
	XLSX     documentRenderer
	CSV      documentCSVRenderer
	Metrics  *MetricsService
	Logger   *zap.Logger
	Config   ReportServiceConfig
}

// ReportService builds printable documents and renders them in the requested format.
type ReportService struct {
	hafalan  hafalanLister
	murajaah murajaahLister
	recaps   recapProvider
	html     documentRenderer
	pdf      documentRenderer
	xlsx     documentRenderer
	csv      documentCSVRenderer
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
	cfg      ReportServiceConfig
}

// NewReportService constructs a ReportService.
func NewReportService(params ReportServiceParams) *ReportService {
	cfg := params.Config
	if cfg.SchoolName == "" {
		cfg.SchoolName = "Madrasah Nuurul Qur'an"
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		hafalan:  params.Hafalan,
		murajaah: params.Murajaah,
		recaps:   params.Recaps,
		html:     params.HTML,
		pdf:      params.PDF,
		xlsx:     params.XLSX,
		csv:      params.CSV,
		metrics:  params.Metrics,
		logger:   logger,
		now:      time.Now,
		cfg:      cfg,
	}
}

// StudentHafalan renders one student's hafalan report.
func (s *ReportService) StudentHafalan(ctx context.Context, studentID string, format dto.ReportFormat) (*dto.RenderedReport, error) {
	student, err := lookupStudent(studentID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	records, err := s.hafalan.List(ctx, models.HafalanFilter{StudentID: studentID})
	observeStore(s.metrics, "hafalan.list", start, err)
	if err != nil {
		s.logger.Error("report hafalan load failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, storeFailure(err, msgLoadHafalan, "")
	}
	doc := s.StudentHafalanDocument(student, records, s.now())
	return s.render(doc, "student_hafalan", "laporan-hafalan-"+student.ID, format)
}

// StudentMurajaah renders one student's murajaah report, optionally narrowed to one type.
func (s *ReportService) StudentMurajaah(ctx context.Context, studentID string, kind models.MurajaahType, format dto.ReportFormat) (*dto.RenderedReport, error) {
	student, err := lookupStudent(studentID)
	if err != nil {
		return nil, err
	}
	if err := checkType(kind); err != nil {
		return nil, err
	}
	start := time.Now()
	records, err := s.murajaah.List(ctx, models.MurajaahFilter{StudentID: studentID, Type: kind})
	observeStore(s.metrics, "murajaah.list", start, err)
	if err != nil {
		s.logger.Error("report murajaah load failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, storeFailure(err, msgLoadMurajaah, "")
	}
	doc := s.StudentMurajaahDocument(student, kind, records, s.now())
	return s.render(doc, "student_murajaah", "laporan-murajaah-"+student.ID, format)
}

// HafalanRecap renders the class hafalan recap.
func (s *ReportService) HafalanRecap(ctx context.Context, period dto.Period, format dto.ReportFormat) (*dto.RenderedReport, error) {
	recap, err := s.recaps.HafalanRecap(ctx, period)
	if err != nil {
		return nil, err
	}
	return s.render(s.HafalanRecapDocument(recap, s.now()), "hafalan_recap", "rekap-hafalan", format)
}

// MurajaahCompliance renders the parent murajaah recap.
func (s *ReportService) MurajaahCompliance(ctx context.Context, period dto.Period, target int, format dto.ReportFormat) (*dto.RenderedReport, error) {
	recap, err := s.recaps.MurajaahCompliance(ctx, period, target)
	if err != nil {
		return nil, err
	}
	return s.render(s.ComplianceDocument(recap, s.now()), "murajaah_compliance", "rekap-murajaah", format)
}

// StudentHafalanDocument builds the per-student hafalan report.
func (s *ReportService) StudentHafalanDocument(student models.Student, records []models.HafalanRecord, printedAt time.Time) export.Document {
	rows := make([]export.Row, 0, len(records))
	for i, record := range records {
		grade, score, ayat := s.gradeCells(record)
		rows = append(rows, export.Row{
			Class: grade.Tag,
			Cells: []export.Cell{
				export.Text(strconv.Itoa(i + 1)),
				export.Text(record.Date.FormatLong()),
				export.Text(record.Surah),
				export.Text(ayat),
				export.Styled(score, grade.Tag),
				export.Badge(grade.Label, grade.Tag),
				export.Text(notesOrDash(record.Notes)),
			},
		})
	}
	return export.Document{
		Title:     "Laporan Monitoring Hafalan",
		Heading:   s.cfg.SchoolName,
		Subtitles: s.classSubtitles(),
		Fields:    s.studentFields(student, printedAt),
		Sections: []export.Section{{
			Name:      "Hafalan",
			Headers:   []string{"No", "Tanggal", "Surat", "Ayat", "Nilai", "Status", "Catatan"},
			Rows:      rows,
			EmptyText: "Belum ada data setoran hafalan",
		}},
		Styles: gradeStyles(),
	}
}

// StudentMurajaahDocument builds the per-student murajaah report.
func (s *ReportService) StudentMurajaahDocument(student models.Student, kind models.MurajaahType, records []models.MurajaahRecord, printedAt time.Time) export.Document {
	headers := []string{"No", "Tanggal", "Surat", "Status"}
	if kind == "" {
		headers = append(headers, "Jenis")
	}
	rows := make([]export.Row, 0, len(records))
	for i, record := range records {
		cells := []export.Cell{
			export.Text(strconv.Itoa(i + 1)),
			export.Text(record.Date.FormatLong()),
			export.Text(record.Surah),
			export.Badge(string(record.Status), record.Status.Tag()),
		}
		if kind == "" {
			cells = append(cells, export.Text(record.Type.Label()))
		}
		rows = append(rows, export.Row{Cells: cells})
	}

	fields := s.studentFields(student, printedAt)
	if kind != "" {
		fields = append(fields, export.Field{Label: "Jenis", Value: "Murajaah " + kind.Label()})
	}
	return export.Document{
		Title:     "Laporan Murajaah Hafalan",
		Heading:   s.cfg.SchoolName,
		Subtitles: s.classSubtitles(),
		Fields:    fields,
		Sections: []export.Section{{
			Name:      "Murajaah",
			Headers:   headers,
			Rows:      rows,
			EmptyText: "Belum ada data murajaah",
		}},
		Styles: gradeStyles(),
	}
}

// HafalanRecapDocument builds the class hafalan recap.
func (s *ReportService) HafalanRecapDocument(recap *dto.HafalanRecapResponse, printedAt time.Time) export.Document {
	rows := make([]export.Row, 0, len(recap.Records))
	for i, record := range recap.Records {
		_, score, ayat := s.gradeCells(record.HafalanRecord)
		rows = append(rows, export.Row{
			Class: record.Grade.Tag,
			Cells: []export.Cell{
				export.Text(strconv.Itoa(i + 1)),
				export.Text(record.StudentName),
				export.Text(record.Date.FormatShort()),
				export.Text(record.Surah),
				export.Text(ayat),
				export.Styled(score, record.Grade.Tag),
				export.Badge(record.Grade.Label, record.Grade.Tag),
				export.Text(notesOrDash(record.Notes)),
			},
		})
	}

	subtitles := s.classSubtitles()
	if recap.Period.Bounded() {
		subtitles = append(subtitles, periodLabel(recap.Period))
	}
	subtitles = append(subtitles, "Dicetak: "+models.FormatPrinted(printedAt))
	return export.Document{
		Title:     "Rekap Monitoring Hafalan",
		Subtitles: subtitles,
		Summary: []export.SummaryItem{
			{Label: "Total Setoran", Value: strconv.Itoa(recap.Total)},
		},
		Sections: []export.Section{{
			Name:      "Rekap Hafalan",
			Headers:   []string{"No", "Nama", "Tanggal", "Surat", "Ayat", "Nilai", "Status", "Catatan"},
			Rows:      rows,
			EmptyText: "Belum ada data setoran hafalan",
		}},
		Styles: gradeStyles(),
	}
}

// ComplianceDocument builds the parent murajaah recap with the missing and below-target lists.
// The lists are omitted when empty.
func (s *ReportService) ComplianceDocument(recap *dto.MurajaahComplianceResponse, printedAt time.Time) export.Document {
	compliance := recap.Compliance
	target := strconv.Itoa(compliance.MinTarget)

	summaryRows := make([]export.Row, 0, len(compliance.Entries))
	for i, entry := range compliance.Entries {
		class := string(entry.Status)
		summaryRows = append(summaryRows, export.Row{
			Class: "row-" + class,
			Cells: []export.Cell{
				export.Text(strconv.Itoa(i + 1)),
				export.Text(entry.DisplayName),
				export.Text(strconv.Itoa(entry.Count) + "x"),
				export.Styled(entry.Status.Label(), class),
			},
		})
	}

	sections := []export.Section{{
		Name:      "Ringkasan",
		Heading:   "Ringkasan Setoran Per Siswa",
		Headers:   []string{"No", "Nama Siswa", "Jumlah Setoran", "Keterangan"},
		Rows:      summaryRows,
		EmptyText: "Belum ada data siswa",
	}}
	if len(compliance.None) > 0 {
		rows := make([]export.Row, 0, len(compliance.None))
		for i, entry := range compliance.None {
			rows = append(rows, export.Row{
				Class: "row-tidak",
				Cells: []export.Cell{export.Text(strconv.Itoa(i + 1)), export.Styled(entry.DisplayName, "tidak")},
			})
		}
		sections = append(sections, export.Section{
			Name:    "Tidak Setoran",
			Heading: "Daftar Siswa Tidak Setoran Murajaah",
			Class:   "tidak",
			Headers: []string{"No", "Nama Siswa"},
			Rows:    rows,
		})
	}
	if len(compliance.Below) > 0 {
		rows := make([]export.Row, 0, len(compliance.Below))
		for i, entry := range compliance.Below {
			rows = append(rows, export.Row{
				Class: "row-kurang",
				Cells: []export.Cell{
					export.Text(strconv.Itoa(i + 1)),
					export.Styled(entry.DisplayName, "kurang"),
					export.Text(strconv.Itoa(entry.Count) + "x"),
				},
			})
		}
		sections = append(sections, export.Section{
			Name:    "Kurang Setoran",
			Heading: fmt.Sprintf("Daftar Siswa Kurang Setoran (Kurang dari %sx)", target),
			Class:   "kurang",
			Headers: []string{"No", "Nama Siswa", "Jumlah Setoran"},
			Rows:    rows,
		})
	}

	return export.Document{
		Title: "Rekap Murajaah Hafalan (Orang Tua)",
		Subtitles: []string{
			s.cfg.SchoolName + " - " + s.cfg.ClassName,
			periodLabel(recap.Period),
			"Dicetak: " + models.FormatPrinted(printedAt),
		},
		Summary: []export.SummaryItem{
			{Label: "Total Setoran", Value: strconv.Itoa(recap.TotalSubmissions), Class: "total"},
			{Label: "Siswa Memenuhi Target (>=" + target + "x)", Value: strconv.Itoa(len(compliance.Met)), Class: "target"},
			{Label: "Kurang dari " + target + "x", Value: strconv.Itoa(len(compliance.Below)), Class: "kurang"},
			{Label: "Tidak Setoran", Value: strconv.Itoa(len(compliance.None)), Class: "tidak"},
		},
		Sections: sections,
		Styles:   complianceStyles(),
	}
}

func (s *ReportService) render(doc export.Document, report, filename string, format dto.ReportFormat) (*dto.RenderedReport, error) {
	start := time.Now()
	var (
		body []byte
		err  error
	)
	switch format {
	case dto.ReportFormatHTML:
		body, err = renderWith(s.html, doc)
	case dto.ReportFormatPDF:
		body, err = renderWith(s.pdf, doc)
	case dto.ReportFormatXLSX:
		body, err = renderWith(s.xlsx, doc)
	case dto.ReportFormatCSV:
		if s.csv == nil {
			err = errRendererMissing
		} else {
			body, err = s.csv.RenderDocument(doc)
		}
	default:
		return nil, validationError("Format laporan tidak dikenal")
	}
	if err != nil {
		s.logger.Error("render report failed", zap.String("report", report), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Gagal membuat laporan")
	}
	s.metrics.ObserveReport(report, string(format), time.Since(start))

	return &dto.RenderedReport{
		Filename:    filename + "." + string(format),
		Format:      format,
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func renderWith(renderer documentRenderer, doc export.Document) ([]byte, error) {
	if renderer == nil {
		return nil, errRendererMissing
	}
	return renderer.Render(doc)
}

// gradeCells returns the grade, score and ayat texts of a hafalan row. Absences print dashes.
func (s *ReportService) gradeCells(record models.HafalanRecord) (models.GradeStatus, string, string) {
	if record.IsAbsence() {
		return models.GradeAbsent, "-", models.AbsentAyat
	}
	return s.cfg.Policy.Classify(record.Score), strconv.Itoa(record.Score), record.Ayat
}

func (s *ReportService) classSubtitles() []string {
	if s.cfg.ClassName == "" {
		return nil
	}
	return []string{s.cfg.ClassName}
}

func (s *ReportService) studentFields(student models.Student, printedAt time.Time) []export.Field {
	return []export.Field{
		{Label: "Nama", Value: student.DisplayName()},
		{Label: "Program", Value: student.Track()},
		{Label: "Tanggal Cetak", Value: models.FormatPrinted(printedAt)},
	}
}

func periodLabel(period dto.Period) string {
	start, end := "-", "-"
	if period.Start != nil {
		start = period.Start.FormatLong()
	}
	if period.End != nil {
		end = period.End.FormatLong()
	}
	return "Periode: " + start + " s/d " + end
}

func notesOrDash(notes string) string {
	if notes == "" {
		return "-"
	}
	return notes
}

func gradeStyles() []export.StyleRule {
	return []export.StyleRule{
		{Selector: "." + models.GradeExcellent.Tag, Declarations: "color: #166534; background: #dcfce7;", Color: export.RGB{R: 22, G: 101, B: 52}},
		{Selector: "." + models.GradeFluent.Tag, Declarations: "color: #2563eb; background: #dbeafe;", Color: export.RGB{R: 37, G: 99, B: 235}},
		{Selector: "." + models.GradeNeedsRepeat.Tag, Declarations: "color: #d97706; background: #fef3c7;", Color: export.RGB{R: 217, G: 119, B: 6}},
		{Selector: "." + models.GradeNotFluent.Tag, Declarations: "color: #dc2626; background: #fee2e2;", Color: export.RGB{R: 220, G: 38, B: 38}},
		{Selector: "." + models.GradeAbsent.Tag, Declarations: "color: #6b7280; background: #f3f4f6;", Color: export.RGB{R: 107, G: 114, B: 128}},
	}
}

func complianceStyles() []export.StyleRule {
	return []export.StyleRule{
		{Selector: ".total", Declarations: "color: #d97706;", Color: export.RGB{R: 217, G: 119, B: 6}},
		{Selector: ".target", Declarations: "color: #166534; font-weight: bold;", Color: export.RGB{R: 22, G: 101, B: 52}},
		{Selector: ".kurang", Declarations: "color: #d97706; font-weight: bold;", Color: export.RGB{R: 217, G: 119, B: 6}},
		{Selector: ".tidak", Declarations: "color: #dc2626; font-weight: bold;", Color: export.RGB{R: 220, G: 38, B: 38}},
		{Selector: ".row-target", Declarations: "background: #f0fdf4;"},
		{Selector: ".row-kurang", Declarations: "background: #fffbeb;"},
		{Selector: ".row-tidak", Declarations: "background: #fef2f2;"},
	}
}
