package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/dto"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/export"
)

var printedAt = time.Date(2025, time.March, 31, 9, 30, 0, 0, time.UTC)

func newTestReportService(t *testing.T, hafalan *fakeHafalanRepo, murajaah *fakeMurajaahRepo) *ReportService {
	t.Helper()
	html, err := export.NewHTMLRenderer()
	require.NoError(t, err)
	recaps := newTestRecapService(hafalan, murajaah, nil)
	svc := NewReportService(ReportServiceParams{
		Hafalan:  hafalan,
		Murajaah: murajaah,
		Recaps:   recaps,
		HTML:     html,
		PDF:      export.NewPDFExporter(),
		XLSX:     export.NewXLSXExporter(),
		CSV:      export.NewCSVExporter(),
		Metrics:  NewMetricsService(),
		Logger:   zap.NewNop(),
		Config: ReportServiceConfig{
			SchoolName: "Madrasah Nuurul Qur'an",
			ClassName:  "Kelas 8A",
			Policy:     models.DefaultGradePolicy(),
		},
	})
	svc.now = func() time.Time { return printedAt }
	return svc
}

func TestReportServiceStudentHafalanDocument(t *testing.T) {
	svc := newTestReportService(t, &fakeHafalanRepo{}, &fakeMurajaahRepo{})
	student, ok := models.FindStudent("19")
	require.True(t, ok)

	doc := svc.StudentHafalanDocument(student, []models.HafalanRecord{
		{Date: day(3), Surah: "Al-Jin", Ayat: "1-5", Score: 91},
		{Date: day(2), Surah: models.AbsentSurah, Ayat: models.AbsentAyat, Notes: models.AbsentNote},
	}, printedAt)

	assert.Equal(t, "Laporan Monitoring Hafalan", doc.Title)
	assert.Equal(t, "Madrasah Nuurul Qur'an", doc.Heading)
	assert.Equal(t, export.Field{Label: "Nama", Value: "Muhammad Zaid Ar-Rahman"}, doc.Fields[0])
	assert.Equal(t, export.Field{Label: "Program", Value: "Reguler"}, doc.Fields[1])
	assert.Equal(t, export.Field{Label: "Tanggal Cetak", Value: "31 Maret 2025"}, doc.Fields[2])

	require.Len(t, doc.Sections, 1)
	rows := doc.Sections[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, models.GradeExcellent.Tag, rows[0].Class)
	assert.Equal(t, "03 Maret 2025", rows[0].Cells[1].Value)
	assert.Equal(t, "-", rows[0].Cells[6].Value)
	assert.Equal(t, "-", rows[1].Cells[4].Value)
	assert.Equal(t, models.GradeAbsent.Label, rows[1].Cells[5].Value)
	assert.True(t, rows[1].Cells[5].Badge)
}

func TestReportServiceEmptyStudentReport(t *testing.T) {
	svc := newTestReportService(t, &fakeHafalanRepo{}, &fakeMurajaahRepo{})

	report, err := svc.StudentHafalan(context.Background(), "1", dto.ReportFormatHTML)
	require.NoError(t, err)
	assert.Equal(t, "laporan-hafalan-1.html", report.Filename)
	assert.Equal(t, "text/html; charset=utf-8", report.ContentType)
	assert.Contains(t, string(report.Body), "Belum ada data setoran hafalan")
	assert.Contains(t, string(report.Body), "Abdul Hakim")
}

func TestReportServiceHTMLIsDeterministic(t *testing.T) {
	hafalan := &fakeHafalanRepo{records: []models.HafalanRecord{
		{StudentID: "1", Date: day(3), Surah: "Al-Jin", Ayat: "1-5", Score: 91, Notes: "<b>bagus</b>"},
	}}
	svc := newTestReportService(t, hafalan, &fakeMurajaahRepo{})

	first, err := svc.StudentHafalan(context.Background(), "1", dto.ReportFormatHTML)
	require.NoError(t, err)
	second, err := svc.StudentHafalan(context.Background(), "1", dto.ReportFormatHTML)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first.Body, second.Body))
	assert.Contains(t, string(first.Body), "&lt;b&gt;bagus&lt;/b&gt;")
	assert.NotContains(t, string(first.Body), "<b>bagus</b>")
}

func TestReportServiceStudentMurajaahByType(t *testing.T) {
	murajaah := &fakeMurajaahRepo{records: []models.MurajaahRecord{
		{StudentID: "3", Date: day(4), Surah: "Al-Insan", Status: models.MurajaahNeedsWork, Type: models.MurajaahHome},
		{StudentID: "3", Date: day(5), Surah: "Al-Jin", Status: models.MurajaahFluent, Type: models.MurajaahClass},
	}}
	svc := newTestReportService(t, &fakeHafalanRepo{}, murajaah)
	student, _ := models.FindStudent("3")

	all := svc.StudentMurajaahDocument(student, "", murajaah.records, printedAt)
	assert.Equal(t, []string{"No", "Tanggal", "Surat", "Status", "Jenis"}, all.Sections[0].Headers)

	report, err := svc.StudentMurajaah(context.Background(), "3", models.MurajaahHome, dto.ReportFormatCSV)
	require.NoError(t, err)
	body := strings.TrimPrefix(string(report.Body), "\uFEFF")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "No,Tanggal,Surat,Status", lines[0])
	assert.Equal(t, "1,04 Maret 2025,Al-Insan,Kurang Lancar", lines[1])
}

func TestReportServiceComplianceDocument(t *testing.T) {
	svc := newTestReportService(t, &fakeHafalanRepo{}, &fakeMurajaahRepo{})
	roster := testRoster()
	recap := &dto.MurajaahComplianceResponse{
		Period:           dto.Period{Start: ptr(day(1)), End: ptr(day(31))},
		TotalSubmissions: 4,
		Compliance:       ClassifyCompliance(roster, map[string]int{"A": 3, "B": 1}, 3),
	}

	doc := svc.ComplianceDocument(recap, printedAt)
	assert.Equal(t, "Rekap Murajaah Hafalan (Orang Tua)", doc.Title)
	assert.Equal(t, []string{
		"Madrasah Nuurul Qur'an - Kelas 8A",
		"Periode: 01 Maret 2025 s/d 31 Maret 2025",
		"Dicetak: 31 Maret 2025",
	}, doc.Subtitles)
	require.Len(t, doc.Summary, 4)
	assert.Equal(t, "4", doc.Summary[0].Value)
	assert.Equal(t, "Siswa Memenuhi Target (>=3x)", doc.Summary[1].Label)
	assert.Equal(t, "1", doc.Summary[1].Value)
	for _, item := range doc.Summary {
		for _, r := range item.Label {
			assert.LessOrEqual(t, r, rune(0xff), "label %q is outside the PDF core font charset", item.Label)
		}
	}

	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "Daftar Siswa Tidak Setoran Murajaah", doc.Sections[1].Heading)
	assert.Equal(t, "Cahyo", doc.Sections[1].Rows[0].Cells[1].Value)
	assert.Equal(t, "Daftar Siswa Kurang Setoran (Kurang dari 3x)", doc.Sections[2].Heading)
	assert.Equal(t, "1x", doc.Sections[2].Rows[0].Cells[2].Value)
	assert.Equal(t, "row-target", doc.Sections[0].Rows[0].Class)
}

func TestReportServiceComplianceOmitsEmptyLists(t *testing.T) {
	svc := newTestReportService(t, &fakeHafalanRepo{}, &fakeMurajaahRepo{})
	recap := &dto.MurajaahComplianceResponse{
		Compliance: ClassifyCompliance(testRoster(), map[string]int{"A": 3, "B": 4, "C": 5}, 3),
	}

	doc := svc.ComplianceDocument(recap, printedAt)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Periode: - s/d -", doc.Subtitles[1])
}

func TestReportServiceRendersEveryFormat(t *testing.T) {
	hafalan := &fakeHafalanRepo{records: []models.HafalanRecord{
		{StudentID: "1", Date: day(3), Surah: "Al-Jin", Ayat: "1-5", Score: 91},
	}}
	svc := newTestReportService(t, hafalan, &fakeMurajaahRepo{})

	pdf, err := svc.HafalanRecap(context.Background(), dto.Period{}, dto.ReportFormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf.Body, []byte("%PDF")))
	assert.Equal(t, "rekap-hafalan.pdf", pdf.Filename)

	xlsx, err := svc.MurajaahCompliance(context.Background(), dto.Period{}, 0, dto.ReportFormatXLSX)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(xlsx.Body, []byte("PK")))
	assert.Equal(t, dto.ReportFormatXLSX.ContentType(), xlsx.ContentType)

	_, err = svc.HafalanRecap(context.Background(), dto.Period{}, dto.ReportFormat("docx"))
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	snapshot := svc.metrics.Snapshot()
	assert.Equal(t, uint64(2), snapshot.ReportsRendered)
}

func TestReportServiceUnknownStudent(t *testing.T) {
	svc := newTestReportService(t, &fakeHafalanRepo{}, &fakeMurajaahRepo{})

	_, err := svc.StudentHafalan(context.Background(), "8", dto.ReportFormatHTML)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
