package dto

import (
	"time"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
)

// Period is an optional closed date interval. A missing bound disables filtering.
type Period struct {
	Start *models.Date `json:"start,omitempty"`
	End   *models.Date `json:"end,omitempty"`
}

// Bounded reports whether both bounds are present.
func (p Period) Bounded() bool {
	return p.Start != nil && p.End != nil
}

// ScoreBucket counts hafalan records in one grade band.
type ScoreBucket struct {
	Name  string `json:"name"`
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// SurahProgress reports how many roster students have recited a chapter.
type SurahProgress struct {
	Surah             string `json:"surah"`
	ShortName         string `json:"shortName"`
	StudentsCompleted int    `json:"studentsCompleted"`
	Percentage        int    `json:"percentage"`
}

// StudentProgress summarises one student's hafalan activity.
type StudentProgress struct {
	Student        models.Student `json:"student"`
	DisplayName    string         `json:"displayName"`
	TotalRecords   int            `json:"totalRecords"`
	AverageScore   int            `json:"averageScore"`
	DistinctSurahs int            `json:"distinctSurahs"`
	LastActivity   *models.Date   `json:"lastActivity"`
}

// ComplianceStatus classifies a student's submission count against the target.
type ComplianceStatus string

const (
	// ComplianceMet means the student reached the target.
	ComplianceMet ComplianceStatus = "target"
	// ComplianceBelow means at least one submission but under the target.
	ComplianceBelow ComplianceStatus = "kurang"
	// ComplianceNone means no submission in the period.
	ComplianceNone ComplianceStatus = "tidak"
)

// Label returns the report wording of the status.
func (s ComplianceStatus) Label() string {
	switch s {
	case ComplianceMet:
		return "Memenuhi Target"
	case ComplianceBelow:
		return "Kurang dari Target"
	default:
		return "Tidak Setoran"
	}
}

// ComplianceEntry is one roster student's submission count and status.
type ComplianceEntry struct {
	Student     models.Student   `json:"student"`
	DisplayName string           `json:"displayName"`
	Count       int              `json:"count"`
	Status      ComplianceStatus `json:"status"`
}

// Compliance partitions the whole roster by submission count.
type Compliance struct {
	MinTarget int               `json:"minTarget"`
	Entries   []ComplianceEntry `json:"entries"`
	Met       []ComplianceEntry `json:"met"`
	Below     []ComplianceEntry `json:"below"`
	None      []ComplianceEntry `json:"none"`
}

// DashboardResponse is the class statistics payload.
type DashboardResponse struct {
	TotalStudents       int               `json:"totalStudents"`
	StudentsWithRecords int               `json:"studentsWithRecords"`
	TotalHafalan        int               `json:"totalHafalan"`
	TotalMurajaah       int               `json:"totalMurajaah"`
	AverageScore        int               `json:"averageScore"`
	ScoreDistribution   []ScoreBucket     `json:"scoreDistribution"`
	SurahProgress       []SurahProgress   `json:"surahProgress"`
	StudentProgress     []StudentProgress `json:"studentProgress"`
	TopPerformers       []StudentProgress `json:"topPerformers"`
	GeneratedAt         time.Time         `json:"generatedAt"`
}

// MurajaahComplianceResponse is the parent home-revision recap.
type MurajaahComplianceResponse struct {
	Period           Period     `json:"period"`
	TotalSubmissions int        `json:"totalSubmissions"`
	Compliance       Compliance `json:"compliance"`
}

// HafalanRecapRow is a class-wide hafalan record annotated for display.
type HafalanRecapRow struct {
	models.HafalanRecord
	StudentName string             `json:"studentName"`
	Grade       models.GradeStatus `json:"grade"`
	AyatCount   int                `json:"ayatCount"`
}

// HafalanRecapResponse lists every hafalan record of the class, newest first.
type HafalanRecapResponse struct {
	Period  Period            `json:"period"`
	Total   int               `json:"total"`
	Records []HafalanRecapRow `json:"records"`
}
