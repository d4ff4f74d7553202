package service

import (
	"math"
	"sort"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/dto"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
)

// DatedRecord is any per-student record the aggregation functions can consume.
type DatedRecord interface {
	RecordDate() models.Date
	RecordStudentID() string
}

// FilterByDateRange keeps records inside the closed interval [start, end].
// When either bound is nil the input is returned unchanged.
func FilterByDateRange[T DatedRecord](records []T, start, end *models.Date) []T {
	if start == nil || end == nil {
		return records
	}
	out := make([]T, 0, len(records))
	for _, record := range records {
		date := record.RecordDate()
		if date.Before(*start) || date.After(*end) {
			continue
		}
		out = append(out, record)
	}
	return out
}

// SubmissionCounts counts records per student id.
func SubmissionCounts[T DatedRecord](records []T) map[string]int {
	counts := make(map[string]int)
	for _, record := range records {
		counts[record.RecordStudentID()]++
	}
	return counts
}

// ClassifyCompliance partitions every roster student by comparing their count against minTarget.
// Students missing from counts have zero submissions.
func ClassifyCompliance(roster []models.Student, counts map[string]int, minTarget int) dto.Compliance {
	result := dto.Compliance{
		MinTarget: minTarget,
		Entries:   make([]dto.ComplianceEntry, 0, len(roster)),
		Met:       []dto.ComplianceEntry{},
		Below:     []dto.ComplianceEntry{},
		None:      []dto.ComplianceEntry{},
	}
	for _, student := range roster {
		count := counts[student.ID]
		entry := dto.ComplianceEntry{Student: student, DisplayName: student.DisplayName(), Count: count}
		switch {
		case count >= minTarget && count > 0:
			entry.Status = dto.ComplianceMet
			result.Met = append(result.Met, entry)
		case count > 0:
			entry.Status = dto.ComplianceBelow
			result.Below = append(result.Below, entry)
		default:
			entry.Status = dto.ComplianceNone
			result.None = append(result.None, entry)
		}
		result.Entries = append(result.Entries, entry)
	}
	return result
}

type scoreBand struct {
	name   string
	tag    string
	accept func(score int) bool
}

var scoreBands = []scoreBand{
	{name: "Sangat Lancar (90+)", tag: models.GradeExcellent.Tag, accept: func(s int) bool { return s >= 90 }},
	{name: "Lancar (80-89)", tag: models.GradeFluent.Tag, accept: func(s int) bool { return s >= 80 && s < 90 }},
	{name: "Kurang Lancar (70-79)", tag: models.GradeNeedsRepeat.Tag, accept: func(s int) bool { return s >= 70 && s < 80 }},
	{name: "Tidak Lancar (<70)", tag: models.GradeNotFluent.Tag, accept: func(s int) bool { return s < 70 }},
}

// ScoreDistribution counts records per grade band, omitting empty bands. Absences, marked by
// the Tidak Hadir surah or by score 0 under a policy that reads it as absence, get their own
// band when includeAbsent is set and are left out otherwise.
func ScoreDistribution(records []models.HafalanRecord, policy models.GradePolicy, includeAbsent bool) []dto.ScoreBucket {
	counts := make([]int, len(scoreBands))
	absent := 0
	for _, record := range records {
		if record.IsAbsence() || policy.IsAbsent(record.Score) {
			absent++
			continue
		}
		for i, band := range scoreBands {
			if band.accept(record.Score) {
				counts[i]++
				break
			}
		}
	}

	buckets := make([]dto.ScoreBucket, 0, len(scoreBands)+1)
	for i, band := range scoreBands {
		if counts[i] > 0 {
			buckets = append(buckets, dto.ScoreBucket{Name: band.name, Tag: band.tag, Count: counts[i]})
		}
	}
	if includeAbsent && absent > 0 {
		buckets = append(buckets, dto.ScoreBucket{Name: models.GradeAbsent.Label, Tag: models.GradeAbsent.Tag, Count: absent})
	}
	return buckets
}

// PerSurahCompletion reports, for each curriculum chapter, the distinct students with at least one
// record for it as a rounded percentage of rosterSize.
func PerSurahCompletion(records []models.HafalanRecord, curriculum []string, rosterSize int) []dto.SurahProgress {
	students := make(map[string]map[string]struct{}, len(curriculum))
	for _, record := range records {
		set, ok := students[record.Surah]
		if !ok {
			set = make(map[string]struct{})
			students[record.Surah] = set
		}
		set[record.StudentID] = struct{}{}
	}

	progress := make([]dto.SurahProgress, 0, len(curriculum))
	for _, surah := range curriculum {
		completed := len(students[surah])
		percentage := 0
		if rosterSize > 0 {
			percentage = roundHalfUp(float64(completed) * 100 / float64(rosterSize))
		}
		progress = append(progress, dto.SurahProgress{
			Surah:             surah,
			ShortName:         models.SurahInfo{Name: surah}.ShortName(),
			StudentsCompleted: completed,
			Percentage:        percentage,
		})
	}
	return progress
}

// StudentProgressSummary builds one summary per roster student, ordered by average score
// descending. Ties keep roster order. The absence sentinel never counts as a recited chapter.
func StudentProgressSummary(records []models.HafalanRecord, roster []models.Student) []dto.StudentProgress {
	byStudent := make(map[string][]models.HafalanRecord, len(roster))
	for _, record := range records {
		byStudent[record.StudentID] = append(byStudent[record.StudentID], record)
	}

	summaries := make([]dto.StudentProgress, 0, len(roster))
	for _, student := range roster {
		own := byStudent[student.ID]
		summary := dto.StudentProgress{
			Student:      student,
			DisplayName:  student.DisplayName(),
			TotalRecords: len(own),
		}
		if len(own) > 0 {
			total := 0
			surahs := make(map[string]struct{})
			var last models.Date
			for _, record := range own {
				total += record.Score
				if !record.IsAbsence() {
					surahs[record.Surah] = struct{}{}
				}
				if last.IsZero() || record.Date.After(last) {
					last = record.Date
				}
			}
			summary.AverageScore = roundHalfUp(float64(total) / float64(len(own)))
			summary.DistinctSurahs = len(surahs)
			summary.LastActivity = &last
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].AverageScore > summaries[j].AverageScore
	})
	return summaries
}

// TopPerformers returns up to limit students with at least one record, keeping the input order.
func TopPerformers(progress []dto.StudentProgress, limit int) []dto.StudentProgress {
	if limit <= 0 {
		return []dto.StudentProgress{}
	}
	top := make([]dto.StudentProgress, 0, limit)
	for _, entry := range progress {
		if len(top) >= limit {
			break
		}
		if entry.TotalRecords > 0 {
			top = append(top, entry)
		}
	}
	return top
}

// AverageScore is the rounded mean score of records, 0 when there are none.
func AverageScore(records []models.HafalanRecord) int {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, record := range records {
		total += record.Score
	}
	return roundHalfUp(float64(total) / float64(len(records)))
}

// DistinctStudents counts the students that appear in records.
func DistinctStudents[T DatedRecord](records []T) int {
	return len(SubmissionCounts(records))
}

func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}
