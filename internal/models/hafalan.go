package models

import "time"

// Absence sentinel values stored on a hafalan record when the student did not attend.
const (
	AbsentSurah = "Tidak Hadir"
	AbsentAyat  = "-"
	AbsentNote  = "Siswa tidak hadir"
)

// HafalanRecord is a graded memorisation submission.
type HafalanRecord struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"studentId"`
	Date      Date      `db:"date" json:"date"`
	Surah     string    `db:"surah" json:"surah"`
	Ayat      string    `db:"ayat" json:"ayat"`
	Score     int       `db:"score" json:"score"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// RecordDate implements the aggregation record contract.
func (r HafalanRecord) RecordDate() Date { return r.Date }

// RecordStudentID implements the aggregation record contract.
func (r HafalanRecord) RecordStudentID() string { return r.StudentID }

// IsAbsence reports whether the record carries the absence sentinel.
func (r HafalanRecord) IsAbsence() bool {
	return r.Surah == AbsentSurah
}

// MarkAbsent overwrites chapter, range and score with the absence sentinel.
// An empty note is replaced by the default absence note.
func (r *HafalanRecord) MarkAbsent() {
	r.Surah = AbsentSurah
	r.Ayat = AbsentAyat
	r.Score = 0
	if r.Notes == "" {
		r.Notes = AbsentNote
	}
}

// HafalanFilter scopes hafalan listings. An empty StudentID lists the whole class.
type HafalanFilter struct {
	StudentID string
}
