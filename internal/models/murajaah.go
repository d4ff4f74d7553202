package models

import "time"

// MurajaahStatus is the fluency verdict of a revision session.
type MurajaahStatus string

const (
	// MurajaahFluent marks a fluent revision.
	MurajaahFluent MurajaahStatus = "Lancar"
	// MurajaahNeedsWork marks a revision with hesitations.
	MurajaahNeedsWork MurajaahStatus = "Kurang Lancar"
	// MurajaahNotFluent marks a failed revision.
	MurajaahNotFluent MurajaahStatus = "Tidak Lancar"
)

// MurajaahStatuses lists every status in display order.
func MurajaahStatuses() []MurajaahStatus {
	return []MurajaahStatus{MurajaahFluent, MurajaahNeedsWork, MurajaahNotFluent}
}

// Valid reports whether s is a known status.
func (s MurajaahStatus) Valid() bool {
	switch s {
	case MurajaahFluent, MurajaahNeedsWork, MurajaahNotFluent:
		return true
	}
	return false
}

// Tag returns the style tag used by the reports.
func (s MurajaahStatus) Tag() string {
	switch s {
	case MurajaahFluent:
		return "status-sangat-lancar"
	case MurajaahNeedsWork:
		return "status-kurang-lancar"
	default:
		return "status-tidak-lancar"
	}
}

// MurajaahType discriminates who logged the revision.
type MurajaahType string

const (
	// MurajaahClass is teacher-logged in-class revision.
	MurajaahClass MurajaahType = "class"
	// MurajaahHome is parent-logged revision at home.
	MurajaahHome MurajaahType = "home"
)

// Valid reports whether t is a known type.
func (t MurajaahType) Valid() bool {
	return t == MurajaahClass || t == MurajaahHome
}

// Label names the type in reports.
func (t MurajaahType) Label() string {
	if t == MurajaahHome {
		return "Rumah"
	}
	return "Kelas"
}

// MurajaahRecord is a revision session.
type MurajaahRecord struct {
	ID        string         `db:"id" json:"id"`
	StudentID string         `db:"student_id" json:"studentId"`
	Date      Date           `db:"date" json:"date"`
	Surah     string         `db:"surah" json:"surah"`
	Status    MurajaahStatus `db:"status" json:"status"`
	Type      MurajaahType   `db:"type" json:"type"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

// RecordDate implements the aggregation record contract.
func (r MurajaahRecord) RecordDate() Date { return r.Date }

// RecordStudentID implements the aggregation record contract.
func (r MurajaahRecord) RecordStudentID() string { return r.StudentID }

// MurajaahFilter scopes murajaah listings. Empty fields are not filtered on.
type MurajaahFilter struct {
	StudentID string
	Type      MurajaahType
}
