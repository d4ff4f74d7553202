package models

// GradeStatus is the label and style tag shown for a hafalan score.
type GradeStatus struct {
	Label string `json:"label"`
	Tag   string `json:"tag"`
}

// Grade bands, checked in order.
var (
	GradeAbsent      = GradeStatus{Label: "Tidak Hadir", Tag: "status-tidak-hadir"}
	GradeExcellent   = GradeStatus{Label: "Sangat Lancar", Tag: "status-sangat-lancar"}
	GradeFluent      = GradeStatus{Label: "Lancar", Tag: "status-lancar"}
	GradeNeedsRepeat = GradeStatus{Label: "Kurang Lancar (Mengulang)", Tag: "status-kurang-lancar"}
	GradeNotFluent   = GradeStatus{Label: "Tidak Lancar", Tag: "status-tidak-lancar"}
)

// Score bounds accepted by the record forms, and the lower edge of each band.
const (
	MinScore = 1
	MaxScore = 100

	gradeExcellentMin = 90
	gradeFluentMin    = 80
	gradeRepeatMin    = 70
)

// GradePolicy decides how the reserved score 0 is read.
type GradePolicy struct {
	// ZeroMeansAbsent classifies score 0 as Tidak Hadir. When false, 0 is an ordinary failing score.
	ZeroMeansAbsent bool
}

// DefaultGradePolicy treats score 0 as absence.
func DefaultGradePolicy() GradePolicy {
	return GradePolicy{ZeroMeansAbsent: true}
}

// Classify maps a score to its grade band. Out-of-range scores are not re-validated here.
func (p GradePolicy) Classify(score int) GradeStatus {
	switch {
	case score == 0 && p.ZeroMeansAbsent:
		return GradeAbsent
	case score >= gradeExcellentMin:
		return GradeExcellent
	case score >= gradeFluentMin:
		return GradeFluent
	case score >= gradeRepeatMin:
		return GradeNeedsRepeat
	default:
		return GradeNotFluent
	}
}

// IsAbsent reports whether score is the absence marker under this policy.
func (p GradePolicy) IsAbsent(score int) bool {
	return p.ZeroMeansAbsent && score == 0
}

// Classify applies the default policy.
func Classify(score int) GradeStatus {
	return DefaultGradePolicy().Classify(score)
}
