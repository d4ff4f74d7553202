package dto

import "github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"

// StudentResponse is a roster entry with its display fields resolved.
type StudentResponse struct {
	models.Student
	DisplayName string   `json:"displayName"`
	Track       string   `json:"track"`
	Curriculum  []string `json:"curriculum"`
}

// NewStudentResponse resolves the display fields of s.
func NewStudentResponse(s models.Student) StudentResponse {
	return StudentResponse{
		Student:     s,
		DisplayName: s.DisplayName(),
		Track:       s.Track(),
		Curriculum:  models.CurriculumFor(s),
	}
}

// AyatOptionsResponse lists the selectable verse numbers of a chapter.
type AyatOptionsResponse struct {
	Surah   string `json:"surah"`
	Options []int  `json:"options"`
}
