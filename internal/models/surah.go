package models

import "strings"

// SurahInfo describes a chapter in the memorisation curriculum.
type SurahInfo struct {
	Name      string `json:"name"`
	TotalAyat int    `json:"totalAyat"`
}

// ShortName drops the "Al-" article used on dashboard charts.
func (s SurahInfo) ShortName() string {
	return strings.TrimPrefix(s.Name, "Al-")
}

var surahCatalog = []SurahInfo{
	{Name: "Al-Mursalat", TotalAyat: 50},
	{Name: "Al-Insan", TotalAyat: 31},
	{Name: "Al-Qiyamah", TotalAyat: 40},
	{Name: "Al-Muddatstsir", TotalAyat: 56},
	{Name: "Al-Muzammil", TotalAyat: 20},
	{Name: "Al-Jin", TotalAyat: 28},
}

var (
	regularCurriculum = []string{"Al-Mursalat", "Al-Insan", "Al-Qiyamah", "Al-Muddatstsir", "Al-Muzammil", "Al-Jin"}
	specialCurriculum = []string{"Al-Mursalat", "Al-Insan", "Al-Qiyamah", "Al-Muddatstsir", "Al-Muzammil", "Al-Jin"}
)

// SurahCatalog returns every known chapter.
func SurahCatalog() []SurahInfo {
	out := make([]SurahInfo, len(surahCatalog))
	copy(out, surahCatalog)
	return out
}

// FindSurah looks up a chapter by its exact name.
func FindSurah(name string) (SurahInfo, bool) {
	for _, s := range surahCatalog {
		if s.Name == name {
			return s, true
		}
	}
	return SurahInfo{}, false
}

// AyatOptions lists the selectable verse numbers 1..TotalAyat, empty for unknown chapters.
func AyatOptions(surah string) []int {
	info, ok := FindSurah(surah)
	if !ok {
		return []int{}
	}
	options := make([]int, info.TotalAyat)
	for i := range options {
		options[i] = i + 1
	}
	return options
}

// RegularCurriculum returns the chapters assigned to the regular track.
func RegularCurriculum() []string {
	return append([]string(nil), regularCurriculum...)
}

// SpecialCurriculum returns the chapters assigned to the special track.
func SpecialCurriculum() []string {
	return append([]string(nil), specialCurriculum...)
}

// CurriculumFor picks the chapter list for the student's track.
func CurriculumFor(s Student) []string {
	if s.IsSpecial {
		return SpecialCurriculum()
	}
	return RegularCurriculum()
}

// InCurriculum reports whether surah belongs to the student's track.
func InCurriculum(s Student, surah string) bool {
	for _, name := range CurriculumFor(s) {
		if name == surah {
			return true
		}
	}
	return false
}
