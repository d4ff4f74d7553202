package models

import "strings"

// Student is a member of the class roster. IDs are foreign keys into the record tables
// and must never be renumbered or reused.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsSpecial bool   `json:"isSpecial"`
}

// Track names the curriculum the student follows.
func (s Student) Track() string {
	if s.IsSpecial {
		return "Khusus"
	}
	return "Reguler"
}

// DisplayName converts the upper-case roster name into title case ("ABDUL HAKIM" -> "Abdul Hakim").
func (s Student) DisplayName() string {
	lower := []rune(strings.ToLower(s.Name))
	atWordStart := true
	for i, r := range lower {
		if atWordStart && r >= 'a' && r <= 'z' {
			lower[i] = r - 'a' + 'A'
		}
		atWordStart = !isWordRune(r)
	}
	return string(lower)
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}

// roster is compiled in. New students get a fresh id; id 8 is retired.
var roster = []Student{
	{ID: "1", Name: "ABDUL HAKIM"},
	{ID: "2", Name: "ABDURROZZAQ ASSYABANI"},
	{ID: "3", Name: "ANFIELLANO RAGHIB NAROTTAMA"},
	{ID: "4", Name: "DAFFA SATRIOTETHUKO"},
	{ID: "5", Name: "DEVIN AHZA PURBA"},
	{ID: "6", Name: "ETHAN YUSUF HABIBBULAH"},
	{ID: "7", Name: "GHIFARI ALFARIZY"},
	{ID: "25", Name: "IMRON"},
	{ID: "9", Name: "KENZIE LUTFAN PERMADI"},
	{ID: "10", Name: "KHALISH IBNU ABDURAHMAN"},
	{ID: "11", Name: "MUHAMAD IBRAHIM"},
	{ID: "12", Name: "MUHAMMAD AZAM AL MUTAQIN"},
	{ID: "13", Name: "MUHAMMAD AZMY ABDILLAH"},
	{ID: "14", Name: "MUHAMMAD DENY ARDIANTO"},
	{ID: "15", Name: "MUHAMMAD FATHURAHMAN YUSUP"},
	{ID: "16", Name: "MUHAMMAD FAUZUL KABIR"},
	{ID: "17", Name: "MUHAMMAD NIZAM"},
	{ID: "18", Name: "MUHAMMAD ROYYAN SAPUTRA"},
	{ID: "19", Name: "MUHAMMAD ZAID AR-RAHMAN"},
	{ID: "20", Name: "NAUFAL HERMAWAN"},
	{ID: "21", Name: "RANGGA EL-QADRY"},
	{ID: "22", Name: "TSANY ALZAM ABHINAYA"},
	{ID: "23", Name: "YAHYA ABDURRASYID"},
	{ID: "24", Name: "ZIDDAN HUBBILLAH"},
}

// Roster returns a copy of the class roster in display order.
func Roster() []Student {
	out := make([]Student, len(roster))
	copy(out, roster)
	return out
}

// FindStudent looks up a roster entry by id.
func FindStudent(id string) (Student, bool) {
	for _, s := range roster {
		if s.ID == id {
			return s, true
		}
	}
	return Student{}, false
}
