package models

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := map[int]GradeStatus{
		0:   GradeAbsent,
		1:   GradeNotFluent,
		69:  GradeNotFluent,
		70:  GradeNeedsRepeat,
		79:  GradeNeedsRepeat,
		80:  GradeFluent,
		89:  GradeFluent,
		90:  GradeExcellent,
		100: GradeExcellent,
	}
	for score, want := range cases {
		assert.Equal(t, want, Classify(score), "score %d", score)
	}
	assert.Equal(t, "Kurang Lancar (Mengulang)", Classify(75).Label)
	assert.Equal(t, "status-tidak-hadir", Classify(0).Tag)
}

func TestClassifyZeroAsFailingScore(t *testing.T) {
	policy := GradePolicy{ZeroMeansAbsent: false}
	assert.Equal(t, GradeNotFluent, policy.Classify(0))
	assert.False(t, policy.IsAbsent(0))
	assert.True(t, DefaultGradePolicy().IsAbsent(0))
}

func TestFormatRangeCollapseAndRoundTrip(t *testing.T) {
	for n := 1; n <= 56; n++ {
		assert.Equal(t, strconv.Itoa(n), FormatRange(n, n))
	}
	for a := 1; a <= 30; a++ {
		for b := 1; b <= 30; b++ {
			want := b - a
			if want < 0 {
				want = -want
			}
			assert.Equal(t, want+1, CountAyat(FormatRange(a, b)), "range %d-%d", a, b)
		}
	}
}

func TestParseRange(t *testing.T) {
	assert.Equal(t, AyatRange{Start: "5", End: "5"}, ParseRange("5"))
	assert.Equal(t, AyatRange{Start: "3", End: "7"}, ParseRange("3-7"))
	assert.Equal(t, AyatRange{Start: "3", End: "7"}, ParseRange(" 3 - 7 "))
	assert.Equal(t, AyatRange{}, ParseRange(""))
	assert.Equal(t, AyatRange{Start: "1", End: "2-3"}, ParseRange("1-2-3"))
}

func TestCountAyatMalformed(t *testing.T) {
	assert.Equal(t, 0, CountAyat(""))
	assert.Equal(t, 0, CountAyat("abc"))
	assert.Equal(t, 0, CountAyat("-"))
	assert.Equal(t, 1, CountAyat("7"))
	assert.Equal(t, 1, CountAyat("7a"))
	assert.Equal(t, 5, CountAyat("10-6"))
	assert.Equal(t, 0, CountAyat("1-2-3"))
	assert.Equal(t, 0, CountAyat("3-x"))
	assert.Equal(t, 0, CountAyat("3-"))
	assert.Equal(t, 0, CountAyat("-5"))
	assert.Equal(t, 3, CountAyat(" 3 - 5 "))
}

func TestAyatOptions(t *testing.T) {
	options := AyatOptions("Al-Muzammil")
	require.Len(t, options, 20)
	assert.Equal(t, 1, options[0])
	assert.Equal(t, 20, options[19])
	assert.Empty(t, AyatOptions("Al-Baqarah"))
}

func TestRosterIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Roster() {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}
	assert.Len(t, seen, 24)
	assert.False(t, seen["8"])

	imron, ok := FindStudent("25")
	require.True(t, ok)
	assert.Equal(t, "IMRON", imron.Name)

	_, ok = FindStudent("8")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Abdul Hakim", Student{Name: "ABDUL HAKIM"}.DisplayName())
	assert.Equal(t, "Muhammad Zaid Ar-Rahman", Student{Name: "MUHAMMAD ZAID AR-RAHMAN"}.DisplayName())
	assert.Equal(t, "Reguler", Student{}.Track())
	assert.Equal(t, "Khusus", Student{IsSpecial: true}.Track())
}

func TestCurriculum(t *testing.T) {
	regular := Student{ID: "1"}
	assert.Equal(t, RegularCurriculum(), CurriculumFor(regular))
	assert.True(t, InCurriculum(regular, "Al-Jin"))
	assert.False(t, InCurriculum(regular, "Al-Mulk"))
	for _, name := range CurriculumFor(Student{IsSpecial: true}) {
		_, ok := FindSurah(name)
		assert.True(t, ok, name)
	}
	assert.Equal(t, "Mursalat", SurahInfo{Name: "Al-Mursalat"}.ShortName())
}

func TestMarkAbsentOverridesForm(t *testing.T) {
	record := HafalanRecord{Surah: "Al-Jin", Ayat: "1-5", Score: 88}
	record.MarkAbsent()
	assert.Equal(t, AbsentSurah, record.Surah)
	assert.Equal(t, AbsentAyat, record.Ayat)
	assert.Equal(t, 0, record.Score)
	assert.Equal(t, AbsentNote, record.Notes)
	assert.True(t, record.IsAbsence())

	withNote := HafalanRecord{Notes: "sakit"}
	withNote.MarkAbsent()
	assert.Equal(t, "sakit", withNote.Notes)
}

func TestMurajaahEnums(t *testing.T) {
	assert.True(t, MurajaahStatus("Kurang Lancar").Valid())
	assert.False(t, MurajaahStatus("KurangLancar").Valid())
	assert.Equal(t, "status-sangat-lancar", MurajaahFluent.Tag())
	assert.Equal(t, "status-tidak-lancar", MurajaahNotFluent.Tag())
	assert.True(t, MurajaahHome.Valid())
	assert.False(t, MurajaahType("school").Valid())
	assert.Equal(t, "Rumah", MurajaahHome.Label())
}

func TestDateFormatsAndJSON(t *testing.T) {
	d := NewDate(2025, time.January, 2)
	assert.Equal(t, "2025-01-02", d.String())
	assert.Equal(t, "02 Januari 2025", d.FormatLong())
	assert.Equal(t, "02/01/2025", d.FormatShort())
	assert.Equal(t, "-", Date{}.FormatLong())

	raw, err := json.Marshal(struct {
		Date Date `json:"date"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-01-02"}`, string(raw))

	var payload struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-03-31"}`), &payload))
	assert.True(t, payload.Date.Equal(NewDate(2025, time.March, 31)))

	require.NoError(t, json.Unmarshal([]byte(`{"date":""}`), &payload))
	assert.True(t, payload.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"31/03/2025"}`), &payload))
}

func TestDateScanAndValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-05-06", d.String())

	require.NoError(t, d.Scan([]byte("2025-05-07T00:00:00Z")))
	assert.Equal(t, "2025-05-07", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	value, err := NewDate(2025, 5, 8).Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-05-08", value)
}

func TestRandomQuoteDeterministicWithSource(t *testing.T) {
	first := RandomQuote(rand.New(rand.NewSource(7)))
	second := RandomQuote(rand.New(rand.NewSource(7)))
	assert.Equal(t, first, second)
	assert.Len(t, Quotes(), 5)
}
