package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
)

type fakeHafalanRepo struct {
	records []models.HafalanRecord
	err     error
	writes  int
	seq     int
}

func (f *fakeHafalanRepo) List(_ context.Context, filter models.HafalanFilter) ([]models.HafalanRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.HafalanRecord, 0, len(f.records))
	for _, record := range f.records {
		if filter.StudentID != "" && record.StudentID != filter.StudentID {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (f *fakeHafalanRepo) FindByID(_ context.Context, id string) (*models.HafalanRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			record := f.records[i]
			return &record, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeHafalanRepo) Create(_ context.Context, record *models.HafalanRecord) error {
	f.writes++
	if f.err != nil {
		return f.err
	}
	f.seq++
	record.ID = "h-" + strconv.Itoa(f.seq)
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeHafalanRepo) Update(_ context.Context, id string, record *models.HafalanRecord) error {
	f.writes++
	if f.err != nil {
		return f.err
	}
	for i := range f.records {
		if f.records[i].ID == id {
			record.ID = id
			f.records[i] = *record
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeHafalanRepo) Delete(_ context.Context, id string) error {
	f.writes++
	if f.err != nil {
		return f.err
	}
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type memoryCacheRepo struct {
	store       map[string][]byte
	invalidated []string
	getErr      error
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	payload, ok := m.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if m.store == nil {
		m.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = payload
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	m.invalidated = append(m.invalidated, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	removed := 0
	for key := range m.store {
		if strings.HasPrefix(key, prefix) {
			delete(m.store, key)
			removed++
		}
	}
	return removed, nil
}

func newTestHafalanService(repo *fakeHafalanRepo, cacheRepo *memoryCacheRepo) *HafalanService {
	return NewHafalanService(HafalanServiceParams{
		Repo:    repo,
		Cache:   NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true),
		Metrics: NewMetricsService(),
		Logger:  zap.NewNop(),
	})
}

func validHafalanInput() HafalanInput {
	return HafalanInput{
		Date:      models.NewDate(2025, time.January, 6),
		Surah:     "Al-Mursalat",
		AyatStart: 1,
		AyatEnd:   10,
		Score:     92,
		Notes:     " makhraj baik ",
	}
}

func TestHafalanServiceCreateStoresFormattedRecord(t *testing.T) {
	repo := &fakeHafalanRepo{}
	cacheRepo := &memoryCacheRepo{}
	svc := newTestHafalanService(repo, cacheRepo)

	record, err := svc.Create(context.Background(), "1", validHafalanInput())
	require.NoError(t, err)
	assert.Equal(t, "h-1", record.ID)
	assert.Equal(t, "1", record.StudentID)
	assert.Equal(t, "1-10", record.Ayat)
	assert.Equal(t, 92, record.Score)
	assert.Equal(t, "makhraj baik", record.Notes)
	assert.Equal(t, []string{recapCachePattern}, cacheRepo.invalidated)
}

func TestHafalanServiceCreateCollapsesSingleAyat(t *testing.T) {
	repo := &fakeHafalanRepo{}
	svc := newTestHafalanService(repo, &memoryCacheRepo{})

	input := validHafalanInput()
	input.AyatStart, input.AyatEnd = 5, 5
	record, err := svc.Create(context.Background(), "1", input)
	require.NoError(t, err)
	assert.Equal(t, "5", record.Ayat)
}

func TestHafalanServiceCreateAbsentNormalizes(t *testing.T) {
	repo := &fakeHafalanRepo{}
	svc := newTestHafalanService(repo, &memoryCacheRepo{})

	record, err := svc.Create(context.Background(), "2", HafalanInput{
		Date:   models.NewDate(2025, time.January, 7),
		Surah:  "Al-Mursalat",
		Score:  88,
		Absent: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AbsentSurah, record.Surah)
	assert.Equal(t, models.AbsentAyat, record.Ayat)
	assert.Equal(t, 0, record.Score)
	assert.Equal(t, models.AbsentNote, record.Notes)
	assert.True(t, record.IsAbsence())
}

func TestHafalanServiceCreateAbsentKeepsNote(t *testing.T) {
	svc := newTestHafalanService(&fakeHafalanRepo{}, &memoryCacheRepo{})

	record, err := svc.Create(context.Background(), "2", HafalanInput{
		Date:   models.NewDate(2025, time.January, 7),
		Notes:  "sakit",
		Absent: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "sakit", record.Notes)
}

func TestHafalanServiceCreateValidation(t *testing.T) {
	cases := []struct {
		name    string
		student string
		mutate  func(*HafalanInput)
		code    string
		message string
	}{
		{name: "missing date", student: "1", mutate: func(in *HafalanInput) { in.Date = models.Date{} }, code: appErrors.ErrValidation.Code, message: msgDateRequired},
		{name: "missing surah", student: "1", mutate: func(in *HafalanInput) { in.Surah = " " }, code: appErrors.ErrValidation.Code, message: msgIncompleteForm},
		{name: "missing score", student: "1", mutate: func(in *HafalanInput) { in.Score = 0 }, code: appErrors.ErrValidation.Code, message: msgIncompleteForm},
		{name: "score above range", student: "1", mutate: func(in *HafalanInput) { in.Score = 101 }, code: appErrors.ErrValidation.Code, message: msgScoreRange},
		{name: "negative score", student: "1", mutate: func(in *HafalanInput) { in.Score = -5 }, code: appErrors.ErrValidation.Code, message: msgScoreRange},
		{name: "surah outside track", student: "1", mutate: func(in *HafalanInput) { in.Surah = "An-Naba" }, code: appErrors.ErrValidation.Code, message: msgSurahNotInTrack},
		{name: "ayat beyond surah", student: "1", mutate: func(in *HafalanInput) { in.AyatEnd = 51 }, code: appErrors.ErrValidation.Code, message: "Ayat harus antara 1-50"},
		{name: "reversed range", student: "1", mutate: func(in *HafalanInput) { in.AyatStart, in.AyatEnd = 10, 3 }, code: appErrors.ErrValidation.Code, message: msgAyatOrder},
		{name: "unknown student", student: "8", mutate: func(*HafalanInput) {}, code: appErrors.ErrNotFound.Code, message: msgStudentNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeHafalanRepo{}
			svc := newTestHafalanService(repo, &memoryCacheRepo{})
			input := validHafalanInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), tc.student, input)
			require.Error(t, err)
			var appErr *appErrors.Error
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.code, appErr.Code)
			assert.Equal(t, tc.message, appErr.Message)
			assert.Zero(t, repo.writes)
		})
	}
}

func TestHafalanServiceStoreFailureSurfaces(t *testing.T) {
	repo := &fakeHafalanRepo{err: errors.New("connection refused")}
	svc := newTestHafalanService(repo, &memoryCacheRepo{})

	_, err := svc.List(context.Background(), "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrStore)

	_, err = svc.Create(context.Background(), "1", validHafalanInput())
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrStore.Code, appErr.Code)
	assert.Equal(t, msgSave, appErr.Message)
}

func TestHafalanServiceUpdateAndDelete(t *testing.T) {
	repo := &fakeHafalanRepo{}
	cacheRepo := &memoryCacheRepo{}
	svc := newTestHafalanService(repo, cacheRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "1", validHafalanInput())
	require.NoError(t, err)

	input := validHafalanInput()
	input.Score = 75
	updated, err := svc.Update(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 75, updated.Score)
	assert.Equal(t, "1", updated.StudentID)

	require.NoError(t, svc.Delete(ctx, created.ID))
	records, err := svc.List(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Len(t, cacheRepo.invalidated, 3)
}

func TestHafalanServiceMissingRecord(t *testing.T) {
	svc := newTestHafalanService(&fakeHafalanRepo{}, &memoryCacheRepo{})

	_, err := svc.Update(context.Background(), "missing", validHafalanInput())
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	err = svc.Delete(context.Background(), "missing")
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, msgHafalanNotFound, appErr.Message)
}

func TestHafalanServiceListFiltersByStudent(t *testing.T) {
	repo := &fakeHafalanRepo{records: []models.HafalanRecord{
		{ID: "a", StudentID: "1", Surah: "Al-Mursalat", Score: 90},
		{ID: "b", StudentID: "2", Surah: "Al-Mursalat", Score: 80},
	}}
	svc := newTestHafalanService(repo, &memoryCacheRepo{})

	records, err := svc.List(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].ID)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
