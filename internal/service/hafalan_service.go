package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
)

type hafalanRepository interface {
	List(ctx context.Context, filter models.HafalanFilter) ([]models.HafalanRecord, error)
	FindByID(ctx context.Context, id string) (*models.HafalanRecord, error)
	Create(ctx context.Context, record *models.HafalanRecord) error
	Update(ctx context.Context, id string, record *models.HafalanRecord) error
	Delete(ctx context.Context, id string) error
}

// HafalanInput is the teacher's hafalan form. When Absent is set only Date is required.
type HafalanInput struct {
	Date      models.Date `json:"date"`
	Surah     string      `json:"surah"`
	AyatStart int         `json:"ayatStart"`
	AyatEnd   int         `json:"ayatEnd"`
	Score     int         `json:"score"`
	Notes     string      `json:"notes"`
	Absent    bool        `json:"absent"`
}

type hafalanForm struct {
	Surah     string `validate:"required"`
	AyatStart int    `validate:"required"`
	AyatEnd   int    `validate:"required"`
	Score     int    `validate:"required,min=1,max=100"`
	Notes     string `validate:"max=1000"`
}

// HafalanServiceParams groups constructor dependencies.
type HafalanServiceParams struct {
	Repo      hafalanRepository
	Cache     *CacheService
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
}

// HafalanService validates and persists hafalan records.
type HafalanService struct {
	repo      hafalanRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHafalanService constructs a HafalanService.
func NewHafalanService(params HafalanServiceParams) *HafalanService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HafalanService{
		repo:      params.Repo,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
	}
}

// List returns a student's hafalan records newest first.
func (s *HafalanService) List(ctx context.Context, studentID string) ([]models.HafalanRecord, error) {
	if _, err := lookupStudent(studentID); err != nil {
		return nil, err
	}
	return s.list(ctx, models.HafalanFilter{StudentID: studentID})
}

// ListAll returns every hafalan record of the class newest first.
func (s *HafalanService) ListAll(ctx context.Context) ([]models.HafalanRecord, error) {
	return s.list(ctx, models.HafalanFilter{})
}

func (s *HafalanService) list(ctx context.Context, filter models.HafalanFilter) ([]models.HafalanRecord, error) {
	start := time.Now()
	records, err := s.repo.List(ctx, filter)
	observeStore(s.metrics, "hafalan.list", start, err)
	if err != nil {
		s.logger.Error("list hafalan records failed", zap.String("student_id", filter.StudentID), zap.Error(err))
		return nil, storeFailure(err, msgLoadHafalan, "")
	}
	return records, nil
}

// Get returns a single hafalan record.
func (s *HafalanService) Get(ctx context.Context, id string) (*models.HafalanRecord, error) {
	start := time.Now()
	record, err := s.repo.FindByID(ctx, id)
	observeStore(s.metrics, "hafalan.get", start, err)
	if err != nil {
		return nil, storeFailure(err, msgLoadHafalan, msgHafalanNotFound)
	}
	return record, nil
}

// Create validates the form for studentID and stores it. The returned record carries the stored values.
func (s *HafalanService) Create(ctx context.Context, studentID string, input HafalanInput) (*models.HafalanRecord, error) {
	student, err := lookupStudent(studentID)
	if err != nil {
		return nil, err
	}
	record, err := s.buildRecord(student, input)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.repo.Create(ctx, record)
	observeStore(s.metrics, "hafalan.create", start, err)
	if err != nil {
		s.logger.Error("create hafalan record failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, storeFailure(err, msgSave, "")
	}

	s.afterMutation(ctx, "create")
	return record, nil
}

// Update re-validates the form against the record's student and replaces the stored values.
func (s *HafalanService) Update(ctx context.Context, id string, input HafalanInput) (*models.HafalanRecord, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	student, err := lookupStudent(existing.StudentID)
	if err != nil {
		return nil, err
	}
	record, err := s.buildRecord(student, input)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.repo.Update(ctx, id, record)
	observeStore(s.metrics, "hafalan.update", start, err)
	if err != nil {
		s.logger.Error("update hafalan record failed", zap.String("id", id), zap.Error(err))
		return nil, storeFailure(err, msgUpdate, msgHafalanNotFound)
	}

	s.afterMutation(ctx, "update")
	return record, nil
}

// Delete removes a hafalan record.
func (s *HafalanService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	observeStore(s.metrics, "hafalan.delete", start, err)
	if err != nil {
		s.logger.Error("delete hafalan record failed", zap.String("id", id), zap.Error(err))
		return storeFailure(err, msgDeleteHafalan, msgHafalanNotFound)
	}

	s.afterMutation(ctx, "delete")
	return nil
}

// buildRecord validates input and produces the record to persist. Validation failures never reach the store.
func (s *HafalanService) buildRecord(student models.Student, input HafalanInput) (*models.HafalanRecord, error) {
	if input.Date.IsZero() {
		return nil, validationError(msgDateRequired)
	}
	record := &models.HafalanRecord{
		StudentID: student.ID,
		Date:      input.Date,
		Notes:     strings.TrimSpace(input.Notes),
	}
	if input.Absent {
		record.MarkAbsent()
		return record, nil
	}

	form := hafalanForm{
		Surah:     strings.TrimSpace(input.Surah),
		AyatStart: input.AyatStart,
		AyatEnd:   input.AyatEnd,
		Score:     input.Score,
		Notes:     record.Notes,
	}
	if err := s.validator.Struct(form); err != nil {
		return nil, validationError(formMessage(err, msgIncompleteForm))
	}
	if !models.InCurriculum(student, form.Surah) {
		return nil, validationError(msgSurahNotInTrack)
	}
	info, _ := models.FindSurah(form.Surah)
	if form.AyatStart < 1 || form.AyatStart > info.TotalAyat || form.AyatEnd < 1 || form.AyatEnd > info.TotalAyat {
		return nil, validationError("Ayat harus antara 1-" + strconv.Itoa(info.TotalAyat))
	}
	if form.AyatEnd < form.AyatStart {
		return nil, validationError(msgAyatOrder)
	}

	record.Surah = form.Surah
	record.Ayat = models.FormatRange(form.AyatStart, form.AyatEnd)
	record.Score = form.Score
	return record, nil
}

func (s *HafalanService) afterMutation(ctx context.Context, action string) {
	s.metrics.RecordMutation("hafalan", action)
	s.cache.InvalidateRecaps(ctx)
}
