package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
)

type murajaahRepository interface {
	List(ctx context.Context, filter models.MurajaahFilter) ([]models.MurajaahRecord, error)
	FindByID(ctx context.Context, id string) (*models.MurajaahRecord, error)
	Create(ctx context.Context, record *models.MurajaahRecord) error
	Update(ctx context.Context, id string, record *models.MurajaahRecord) error
	Delete(ctx context.Context, id string) error
}

// MurajaahInput is the revision form shared by teachers (class) and parents (home).
type MurajaahInput struct {
	Date   models.Date           `json:"date"`
	Surah  string                `json:"surah"`
	Status models.MurajaahStatus `json:"status"`
	Type   models.MurajaahType   `json:"type"`
}

type murajaahForm struct {
	Surah  string `validate:"required,max=100"`
	Status string `validate:"required"`
	Type   string `validate:"required"`
}

// MurajaahServiceParams groups constructor dependencies.
type MurajaahServiceParams struct {
	Repo      murajaahRepository
	Cache     *CacheService
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
}

// MurajaahService validates and persists murajaah records.
type MurajaahService struct {
	repo      murajaahRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMurajaahService constructs a MurajaahService.
func NewMurajaahService(params MurajaahServiceParams) *MurajaahService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MurajaahService{
		repo:      params.Repo,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
	}
}

// List returns a student's murajaah records newest first, optionally narrowed to one type.
func (s *MurajaahService) List(ctx context.Context, studentID string, kind models.MurajaahType) ([]models.MurajaahRecord, error) {
	if _, err := lookupStudent(studentID); err != nil {
		return nil, err
	}
	if err := checkType(kind); err != nil {
		return nil, err
	}
	return s.list(ctx, models.MurajaahFilter{StudentID: studentID, Type: kind})
}

// ListAll returns every murajaah record of the class, optionally narrowed to one type.
func (s *MurajaahService) ListAll(ctx context.Context, kind models.MurajaahType) ([]models.MurajaahRecord, error) {
	if err := checkType(kind); err != nil {
		return nil, err
	}
	return s.list(ctx, models.MurajaahFilter{Type: kind})
}

func (s *MurajaahService) list(ctx context.Context, filter models.MurajaahFilter) ([]models.MurajaahRecord, error) {
	start := time.Now()
	records, err := s.repo.List(ctx, filter)
	observeStore(s.metrics, "murajaah.list", start, err)
	if err != nil {
		s.logger.Error("list murajaah records failed",
			zap.String("student_id", filter.StudentID),
			zap.String("type", string(filter.Type)),
			zap.Error(err))
		return nil, storeFailure(err, msgLoadMurajaah, "")
	}
	return records, nil
}

// Get returns a single murajaah record.
func (s *MurajaahService) Get(ctx context.Context, id string) (*models.MurajaahRecord, error) {
	start := time.Now()
	record, err := s.repo.FindByID(ctx, id)
	observeStore(s.metrics, "murajaah.get", start, err)
	if err != nil {
		return nil, storeFailure(err, msgLoadMurajaah, msgMurajaahNotFound)
	}
	return record, nil
}

// Create stores a revision session. Class sessions need a teacher session; home sessions are
// logged by parents and are accepted without one.
func (s *MurajaahService) Create(ctx context.Context, session *models.TeacherSession, studentID string, input MurajaahInput) (*models.MurajaahRecord, error) {
	if _, err := lookupStudent(studentID); err != nil {
		return nil, err
	}
	if input.Type == "" {
		input.Type = models.MurajaahHome
	}
	record, err := s.buildRecord(studentID, input)
	if err != nil {
		return nil, err
	}
	if record.Type == models.MurajaahClass && session == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Login guru diperlukan untuk mencatat murajaah kelas")
	}

	start := time.Now()
	err = s.repo.Create(ctx, record)
	observeStore(s.metrics, "murajaah.create", start, err)
	if err != nil {
		s.logger.Error("create murajaah record failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, storeFailure(err, msgSave, "")
	}

	s.afterMutation(ctx, "create")
	return record, nil
}

// Update replaces the stored values of a murajaah record.
func (s *MurajaahService) Update(ctx context.Context, id string, input MurajaahInput) (*models.MurajaahRecord, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Type == "" {
		input.Type = existing.Type
	}
	record, err := s.buildRecord(existing.StudentID, input)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.repo.Update(ctx, id, record)
	observeStore(s.metrics, "murajaah.update", start, err)
	if err != nil {
		s.logger.Error("update murajaah record failed", zap.String("id", id), zap.Error(err))
		return nil, storeFailure(err, msgUpdate, msgMurajaahNotFound)
	}

	s.afterMutation(ctx, "update")
	return record, nil
}

// Delete removes a murajaah record.
func (s *MurajaahService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	observeStore(s.metrics, "murajaah.delete", start, err)
	if err != nil {
		s.logger.Error("delete murajaah record failed", zap.String("id", id), zap.Error(err))
		return storeFailure(err, msgDeleteMurajaah, msgMurajaahNotFound)
	}

	s.afterMutation(ctx, "delete")
	return nil
}

func (s *MurajaahService) buildRecord(studentID string, input MurajaahInput) (*models.MurajaahRecord, error) {
	form := murajaahForm{
		Surah:  strings.TrimSpace(input.Surah),
		Status: string(input.Status),
		Type:   string(input.Type),
	}
	if input.Date.IsZero() {
		return nil, validationError(msgIncompleteMurajaah)
	}
	if err := s.validator.Struct(form); err != nil {
		return nil, validationError(formMessage(err, msgIncompleteMurajaah))
	}
	if !input.Status.Valid() {
		return nil, validationError(msgMurajaahStatus)
	}
	if err := checkType(input.Type); err != nil {
		return nil, err
	}
	return &models.MurajaahRecord{
		StudentID: studentID,
		Date:      input.Date,
		Surah:     form.Surah,
		Status:    input.Status,
		Type:      input.Type,
	}, nil
}

func (s *MurajaahService) afterMutation(ctx context.Context, action string) {
	s.metrics.RecordMutation("murajaah", action)
	s.cache.InvalidateRecaps(ctx)
}

// checkType accepts the empty type (no filter) and the two known discriminators.
func checkType(kind models.MurajaahType) error {
	if kind == "" || kind.Valid() {
		return nil
	}
	return validationError(msgMurajaahType)
}
