package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/dto"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
)

type hafalanLister interface {
	List(ctx context.Context, filter models.HafalanFilter) ([]models.HafalanRecord, error)
}

type murajaahLister interface {
	List(ctx context.Context, filter models.MurajaahFilter) ([]models.MurajaahRecord, error)
}

// RecapServiceConfig tunes aggregation behaviour.
type RecapServiceConfig struct {
	CacheTTL           time.Duration
	MurajaahMinTarget  int
	TopPerformersLimit int
	Policy             models.GradePolicy
	Roster             []models.Student
}

// RecapServiceParams groups constructor dependencies.
type RecapServiceParams struct {
	Hafalan  hafalanLister
	Murajaah murajaahLister
	Cache    *CacheService
	Metrics  *MetricsService
	Logger   *zap.Logger
	Config   RecapServiceConfig
}

// RecapService composes the class aggregations from both record stores.
type RecapService struct {
	hafalan  hafalanLister
	murajaah murajaahLister
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
	cfg      RecapServiceConfig
}

// NewRecapService constructs a RecapService with sane defaults.
func NewRecapService(params RecapServiceParams) *RecapService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.MurajaahMinTarget <= 0 {
		cfg.MurajaahMinTarget = 3
	}
	if cfg.TopPerformersLimit <= 0 {
		cfg.TopPerformersLimit = 5
	}
	if cfg.Roster == nil {
		cfg.Roster = models.Roster()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecapService{
		hafalan:  params.Hafalan,
		murajaah: params.Murajaah,
		cache:    params.Cache,
		metrics:  params.Metrics,
		logger:   logger,
		now:      time.Now,
		cfg:      cfg,
	}
}

// MinTarget returns the configured monthly home murajaah target.
func (s *RecapService) MinTarget() int {
	return s.cfg.MurajaahMinTarget
}

// Dashboard returns the class statistics and reports whether they came from cache.
func (s *RecapService) Dashboard(ctx context.Context) (*dto.DashboardResponse, bool, error) {
	if s.cache != nil {
		var cached dto.DashboardResponse
		hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached)
		if err != nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		} else if hit {
			return &cached, true, nil
		}
	}

	hafalan, err := s.listHafalan(ctx)
	if err != nil {
		return nil, false, err
	}
	murajaah, err := s.listMurajaah(ctx, "")
	if err != nil {
		return nil, false, err
	}

	progress := StudentProgressSummary(hafalan, s.cfg.Roster)
	summary := &dto.DashboardResponse{
		TotalStudents:       len(s.cfg.Roster),
		StudentsWithRecords: DistinctStudents(hafalan),
		TotalHafalan:        len(hafalan),
		TotalMurajaah:       len(murajaah),
		AverageScore:        AverageScore(hafalan),
		ScoreDistribution:   ScoreDistribution(hafalan, s.cfg.Policy, true),
		SurahProgress:       PerSurahCompletion(hafalan, models.RegularCurriculum(), len(s.cfg.Roster)),
		StudentProgress:     progress,
		TopPerformers:       TopPerformers(progress, s.cfg.TopPerformersLimit),
		GeneratedAt:         s.now().UTC(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, summary, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.String("key", dashboardCacheKey), zap.Error(err))
		}
	}
	return summary, false, nil
}

// MurajaahCompliance partitions the roster by home murajaah submissions inside period.
// A target of zero or less selects the configured target.
func (s *RecapService) MurajaahCompliance(ctx context.Context, period dto.Period, target int) (*dto.MurajaahComplianceResponse, error) {
	if target <= 0 {
		target = s.cfg.MurajaahMinTarget
	}
	records, err := s.listMurajaah(ctx, models.MurajaahHome)
	if err != nil {
		return nil, err
	}
	inPeriod := FilterByDateRange(records, period.Start, period.End)
	return &dto.MurajaahComplianceResponse{
		Period:           period,
		TotalSubmissions: len(inPeriod),
		Compliance:       ClassifyCompliance(s.cfg.Roster, SubmissionCounts(inPeriod), target),
	}, nil
}

// HafalanRecap lists the class hafalan records inside period, newest first.
func (s *RecapService) HafalanRecap(ctx context.Context, period dto.Period) (*dto.HafalanRecapResponse, error) {
	records, err := s.listHafalan(ctx)
	if err != nil {
		return nil, err
	}
	inPeriod := FilterByDateRange(records, period.Start, period.End)

	rows := make([]dto.HafalanRecapRow, 0, len(inPeriod))
	for _, record := range inPeriod {
		name := record.StudentID
		if student, ok := models.FindStudent(record.StudentID); ok {
			name = student.DisplayName()
		}
		grade := s.cfg.Policy.Classify(record.Score)
		if record.IsAbsence() {
			grade = models.GradeAbsent
		}
		rows = append(rows, dto.HafalanRecapRow{
			HafalanRecord: record,
			StudentName:   name,
			Grade:         grade,
			AyatCount:     models.CountAyat(record.Ayat),
		})
	}
	return &dto.HafalanRecapResponse{Period: period, Total: len(rows), Records: rows}, nil
}

func (s *RecapService) listHafalan(ctx context.Context) ([]models.HafalanRecord, error) {
	start := time.Now()
	records, err := s.hafalan.List(ctx, models.HafalanFilter{})
	observeStore(s.metrics, "hafalan.list", start, err)
	if err != nil {
		s.logger.Error("recap hafalan load failed", zap.Error(err))
		return nil, storeFailure(err, msgLoadHafalan, "")
	}
	return records, nil
}

func (s *RecapService) listMurajaah(ctx context.Context, kind models.MurajaahType) ([]models.MurajaahRecord, error) {
	start := time.Now()
	records, err := s.murajaah.List(ctx, models.MurajaahFilter{Type: kind})
	observeStore(s.metrics, "murajaah.list", start, err)
	if err != nil {
		s.logger.Error("recap murajaah load failed", zap.String("type", string(kind)), zap.Error(err))
		return nil, storeFailure(err, msgLoadMurajaah, "")
	}
	return records, nil
}
