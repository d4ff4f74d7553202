package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/dto"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/middleware"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/service"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
)

const teacherToken = "teacher-token"

type stubTokens struct{}

func (stubTokens) ValidateToken(token string) (*models.TeacherSession, error) {
	if token != teacherToken {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return &models.TeacherSession{SessionID: "sess-1"}, nil
}

type fakeAuthSrv struct {
	resp *models.LoginResponse
	err  error
	last models.LoginRequest
}

func (f *fakeAuthSrv) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.last = req
	return f.resp, f.err
}

type fakeHafalanSrv struct {
	records     []models.HafalanRecord
	err         error
	lastStudent string
	lastID      string
	lastInput   service.HafalanInput
	deleted     string
}

func (f *fakeHafalanSrv) List(_ context.Context, studentID string) ([]models.HafalanRecord, error) {
	f.lastStudent = studentID
	return f.records, f.err
}

func (f *fakeHafalanSrv) Create(_ context.Context, studentID string, input service.HafalanInput) (*models.HafalanRecord, error) {
	f.lastStudent = studentID
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	record := &models.HafalanRecord{ID: "h-1", StudentID: studentID, Surah: input.Surah, Score: input.Score}
	if input.Absent {
		record.MarkAbsent()
	}
	return record, nil
}

func (f *fakeHafalanSrv) Update(_ context.Context, id string, input service.HafalanInput) (*models.HafalanRecord, error) {
	f.lastID = id
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &models.HafalanRecord{ID: id, Surah: input.Surah, Score: input.Score}, nil
}

func (f *fakeHafalanSrv) Delete(_ context.Context, id string) error {
	f.deleted = id
	return f.err
}

type fakeMurajaahSrv struct {
	records     []models.MurajaahRecord
	err         error
	lastStudent string
	lastType    models.MurajaahType
	lastSession *models.TeacherSession
	lastInput   service.MurajaahInput
	created     bool
	deleted     string
}

func (f *fakeMurajaahSrv) List(_ context.Context, studentID string, kind models.MurajaahType) ([]models.MurajaahRecord, error) {
	f.lastStudent = studentID
	f.lastType = kind
	return f.records, f.err
}

func (f *fakeMurajaahSrv) ListAll(_ context.Context, kind models.MurajaahType) ([]models.MurajaahRecord, error) {
	f.lastType = kind
	return f.records, f.err
}

func (f *fakeMurajaahSrv) Create(_ context.Context, session *models.TeacherSession, studentID string, input service.MurajaahInput) (*models.MurajaahRecord, error) {
	f.created = true
	f.lastSession = session
	f.lastStudent = studentID
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &models.MurajaahRecord{ID: "m-1", StudentID: studentID, Surah: input.Surah, Status: input.Status, Type: input.Type}, nil
}

func (f *fakeMurajaahSrv) Update(_ context.Context, id string, input service.MurajaahInput) (*models.MurajaahRecord, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &models.MurajaahRecord{ID: id, Surah: input.Surah, Status: input.Status}, nil
}

func (f *fakeMurajaahSrv) Delete(_ context.Context, id string) error {
	f.deleted = id
	return f.err
}

type fakeRecapSrv struct {
	dashboard  *dto.DashboardResponse
	hit        bool
	err        error
	lastPeriod dto.Period
	lastTarget int
}

func (f *fakeRecapSrv) Dashboard(context.Context) (*dto.DashboardResponse, bool, error) {
	return f.dashboard, f.hit, f.err
}

func (f *fakeRecapSrv) HafalanRecap(_ context.Context, period dto.Period) (*dto.HafalanRecapResponse, error) {
	f.lastPeriod = period
	if f.err != nil {
		return nil, f.err
	}
	return &dto.HafalanRecapResponse{}, nil
}

func (f *fakeRecapSrv) MurajaahCompliance(_ context.Context, period dto.Period, target int) (*dto.MurajaahComplianceResponse, error) {
	f.lastPeriod = period
	f.lastTarget = target
	if f.err != nil {
		return nil, f.err
	}
	return &dto.MurajaahComplianceResponse{}, nil
}

type fakeReportSrv struct {
	err        error
	lastFormat dto.ReportFormat
	lastPeriod dto.Period
	lastTarget int
	lastType   models.MurajaahType
	lastID     string
}

func (f *fakeReportSrv) result(name string, format dto.ReportFormat) (*dto.RenderedReport, error) {
	f.lastFormat = format
	if f.err != nil {
		return nil, f.err
	}
	return &dto.RenderedReport{
		Filename:    name + "." + string(format),
		Format:      format,
		ContentType: format.ContentType(),
		Body:        []byte("report:" + name),
	}, nil
}

func (f *fakeReportSrv) StudentHafalan(_ context.Context, studentID string, format dto.ReportFormat) (*dto.RenderedReport, error) {
	f.lastID = studentID
	return f.result("laporan-hafalan-"+studentID, format)
}

func (f *fakeReportSrv) StudentMurajaah(_ context.Context, studentID string, kind models.MurajaahType, format dto.ReportFormat) (*dto.RenderedReport, error) {
	f.lastID = studentID
	f.lastType = kind
	return f.result("laporan-murajaah-"+studentID, format)
}

func (f *fakeReportSrv) HafalanRecap(_ context.Context, period dto.Period, format dto.ReportFormat) (*dto.RenderedReport, error) {
	f.lastPeriod = period
	return f.result("rekap-hafalan", format)
}

func (f *fakeReportSrv) MurajaahCompliance(_ context.Context, period dto.Period, target int, format dto.ReportFormat) (*dto.RenderedReport, error) {
	f.lastPeriod = period
	f.lastTarget = target
	return f.result("rekap-murajaah", format)
}

type testAPI struct {
	router   *gin.Engine
	auth     *fakeAuthSrv
	hafalan  *fakeHafalanSrv
	murajaah *fakeMurajaahSrv
	recap    *fakeRecapSrv
	report   *fakeReportSrv
	pingErr  error
}

func newTestAPI() *testAPI {
	gin.SetMode(gin.TestMode)
	api := &testAPI{
		auth:     &fakeAuthSrv{},
		hafalan:  &fakeHafalanSrv{},
		murajaah: &fakeMurajaahSrv{},
		recap:    &fakeRecapSrv{},
		report:   &fakeReportSrv{},
	}
	router := gin.New()
	router.Use(middleware.WithResponseMeta())
	routes := Routes{
		Auth:            NewAuthHandler(api.auth),
		Catalog:         NewCatalogHandler(rand.NewSource(7)),
		Hafalan:         NewHafalanHandler(api.hafalan),
		Murajaah:        NewMurajaahHandler(api.murajaah),
		Recap:           NewRecapHandler(api.recap),
		Report:          NewReportHandler(api.report),
		Metrics:         NewMetricsHandler(service.NewMetricsService(), func(context.Context) error { return api.pingErr }),
		RequireTeacher:  middleware.RequireTeacher(stubTokens{}),
		OptionalTeacher: middleware.OptionalTeacher(stubTokens{}),
	}
	routes.Register(router.Group("/api/v1"))
	api.router = router
	return api
}

func (a *testAPI) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, _ := json.Marshal(v)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *appErrors.Error       `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) responseEnvelope {
	t.Helper()
	envelope := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(envelope.Data, dest))
	return envelope
}

func serveSingle(method, target string, handle gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, nil)
	handle(c)
	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
