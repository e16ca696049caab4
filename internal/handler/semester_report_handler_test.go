package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tahfidz-api/internal/dto"
	"github.com/noah-isme/tahfidz-api/internal/middleware"
	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type fakeReportSrv struct {
	report      *models.SemesterReport
	bulk        models.BulkReportResult
	err         error
	lastActor   string
	lastRequest dto.GenerateSemesterReportRequest
	printed     string
}

func (f *fakeReportSrv) Generate(_ context.Context, actorID string, req dto.GenerateSemesterReportRequest) (*models.SemesterReport, error) {
	f.lastActor = actorID
	f.lastRequest = req
	return f.report, f.err
}

func (f *fakeReportSrv) Bulk(_ context.Context, actorID string, _ dto.BulkSemesterReportRequest) (models.BulkReportResult, error) {
	f.lastActor = actorID
	return f.bulk, f.err
}

func (f *fakeReportSrv) Get(context.Context, string) (*models.SemesterReport, error) {
	return f.report, f.err
}

func (f *fakeReportSrv) ListByLearner(context.Context, string) ([]dto.SemesterReportSummary, error) {
	if f.report == nil {
		return nil, f.err
	}
	return []dto.SemesterReportSummary{dto.NewSemesterReportSummary(*f.report)}, f.err
}

func (f *fakeReportSrv) UpdateNarrative(context.Context, string, dto.UpdateReportNarrativeRequest) (*models.SemesterReport, error) {
	return f.report, f.err
}

func (f *fakeReportSrv) MarkPrinted(_ context.Context, id string) (*models.SemesterReport, error) {
	f.printed = id
	return f.report, f.err
}

func (f *fakeReportSrv) Delete(context.Context, string) error {
	return f.err
}

type fakeJobSrv struct {
	job *models.BulkReportJob
	err error
}

func (f *fakeJobSrv) Enqueue(context.Context, string, dto.BulkSemesterReportRequest) (*dto.BulkReportJobResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.BulkReportJobResponse{ID: "job-1", Status: models.ReportStatusQueued}, nil
}

func (f *fakeJobSrv) Status(context.Context, string) (*models.BulkReportJob, error) {
	return f.job, f.err
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

func jsonRequest(method, target string, body interface{}) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSemesterReportHandlerGenerate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{report: &models.SemesterReport{ID: "report-1", LearnerID: "l-1", TotalJuz: 2}}
	handler := NewSemesterReportHandler(srv, &fakeJobSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/semester-reports", map[string]string{
		"learner_id": "l-1", "academic_year": "2024/2025", "semester": "ODD",
	})
	c.Set(middleware.ContextActorKey, "ustadz-1")

	handler.Generate(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ustadz-1", srv.lastActor)
	assert.Equal(t, "2024/2025", srv.lastRequest.AcademicYear)
	var report models.SemesterReport
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &report))
	assert.Equal(t, "report-1", report.ID)
}

func TestSemesterReportHandlerGenerateDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{err: appErrors.Clone(appErrors.ErrDuplicateReport, "semester report already exists")}
	handler := NewSemesterReportHandler(srv, &fakeJobSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/semester-reports", map[string]string{
		"learner_id": "l-1", "academic_year": "2024/2025", "semester": "ODD",
	})

	handler.Generate(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "DUPLICATE_REPORT", envelope.Error.Code)
}

func TestSemesterReportHandlerRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSemesterReportHandler(&fakeReportSrv{}, &fakeJobSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/semester-reports", bytes.NewBufferString("{"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Generate(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSemesterReportHandlerBulkCarriesTally(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{bulk: models.BulkReportResult{SuccessCount: 3, SkipCount: 1, ErrorCount: 1}}
	handler := NewSemesterReportHandler(srv, &fakeJobSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/semester-reports/bulk", map[string]string{
		"academic_year": "2024/2025", "semester": "EVEN",
	})

	handler.Bulk(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.EqualValues(t, 5, envelope.Meta["total"])
	var result models.BulkReportResult
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Equal(t, 3, result.SuccessCount)
}

func TestSemesterReportHandlerEnqueueBulk(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/semester-reports/bulk/jobs", map[string]string{
		"academic_year": "2024/2025", "semester": "ODD",
	})
	NewSemesterReportHandler(&fakeReportSrv{}, &fakeJobSrv{}).EnqueueBulk(c)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/semester-reports/bulk/jobs", map[string]string{
		"academic_year": "2024/2025", "semester": "ODD",
	})
	NewSemesterReportHandler(&fakeReportSrv{}, &fakeJobSrv{err: appErrors.Clone(appErrors.ErrUnavailable, "cache disabled")}).EnqueueBulk(c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSemesterReportHandlerPrintAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{report: &models.SemesterReport{ID: "report-1"}}
	handler := NewSemesterReportHandler(srv, &fakeJobSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/semester-reports/report-1/print", nil)
	c.Params = gin.Params{{Key: "id", Value: "report-1"}}
	handler.Print(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "report-1", srv.printed)

	router := gin.New()
	router.DELETE("/semester-reports/:id", handler.Delete)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/semester-reports/report-1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSemesterReportHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSemesterReportHandler(&fakeReportSrv{err: appErrors.Clone(appErrors.ErrNotFound, "semester report not found")}, &fakeJobSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/semester-reports/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
