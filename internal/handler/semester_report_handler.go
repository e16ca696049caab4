package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tahfidz-api/internal/dto"
	"github.com/noah-isme/tahfidz-api/internal/middleware"
	"github.com/noah-isme/tahfidz-api/internal/models"
	"github.com/noah-isme/tahfidz-api/pkg/response"
)

type semesterReportService interface {
	Generate(ctx context.Context, actorID string, req dto.GenerateSemesterReportRequest) (*models.SemesterReport, error)
	Bulk(ctx context.Context, actorID string, req dto.BulkSemesterReportRequest) (models.BulkReportResult, error)
	Get(ctx context.Context, id string) (*models.SemesterReport, error)
	ListByLearner(ctx context.Context, learnerID string) ([]dto.SemesterReportSummary, error)
	UpdateNarrative(ctx context.Context, id string, req dto.UpdateReportNarrativeRequest) (*models.SemesterReport, error)
	MarkPrinted(ctx context.Context, id string) (*models.SemesterReport, error)
	Delete(ctx context.Context, id string) error
}

type bulkReportJobs interface {
	Enqueue(ctx context.Context, actorID string, req dto.BulkSemesterReportRequest) (*dto.BulkReportJobResponse, error)
	Status(ctx context.Context, id string) (*models.BulkReportJob, error)
}

// SemesterReportHandler exposes semester report generation and follow-up.
type SemesterReportHandler struct {
	reports semesterReportService
	jobs    bulkReportJobs
}

// NewSemesterReportHandler constructs the handler.
func NewSemesterReportHandler(reports semesterReportService, jobs bulkReportJobs) *SemesterReportHandler {
	return &SemesterReportHandler{reports: reports, jobs: jobs}
}

// Generate godoc
// @Summary Generate one semester report
// @Tags SemesterReports
// @Accept json
// @Produce json
// @Param payload body dto.GenerateSemesterReportRequest true "Report key"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /semester-reports [post]
func (h *SemesterReportHandler) Generate(c *gin.Context) {
	var req dto.GenerateSemesterReportRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reports.Generate(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, report)
}

// Bulk godoc
// @Summary Generate semester reports for every active learner
// @Tags SemesterReports
// @Accept json
// @Produce json
// @Param payload body dto.BulkSemesterReportRequest true "Bulk payload"
// @Success 200 {object} response.Envelope
// @Router /semester-reports/bulk [post]
func (h *SemesterReportHandler) Bulk(c *gin.Context) {
	var req dto.BulkSemesterReportRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.reports.Bulk(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "total", result.Total())
	response.JSON(c, http.StatusOK, result, nil, middleware.Meta(c))
}

// EnqueueBulk godoc
// @Summary Queue a bulk semester report run
// @Tags SemesterReports
// @Accept json
// @Produce json
// @Param payload body dto.BulkSemesterReportRequest true "Bulk payload"
// @Success 202 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /semester-reports/bulk/jobs [post]
func (h *SemesterReportHandler) EnqueueBulk(c *gin.Context) {
	var req dto.BulkSemesterReportRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobs.Enqueue(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, job)
}

// BulkStatus godoc
// @Summary Get a queued bulk run
// @Tags SemesterReports
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Router /semester-reports/bulk/jobs/{id} [get]
func (h *SemesterReportHandler) BulkStatus(c *gin.Context) {
	job, err := h.jobs.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// Get godoc
// @Summary Get a semester report
// @Tags SemesterReports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.Envelope
// @Router /semester-reports/{id} [get]
func (h *SemesterReportHandler) Get(c *gin.Context) {
	report, err := h.reports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// ListByLearner godoc
// @Summary List a learner's semester reports
// @Tags SemesterReports
// @Produce json
// @Param id path string true "Learner ID"
// @Success 200 {object} response.Envelope
// @Router /learners/{id}/semester-reports [get]
func (h *SemesterReportHandler) ListByLearner(c *gin.Context) {
	reports, err := h.reports.ListByLearner(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reports, nil)
}

// UpdateNarrative godoc
// @Summary Edit achievements, examiner comment and recommendation
// @Tags SemesterReports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param payload body dto.UpdateReportNarrativeRequest true "Narrative payload"
// @Success 200 {object} response.Envelope
// @Router /semester-reports/{id} [patch]
func (h *SemesterReportHandler) UpdateNarrative(c *gin.Context) {
	var req dto.UpdateReportNarrativeRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reports.UpdateNarrative(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// Print godoc
// @Summary Stamp a report as printed
// @Tags SemesterReports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.Envelope
// @Router /semester-reports/{id}/print [post]
func (h *SemesterReportHandler) Print(c *gin.Context) {
	report, err := h.reports.MarkPrinted(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// Delete godoc
// @Summary Delete a semester report
// @Tags SemesterReports
// @Param id path string true "Report ID"
// @Success 204
// @Router /semester-reports/{id} [delete]
func (h *SemesterReportHandler) Delete(c *gin.Context) {
	if err := h.reports.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
