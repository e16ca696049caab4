package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tahfidz-api/internal/models"
	"github.com/noah-isme/tahfidz-api/internal/service"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
	"github.com/noah-isme/tahfidz-api/pkg/response"
)

type checkpointService interface {
	CheckEligibility(ctx context.Context, learnerID string, stage models.CheckpointStage) (*service.Eligibility, error)
	Record(ctx context.Context, examinerID string, req service.RecordCheckpointRequest) (*models.CheckpointExam, error)
	History(ctx context.Context, learnerID string, r service.DateRange) ([]models.CheckpointExam, error)
	Delete(ctx context.Context, id string) error
}

// CheckpointHandler exposes the staged checkpoint exam workflow.
type CheckpointHandler struct {
	service checkpointService
}

// NewCheckpointHandler constructs the handler.
func NewCheckpointHandler(service checkpointService) *CheckpointHandler {
	return &CheckpointHandler{service: service}
}

// Eligibility godoc
// @Summary Check whether a learner may sit a checkpoint stage
// @Tags Checkpoints
// @Produce json
// @Param id path string true "Learner ID"
// @Param stage query int true "Stage 1-5"
// @Success 200 {object} response.Envelope
// @Router /learners/{id}/checkpoints/eligibility [get]
func (h *CheckpointHandler) Eligibility(c *gin.Context) {
	stage, err := strconv.Atoi(c.Query("stage"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "stage must be a number"))
		return
	}
	result, err := h.service.CheckEligibility(c.Request.Context(), c.Param("id"), models.CheckpointStage(stage))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Record godoc
// @Summary Record a checkpoint exam
// @Tags Checkpoints
// @Accept json
// @Produce json
// @Param payload body service.RecordCheckpointRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /checkpoints [post]
func (h *CheckpointHandler) Record(c *gin.Context) {
	var req service.RecordCheckpointRequest
	if !bindJSON(c, &req) {
		return
	}
	exam, err := h.service.Record(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// History godoc
// @Summary List a learner's checkpoint exams, newest first
// @Tags Checkpoints
// @Produce json
// @Param id path string true "Learner ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /learners/{id}/checkpoints [get]
func (h *CheckpointHandler) History(c *gin.Context) {
	r, ok := dateRangeFromQuery(c)
	if !ok {
		return
	}
	exams, err := h.service.History(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exams, nil)
}

// Delete godoc
// @Summary Delete a checkpoint exam
// @Tags Checkpoints
// @Param id path string true "Exam ID"
// @Success 204
// @Router /checkpoints/{id} [delete]
func (h *CheckpointHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
