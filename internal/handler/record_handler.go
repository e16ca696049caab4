package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tahfidz-api/internal/service"
	"github.com/noah-isme/tahfidz-api/pkg/response"
)

// RecordHandler exposes recitation, evaluation and attendance intake.
type RecordHandler struct {
	recitations *service.RecitationService
	evaluations *service.EvaluationService
	attendance  *service.AttendanceService
}

// NewRecordHandler constructs RecordHandler.
func NewRecordHandler(recitations *service.RecitationService, evaluations *service.EvaluationService, attendance *service.AttendanceService) *RecordHandler {
	return &RecordHandler{recitations: recitations, evaluations: evaluations, attendance: attendance}
}

// CreateRecitation godoc
// @Summary Record a recitation session
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body service.CreateRecitationRequest true "Recitation payload"
// @Success 201 {object} response.Envelope
// @Router /recitations [post]
func (h *RecordHandler) CreateRecitation(c *gin.Context) {
	var req service.CreateRecitationRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.recitations.Create(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// ListRecitations godoc
// @Summary List a learner's recitation sessions
// @Tags Records
// @Produce json
// @Param id path string true "Learner ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /learners/{id}/recitations [get]
func (h *RecordHandler) ListRecitations(c *gin.Context) {
	r, ok := dateRangeFromQuery(c)
	if !ok {
		return
	}
	sessions, err := h.recitations.List(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}

// CreateEvaluation godoc
// @Summary Record a tajweed and makhraj evaluation
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body service.CreateEvaluationRequest true "Evaluation payload"
// @Success 201 {object} response.Envelope
// @Router /evaluations [post]
func (h *RecordHandler) CreateEvaluation(c *gin.Context) {
	var req service.CreateEvaluationRequest
	if !bindJSON(c, &req) {
		return
	}
	evaluation, err := h.evaluations.Create(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, evaluation)
}

// ListEvaluations godoc
// @Summary List a learner's evaluations
// @Tags Records
// @Produce json
// @Param id path string true "Learner ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /learners/{id}/evaluations [get]
func (h *RecordHandler) ListEvaluations(c *gin.Context) {
	r, ok := dateRangeFromQuery(c)
	if !ok {
		return
	}
	evaluations, err := h.evaluations.List(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, evaluations, nil)
}

// RecordAttendance godoc
// @Summary Record attendance for a day
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body service.RecordAttendanceRequest true "Attendance payload"
// @Success 200 {object} response.Envelope
// @Router /attendance [post]
func (h *RecordHandler) RecordAttendance(c *gin.Context) {
	var req service.RecordAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.attendance.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// ListAttendance godoc
// @Summary List a learner's attendance
// @Tags Records
// @Produce json
// @Param id path string true "Learner ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /learners/{id}/attendance [get]
func (h *RecordHandler) ListAttendance(c *gin.Context) {
	r, ok := dateRangeFromQuery(c)
	if !ok {
		return
	}
	records, err := h.attendance.List(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// AttendanceSummary godoc
// @Summary Count a learner's attendance per status
// @Tags Records
// @Produce json
// @Param id path string true "Learner ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /learners/{id}/attendance/summary [get]
func (h *RecordHandler) AttendanceSummary(c *gin.Context) {
	r, ok := dateRangeFromQuery(c)
	if !ok {
		return
	}
	summary, err := h.attendance.Summary(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}
