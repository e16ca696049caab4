package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tahfidz-api/internal/models"
	"github.com/noah-isme/tahfidz-api/internal/service"
	"github.com/noah-isme/tahfidz-api/pkg/response"
)

// LearnerHandler exposes learner endpoints.
type LearnerHandler struct {
	learners *service.LearnerService
}

// NewLearnerHandler constructs LearnerHandler.
func NewLearnerHandler(learners *service.LearnerService) *LearnerHandler {
	return &LearnerHandler{learners: learners}
}

type updateLearnerStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List godoc
// @Summary List learners
// @Tags Learners
// @Produce json
// @Param search query string false "Search by name or enrollment number"
// @Param groupId query string false "Filter by halaqah group"
// @Param status query string false "ACTIVE or INACTIVE"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /learners [get]
func (h *LearnerHandler) List(c *gin.Context) {
	var filter models.LearnerFilter
	filter.Search = strings.TrimSpace(c.Query("search"))
	filter.GroupID = c.Query("groupId")
	if status := c.Query("status"); status != "" {
		s := models.LearnerStatus(strings.ToUpper(status))
		filter.Status = &s
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	learners, pagination, err := h.learners.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, learners, pagination)
}

// Get godoc
// @Summary Get learner detail
// @Tags Learners
// @Produce json
// @Param id path string true "Learner ID"
// @Success 200 {object} response.Envelope
// @Router /learners/{id} [get]
func (h *LearnerHandler) Get(c *gin.Context) {
	learner, err := h.learners.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, learner, nil)
}

// Create godoc
// @Summary Enroll learner
// @Tags Learners
// @Accept json
// @Produce json
// @Param payload body service.CreateLearnerRequest true "Learner payload"
// @Success 201 {object} response.Envelope
// @Router /learners [post]
func (h *LearnerHandler) Create(c *gin.Context) {
	var req service.CreateLearnerRequest
	if !bindJSON(c, &req) {
		return
	}
	learner, err := h.learners.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, learner)
}

// SetStatus godoc
// @Summary Activate or deactivate learner
// @Tags Learners
// @Accept json
// @Produce json
// @Param id path string true "Learner ID"
// @Param payload body updateLearnerStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /learners/{id}/status [patch]
func (h *LearnerHandler) SetStatus(c *gin.Context) {
	var req updateLearnerStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	learner, err := h.learners.SetStatus(c.Request.Context(), c.Param("id"), models.LearnerStatus(strings.ToUpper(req.Status)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, learner, nil)
}
