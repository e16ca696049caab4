package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tahfidz-api/internal/middleware"
	"github.com/noah-isme/tahfidz-api/internal/models"
	"github.com/noah-isme/tahfidz-api/pkg/response"
)

type progressService interface {
	Get(ctx context.Context, learnerID string) (*models.LearnerProgress, bool, error)
}

// ProgressHandler serves the learner progress dashboard.
type ProgressHandler struct {
	service progressService
}

// NewProgressHandler constructs the handler.
func NewProgressHandler(service progressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// Get godoc
// @Summary Learner progress dashboard
// @Tags Progress
// @Produce json
// @Param id path string true "Learner ID"
// @Success 200 {object} response.Envelope
// @Router /learners/{id}/progress [get]
func (h *ProgressHandler) Get(c *gin.Context) {
	progress, cacheHit, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "cache_hit", cacheHit)
	response.JSON(c, http.StatusOK, progress, nil, middleware.Meta(c))
}
